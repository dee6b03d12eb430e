// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"testing"

	"cogentcore.org/glscript/driver/offscreen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tk, gl := Default()
	a, ok := tk.(*offscreen.App)
	require.True(t, ok, "tests use the offscreen driver, got %T", tk)
	assert.Same(t, a.GL(), gl)
}
