// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

var jsonDecoder = NewDecoderFunc(json.NewDecoder)

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, os.WriteFile(fn, []byte(`{"X": 3}`), 0666))
	p := point{X: 1, Y: 2}
	require.NoError(t, Open(&p, fn, jsonDecoder))
	assert.Equal(t, point{3, 2}, p, "unset fields keep their defaults")
	assert.ErrorIs(t, Open(&p, fn+".missing", jsonDecoder), os.ErrNotExist)

	require.NoError(t, os.WriteFile(fn, []byte(`{`), 0666))
	assert.Error(t, Open(&p, fn, jsonDecoder))
}
