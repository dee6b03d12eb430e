// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf))
	l.Debug("this is debug")
	l.Info("this is info", "width", 640)
	l.With("window", 1).WithGroup("gl").Warn("this is warn", "err", 1280)

	s := buf.String()
	assert.NotContains(t, s, "this is debug")
	assert.Contains(t, s, "this is info")
	assert.Contains(t, s, "width=640")
	assert.Contains(t, s, "window=1")
	assert.Contains(t, s, "gl.err=1280")
}
