// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the leveled, colored logging used by glscript.
package logx

import "log/slog"

// UserLevel is the lowest level that [Handler] writes. Window lifecycle
// messages are logged at Info and key table sizes at Debug, so the
// default of Warn keeps script output clean. Build tags debug and
// release move the default.
var UserLevel = defaultUserLevel

// LevelFromFlags maps the glscript verbosity flags to a level:
// -vv selects Debug, -v Info and -q Error, and no flag leaves Warn.
// The most verbose flag given wins.
func LevelFromFlags(vv, v, q bool) slog.Level {
	if vv {
		return slog.LevelDebug
	}
	if v {
		return slog.LevelInfo
	}
	if q {
		return slog.LevelError
	}
	return slog.LevelWarn
}
