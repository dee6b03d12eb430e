// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen

package driver

import (
	"cogentcore.org/glscript/driver/offscreen"
	"cogentcore.org/glscript/gpu"
	"cogentcore.org/glscript/system"
)

func platform() (system.Toolkit, gpu.GL) {
	a := offscreen.NewApp()
	return a, a.GL()
}
