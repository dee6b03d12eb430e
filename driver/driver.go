// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the windowing toolkit and graphics call
// surface for the current platform.
package driver

import (
	"cogentcore.org/glscript/gpu"
	"cogentcore.org/glscript/system"
)

// Default returns the toolkit and graphics call surface of the current
// platform. Tests and offscreen builds get the offscreen driver.
func Default() (system.Toolkit, gpu.GL) {
	return platform()
}
