// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

package desktop

import (
	"cogentcore.org/glscript/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the [system.Window] implementation for the desktop
// platform, wrapping a glfw window.
type Window struct {
	glw *glfw.Window
}

var _ system.Window = (*Window)(nil)

func newWindow(glw *glfw.Window) *Window {
	return &Window{glw: glw}
}

func (w *Window) MakeContextCurrent() {
	w.glw.MakeContextCurrent()
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.glw.GetFramebufferSize()
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.glw.SetShouldClose(value)
}

func (w *Window) Focus() {
	w.glw.Focus()
}

func (w *Window) Destroy() {
	w.glw.Destroy()
}

func (w *Window) Key(code int) system.Action {
	if !validKey(code) {
		return system.Release
	}
	return system.Action(w.glw.GetKey(glfw.Key(code)))
}

func (w *Window) SetCursorPos(x, y float64) {
	w.glw.SetCursorPos(x, y)
}

func (w *Window) SetCursorMode(mode system.CursorMode) {
	w.glw.SetInputMode(glfw.CursorMode, int(mode))
}

// SetCallbacks installs the input handlers, replacing any previous
// ones. A nil handler removes the glfw callback.
func (w *Window) SetCallbacks(cb system.Callbacks) {
	if cb.MouseButton != nil {
		w.glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
			cb.MouseButton(system.MouseButton(button), system.Action(action))
		})
	} else {
		w.glw.SetMouseButtonCallback(nil)
	}
	if cb.Scroll != nil {
		w.glw.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
			cb.Scroll(xoff, yoff)
		})
	} else {
		w.glw.SetScrollCallback(nil)
	}
	if cb.CursorPos != nil {
		w.glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
			cb.CursorPos(x, y)
		})
	} else {
		w.glw.SetCursorPosCallback(nil)
	}
	if cb.Key != nil {
		w.glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
			cb.Key(int(key), system.Action(action))
		})
	} else {
		w.glw.SetKeyCallback(nil)
	}
}

// validKey reports whether glfw accepts the key code.
func validKey(code int) bool {
	return code >= int(glfw.KeySpace) && code <= int(glfw.KeyLast)
}
