// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"

	"cogentcore.org/glscript/system"
)

// Window is the [system.Window] implementation on the offscreen platform.
// The event methods queue input as the window system would; it becomes
// visible to the callbacks at the next [App.PollEvents].
type Window struct {
	app        *App
	title      string
	size       image.Point
	fullscreen bool
	focused    bool
	closing    bool
	destroyed  bool
	swaps      int
	keys       map[int]system.Action
	cursor     [2]float64
	cursorMode system.CursorMode
	callbacks  system.Callbacks
	pending    []func()
}

var _ system.Window = (*Window)(nil)

func (w *Window) MakeContextCurrent() {
	w.app.current = w
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.size.X, w.size.Y
}

func (w *Window) SwapBuffers() {
	w.swaps++
}

func (w *Window) ShouldClose() bool {
	return w.closing
}

func (w *Window) SetShouldClose(value bool) {
	w.closing = value
}

func (w *Window) Focus() {
	for _, o := range w.app.windows {
		o.focused = false
	}
	w.focused = true
}

func (w *Window) Destroy() {
	w.destroyed = true
	if w.app.current == w {
		w.app.current = nil
	}
	for i, o := range w.app.windows {
		if o == w {
			w.app.windows = append(w.app.windows[:i], w.app.windows[i+1:]...)
			break
		}
	}
}

func (w *Window) Key(code int) system.Action {
	return w.keys[code]
}

func (w *Window) SetCursorPos(x, y float64) {
	w.cursor = [2]float64{x, y}
}

func (w *Window) SetCursorMode(mode system.CursorMode) {
	w.cursorMode = mode
}

func (w *Window) SetCallbacks(cb system.Callbacks) {
	w.callbacks = cb
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Fullscreen returns whether the window was created fullscreen.
func (w *Window) Fullscreen() bool { return w.fullscreen }

// Focused returns whether the window has input focus.
func (w *Window) Focused() bool { return w.focused }

// Destroyed returns whether the window has been destroyed.
func (w *Window) Destroyed() bool { return w.destroyed }

// Swaps returns the number of buffer swaps so far.
func (w *Window) Swaps() int { return w.swaps }

// CursorMode returns the current cursor mode.
func (w *Window) CursorMode() system.CursorMode { return w.cursorMode }

// Cursor returns the position of the system cursor.
func (w *Window) Cursor() (x, y float64) { return w.cursor[0], w.cursor[1] }

// MouseButtonEvent queues a mouse button event.
func (w *Window) MouseButtonEvent(button system.MouseButton, action system.Action) {
	w.queue(func() {
		if fn := w.callbacks.MouseButton; fn != nil {
			fn(button, action)
		}
	})
}

// ScrollEvent queues a scroll event.
func (w *Window) ScrollEvent(xoff, yoff float64) {
	w.queue(func() {
		if fn := w.callbacks.Scroll; fn != nil {
			fn(xoff, yoff)
		}
	})
}

// CursorPosEvent queues a cursor motion event.
func (w *Window) CursorPosEvent(x, y float64) {
	w.queue(func() {
		w.cursor = [2]float64{x, y}
		if fn := w.callbacks.CursorPos; fn != nil {
			fn(x, y)
		}
	})
}

// KeyEvent queues a key event; the key state is updated on delivery.
func (w *Window) KeyEvent(code int, action system.Action) {
	w.queue(func() {
		w.keys[code] = action
		if fn := w.callbacks.Key; fn != nil {
			fn(code, action)
		}
	})
}

// CloseEvent queues a close request from the window chrome.
func (w *Window) CloseEvent() {
	w.queue(func() {
		w.closing = true
	})
}

// ResizeEvent queues a framebuffer resize.
func (w *Window) ResizeEvent(width, height int) {
	w.queue(func() {
		w.size = image.Point{width, height}
	})
}

func (w *Window) queue(fn func()) {
	if w.destroyed {
		return
	}
	w.pending = append(w.pending, fn)
}

func (w *Window) deliver() {
	pending := w.pending
	w.pending = nil
	for _, fn := range pending {
		fn()
	}
}
