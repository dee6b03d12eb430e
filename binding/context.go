// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binding exposes a window with a graphics context, its input
// state, and an OpenGL ES 2.0 style call surface in a form that
// scripting hosts can drive with plain numbers, strings and slices.
//
// A [Context] owns at most one window, and only one Context in a
// process may have an open window at a time. Every graphics and input
// call returns [ErrNotInitialized] unless the window is open.
package binding

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/gpu"
	"cogentcore.org/glscript/keys"
	"cogentcore.org/glscript/system"
)

// State is the lifecycle state of a [Context].
type State int32

const (
	// Uninitialized is the state before a window has been created,
	// and after a failed attempt.
	Uninitialized State = iota

	// Windowed is the state while the window is open.
	Windowed

	// Destroyed is the final state after CloseWindow.
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Windowed:
		return "Windowed"
	case Destroyed:
		return "Destroyed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// slot holds the Context with the open window in this process.
var slot atomic.Pointer[Context]

// Context is a window with a graphics context and the state that goes
// with it. Its methods must be called from the main thread.
type Context struct {

	// Config is used by CreateWindow.
	Config Config

	tk    system.Toolkit
	gl    gpu.GL
	state State
	win   system.Window

	flags *glenum.Registry
	keys  keys.Table
	input Input
}

// New returns a new Context that creates its window with the given
// toolkit and issues graphics calls to gl.
func New(tk system.Toolkit, gl gpu.GL) *Context {
	return &Context{
		Config: DefaultConfig(),
		tk:     tk,
		gl:     gl,
		flags:  &glenum.Registry{},
	}
}

// State returns the lifecycle state.
func (c *Context) State() State {
	return c.state
}

// Window returns the open window, or nil.
func (c *Context) Window() system.Window {
	return c.win
}

// check returns [ErrNotInitialized] unless the window is open.
func (c *Context) check() error {
	if c.state != Windowed {
		return ErrNotInitialized
	}
	return nil
}

// CreateWindow opens the window and binds its graphics context. A zero
// width or height, or an empty title, is taken from the Config. When
// fullscreen is set the window covers the primary monitor.
//
// On failure the toolkit is terminated and the Context stays
// Uninitialized, so the call can be retried.
func (c *Context) CreateWindow(width, height int, title string, fullscreen bool) error {
	switch c.state {
	case Windowed:
		return ErrContextBusy
	case Destroyed:
		return fmt.Errorf("%w: the context has been closed", ErrNotInitialized)
	}
	if !slot.CompareAndSwap(nil, c) {
		return ErrContextBusy
	}
	if width <= 0 {
		width = c.Config.Width
	}
	if height <= 0 {
		height = c.Config.Height
	}
	if title == "" {
		title = c.Config.Title
	}
	if err := c.tk.Init(); err != nil {
		slot.Store(nil)
		return fmt.Errorf("%w: %w", ErrWindowCreationFailed, err)
	}
	win, err := c.open(width, height, title, fullscreen)
	if err != nil {
		c.tk.Terminate()
		slot.Store(nil)
		return fmt.Errorf("%w: %w", ErrWindowCreationFailed, err)
	}
	c.win = win
	c.input = Input{}
	c.state = Windowed
	slog.Info("window created", "title", title, "width", width, "height", height, "fullscreen", fullscreen)
	return nil
}

// open runs the steps of CreateWindow after toolkit initialization.
func (c *Context) open(width, height int, title string, fullscreen bool) (system.Window, error) {
	c.flags.Register()
	c.keys.Register(keys.NamerFunc(c.tk.KeyName))
	c.tk.SetContextHints(c.Config.Context)
	win, err := c.tk.CreateWindow(width, height, title, fullscreen)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	if err := c.gl.Init(); err != nil {
		win.Destroy()
		return nil, err
	}
	fw, fh := win.FramebufferSize()
	c.gl.Viewport(0, 0, int32(fw), int32(fh))
	c.tk.SwapInterval(c.Config.SwapInterval)
	win.SetCallbacks(c.callbacks(win))
	return win, nil
}

// callbacks returns the input handlers of the window, which queue
// events for the next Flip.
func (c *Context) callbacks(win system.Window) system.Callbacks {
	cb := system.Callbacks{
		MouseButton: func(button system.MouseButton, action system.Action) {
			c.input.push(event{kind: buttonEvent, button: button, action: action})
		},
		Scroll: func(xoff, yoff float64) {
			c.input.push(event{kind: scrollEvent, x: xoff, y: yoff})
		},
		CursorPos: func(x, y float64) {
			c.input.push(event{kind: cursorEvent, x: x, y: y})
		},
	}
	if c.Config.EscapeCloses {
		cb.Key = func(code int, action system.Action) {
			if code == system.KeyEscape && action == system.Press {
				win.SetShouldClose(true)
			}
		}
	}
	return cb
}

// CloseWindow destroys the window and terminates the toolkit. The
// Context cannot be used again, but another Context may open a window.
func (c *Context) CloseWindow() error {
	if err := c.check(); err != nil {
		return err
	}
	c.win.SetCallbacks(system.Callbacks{})
	c.win.Destroy()
	c.tk.Terminate()
	c.win = nil
	c.state = Destroyed
	slot.CompareAndSwap(c, nil)
	slog.Info("window closed")
	return nil
}

// FocusWindow brings the window to the front and gives it input focus.
func (c *Context) FocusWindow() error {
	if err := c.check(); err != nil {
		return err
	}
	c.win.Focus()
	return nil
}

// ShouldClose returns whether the user has asked to close the window.
func (c *Context) ShouldClose() (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.win.ShouldClose(), nil
}

// Flip swaps the front and back buffers, processes pending window
// events, and applies the input they carry.
func (c *Context) Flip() error {
	if err := c.check(); err != nil {
		return err
	}
	c.win.SwapBuffers()
	c.tk.PollEvents()
	c.input.drain()
	return nil
}

// Time returns the seconds elapsed since the toolkit was initialized.
func (c *Context) Time() (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.tk.Time(), nil
}

// FramebufferSize returns the size of the window framebuffer in pixels.
func (c *Context) FramebufferSize() (width, height int, err error) {
	if err := c.check(); err != nil {
		return 0, 0, err
	}
	width, height = c.win.FramebufferSize()
	return
}
