// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the interfaces between glscript and the
// windowing toolkit. The driver packages provide the implementations.
package system

// Action is the state of a key or mouse button, with the values the
// toolkit reports.
type Action int32

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// MouseButton identifies a mouse button.
type MouseButton int32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// CursorMode is the input mode of the cursor.
type CursorMode int32

const (
	// CursorNormal shows the cursor and lets it move freely.
	CursorNormal CursorMode = 0x00034001
	// CursorHidden hides the cursor while it is over the window.
	CursorHidden CursorMode = 0x00034002
	// CursorDisabled hides and captures the cursor, for unlimited
	// relative movement.
	CursorDisabled CursorMode = 0x00034003
)

// KeyEscape is the key code of the escape key.
const KeyEscape = 256

// ContextHints are the requested properties of the graphics context.
type ContextHints struct {
	Major int `toml:"major" yaml:"major"`
	Minor int `toml:"minor" yaml:"minor"`

	// Core requests a forward-compatible core profile context.
	Core bool `toml:"core" yaml:"core"`

	// Samples is the number of multisample samples; 0 disables
	// multisampling.
	Samples int `toml:"samples" yaml:"samples"`

	Resizable bool `toml:"resizable" yaml:"resizable"`
}

// Callbacks are the input handlers of a [Window]. The toolkit calls
// them during [Toolkit.PollEvents]. Nil handlers are skipped.
type Callbacks struct {
	MouseButton func(button MouseButton, action Action)
	Scroll      func(xoff, yoff float64)
	CursorPos   func(x, y float64)
	Key         func(code int, action Action)
}

// Toolkit is the windowing toolkit. All methods must be called from
// the main thread.
type Toolkit interface {
	// Init initializes the toolkit.
	Init() error

	// Terminate destroys any remaining windows and releases the toolkit.
	Terminate()

	// SetContextHints sets the hints for the next created window.
	SetContextHints(h ContextHints)

	// CreateWindow creates a window with a graphics context. When
	// fullscreen is set the window covers the primary monitor.
	CreateWindow(width, height int, title string, fullscreen bool) (Window, error)

	// PollEvents processes pending events, calling the [Callbacks] of
	// the windows, and returns immediately.
	PollEvents()

	// SwapInterval sets the number of screen updates to wait for
	// before swapping buffers, for the current context.
	SwapInterval(interval int)

	// KeyName returns the layout-specific display name of a key code.
	KeyName(code int) (string, bool)

	// Time returns the seconds elapsed since Init.
	Time() float64
}

// Window is a window with a graphics context.
type Window interface {
	MakeContextCurrent()
	FramebufferSize() (width, height int)
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(value bool)
	Focus()
	Destroy()

	// Key returns the last reported action of the given key.
	Key(code int) Action

	// SetCursorPos moves the cursor to the given window coordinates.
	SetCursorPos(x, y float64)

	SetCursorMode(mode CursorMode)

	SetCallbacks(cb Callbacks)
}
