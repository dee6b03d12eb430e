// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless implementation of the
// windowing toolkit and the graphics call surface, to allow for
// offscreen testing and running of scripts. Input is injected through
// [Window] and delivered at [App.PollEvents], like a real event loop.
package offscreen

import (
	"errors"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/glscript/system"
)

// App is the [system.Toolkit] implementation on the offscreen platform.
type App struct {
	// ScreenSize is the size of the primary monitor, used for
	// fullscreen windows.
	ScreenSize image.Point

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	// InitError, if set, is returned by the next call to Init.
	InitError error

	// CreateError, if set, is returned by the next call to CreateWindow.
	CreateError error

	initialized bool
	start       time.Time
	hints       system.ContextHints
	interval    int
	windows     []*Window
	current     *Window
	names       map[int]string
	gl          *GL
}

var _ system.Toolkit = (*App)(nil)

// NewApp returns a new offscreen toolkit with US key names.
func NewApp() *App {
	a := &App{
		ScreenSize: image.Point{1920, 1080},
		Now:        time.Now,
		names:      usKeyNames(),
	}
	a.gl = newGL(a)
	return a
}

// GL returns the graphics call surface of the app's current context.
func (a *App) GL() *GL {
	return a.gl
}

func (a *App) Init() error {
	if err := a.InitError; err != nil {
		a.InitError = nil
		return err
	}
	a.initialized = true
	a.start = a.Now()
	return nil
}

func (a *App) Terminate() {
	for _, w := range a.windows {
		w.destroyed = true
	}
	a.windows = nil
	a.current = nil
	a.initialized = false
}

// Initialized returns whether Init has been called without a
// matching Terminate.
func (a *App) Initialized() bool {
	return a.initialized
}

func (a *App) SetContextHints(h system.ContextHints) {
	a.hints = h
}

// ContextHints returns the hints set for the next window.
func (a *App) ContextHints() system.ContextHints {
	return a.hints
}

func (a *App) CreateWindow(width, height int, title string, fullscreen bool) (system.Window, error) {
	if !a.initialized {
		return nil, errors.New("offscreen: toolkit not initialized")
	}
	if err := a.CreateError; err != nil {
		a.CreateError = nil
		return nil, err
	}
	if fullscreen {
		width, height = a.ScreenSize.X, a.ScreenSize.Y
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("offscreen: invalid window size")
	}
	w := &Window{
		app:        a,
		title:      title,
		size:       image.Point{width, height},
		fullscreen: fullscreen,
		focused:    true,
		keys:       map[int]system.Action{},
		cursorMode: system.CursorNormal,
	}
	a.windows = append(a.windows, w)
	slog.Debug("offscreen window created", "title", title, "width", width, "height", height)
	return w, nil
}

func (a *App) PollEvents() {
	for _, w := range a.windows {
		w.deliver()
	}
}

func (a *App) SwapInterval(interval int) {
	a.interval = interval
}

// Interval returns the last swap interval that was set.
func (a *App) Interval() int {
	return a.interval
}

func (a *App) KeyName(code int) (string, bool) {
	n, ok := a.names[code]
	return n, ok
}

// SetKeyName sets the display name of a key code; an empty name
// removes it.
func (a *App) SetKeyName(code int, name string) {
	if name == "" {
		delete(a.names, code)
		return
	}
	a.names[code] = name
}

func (a *App) Time() float64 {
	if !a.initialized {
		return 0
	}
	return a.Now().Sub(a.start).Seconds()
}

// Current returns the window whose context is current, or nil.
func (a *App) Current() *Window {
	return a.current
}

// usKeyNames returns the names a US keyboard layout reports for the
// printable keys and the keypad. Other keys have no name.
func usKeyNames() map[int]string {
	names := map[int]string{
		39: "'", 44: ",", 45: "-", 46: ".", 47: "/", 59: ";", 61: "=",
		91: "[", 92: "\\", 93: "]", 96: "`",
		330: ".", 331: "/", 332: "*", 333: "-", 334: "+", 336: "=",
	}
	for c := '0'; c <= '9'; c++ {
		names[int(c)] = string(c)
		names[320+int(c-'0')] = string(c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		names[int(c)] = string(c + 'a' - 'A')
	}
	return names
}
