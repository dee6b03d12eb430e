// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"errors"
	"testing"
	"time"

	"cogentcore.org/glscript/driver/offscreen"
	"cogentcore.org/glscript/glenum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContext returns a Context on a fresh offscreen toolkit whose
// window is closed at the end of the test.
func newContext(t *testing.T) (*Context, *offscreen.App) {
	t.Helper()
	app := offscreen.NewApp()
	c := New(app, app.GL())
	t.Cleanup(func() {
		if c.State() == Windowed {
			c.CloseWindow()
		}
	})
	return c, app
}

// openContext is newContext with a 64x32 window already created.
func openContext(t *testing.T) (*Context, *offscreen.App) {
	t.Helper()
	c, app := newContext(t)
	require.NoError(t, c.CreateWindow(64, 32, "test", false))
	return c, app
}

func TestLifecycle(t *testing.T) {
	c, app := newContext(t)
	assert.Equal(t, Uninitialized, c.State())
	assert.ErrorIs(t, c.Flip(), ErrNotInitialized)

	require.NoError(t, c.CreateWindow(64, 32, "test", false))
	assert.Equal(t, Windowed, c.State())
	assert.True(t, app.Initialized())
	win := app.Current()
	require.NotNil(t, win)
	assert.Equal(t, "test", win.Title())
	assert.Same(t, win, c.Window())

	w, h, err := c.FramebufferSize()
	require.NoError(t, err)
	assert.Equal(t, []int{64, 32}, []int{w, h})
	vp, err := c.GetIntegerv(glenum.VIEWPORT, 4)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 64, 32}, vp)

	assert.ErrorIs(t, c.CreateWindow(64, 32, "again", false), ErrContextBusy)

	require.NoError(t, c.Flip())
	require.NoError(t, c.Flip())
	assert.Equal(t, 2, win.Swaps())

	require.NoError(t, c.CloseWindow())
	assert.Equal(t, Destroyed, c.State())
	assert.True(t, win.Destroyed())
	assert.False(t, app.Initialized())
	assert.Nil(t, c.Window())

	assert.ErrorIs(t, c.CloseWindow(), ErrNotInitialized)
	assert.ErrorIs(t, c.CreateWindow(64, 32, "test", false), ErrNotInitialized)
}

func TestContextBusy(t *testing.T) {
	a, _ := openContext(t)
	b, _ := newContext(t)
	assert.ErrorIs(t, b.CreateWindow(64, 32, "second", false), ErrContextBusy)
	assert.Equal(t, Uninitialized, b.State())

	require.NoError(t, a.CloseWindow())
	require.NoError(t, b.CreateWindow(64, 32, "second", false))
	assert.Equal(t, Windowed, b.State())
}

func TestCreateFailure(t *testing.T) {
	c, app := newContext(t)

	app.InitError = errors.New("no display")
	err := c.CreateWindow(64, 32, "test", false)
	assert.ErrorIs(t, err, ErrWindowCreationFailed)
	assert.ErrorContains(t, err, "no display")
	assert.Equal(t, Uninitialized, c.State())

	app.CreateError = errors.New("no visual")
	err = c.CreateWindow(64, 32, "test", false)
	assert.ErrorIs(t, err, ErrWindowCreationFailed)
	assert.Equal(t, Uninitialized, c.State())
	assert.False(t, app.Initialized())

	// The failed attempts must not hold the process slot.
	other, _ := newContext(t)
	require.NoError(t, other.CreateWindow(64, 32, "other", false))
	require.NoError(t, other.CloseWindow())

	require.NoError(t, c.CreateWindow(64, 32, "test", false))
	assert.Equal(t, Windowed, c.State())
}

func TestConfigDefaults(t *testing.T) {
	c, app := newContext(t)
	c.Config.Width = 100
	c.Config.Height = 50
	c.Config.SwapInterval = 0
	require.NoError(t, c.CreateWindow(0, 0, "", false))

	w, h, err := c.FramebufferSize()
	require.NoError(t, err)
	assert.Equal(t, []int{100, 50}, []int{w, h})
	assert.Equal(t, "glscript", app.Current().Title())
	assert.Equal(t, 0, app.Interval())
	hints := app.ContextHints()
	assert.Equal(t, 4, hints.Major)
	assert.Equal(t, 1, hints.Minor)
	assert.True(t, hints.Core)
}

func TestFullscreen(t *testing.T) {
	c, app := newContext(t)
	require.NoError(t, c.CreateWindow(64, 32, "full", true))
	assert.True(t, app.Current().Fullscreen())
	w, h, err := c.FramebufferSize()
	require.NoError(t, err)
	assert.Equal(t, []int{1920, 1080}, []int{w, h})
}

func TestTime(t *testing.T) {
	c, app := newContext(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	app.Now = func() time.Time { return now }
	require.NoError(t, c.CreateWindow(64, 32, "test", false))
	now = now.Add(1500 * time.Millisecond)
	s, err := c.Time()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, s, 1e-9)
}

func TestFocus(t *testing.T) {
	c, app := openContext(t)
	require.NoError(t, c.FocusWindow())
	assert.True(t, app.Current().Focused())
}

// TestNotInitialized checks that calls fail cleanly without an open
// window, both before CreateWindow and after CloseWindow.
func TestNotInitialized(t *testing.T) {
	calls := map[string]func(c *Context) error{
		"Flip":        func(c *Context) error { return c.Flip() },
		"FocusWindow": func(c *Context) error { return c.FocusWindow() },
		"ShouldClose": func(c *Context) error { _, err := c.ShouldClose(); return err },
		"Time":        func(c *Context) error { _, err := c.Time(); return err },
		"FramebufferSize": func(c *Context) error {
			_, _, err := c.FramebufferSize()
			return err
		},
		"CursorPos":    func(c *Context) error { _, err := c.CursorPos(); return err },
		"MouseButtons": func(c *Context) error { _, err := c.MouseButtons(); return err },
		"ScrollWheel":  func(c *Context) error { _, err := c.ScrollWheel(); return err },
		"SetCursorPos": func(c *Context) error { return c.SetCursorPos(1, 2) },
		"HideCursor":   func(c *Context) error { return c.HideCursor() },
		"ShowCursor":   func(c *Context) error { return c.ShowCursor() },
		"KeyByName":    func(c *Context) error { _, err := c.KeyByName("a"); return err },
		"Clear":        func(c *Context) error { return c.Clear(glenum.COLOR_BUFFER_BIT) },
		"ClearColor":   func(c *Context) error { return c.ClearColor(0, 0, 0, 1) },
		"Viewport":     func(c *Context) error { return c.Viewport(0, 0, 1, 1) },
		"GenBuffers":   func(c *Context) error { _, err := c.GenBuffers(1); return err },
		"DeleteBuffers": func(c *Context) error {
			return c.DeleteBuffers(1, []uint32{1})
		},
		"BufferData": func(c *Context) error {
			return c.BufferData(glenum.ARRAY_BUFFER, []float64{1}, glenum.STATIC_DRAW, false)
		},
		"TexImage2D": func(c *Context) error {
			return c.TexImage2D(glenum.TEXTURE_2D, 0, glenum.RGB, 1, 1, 0, glenum.RGB, glenum.UNSIGNED_BYTE, nil)
		},
		"TexImage2DFile": func(c *Context) error { return c.TexImage2DFile("none.png") },
		"CreateShader": func(c *Context) error {
			_, err := c.CreateShader(glenum.VERTEX_SHADER)
			return err
		},
		"CreateProgram":   func(c *Context) error { _, err := c.CreateProgram(); return err },
		"Uniform1f":       func(c *Context) error { return c.Uniform1f(0, 1) },
		"UniformMatrix4f": func(c *Context) error { return c.UniformMatrix4fv(0, 1, false, make([]float64, 16)) },
		"DrawArrays":      func(c *Context) error { return c.DrawArrays(glenum.TRIANGLES, 0, 3) },
		"GetError":        func(c *Context) error { _, err := c.GetError(); return err },
		"GetIntegerv":     func(c *Context) error { _, err := c.GetIntegerv(glenum.VIEWPORT, 4); return err },
		"IsBuffer":        func(c *Context) error { _, err := c.IsBuffer(1); return err },
		"ReadPixels": func(c *Context) error {
			_, err := c.ReadPixels(0, 0, 1, 1, glenum.RGBA, glenum.UNSIGNED_BYTE, 0)
			return err
		},
		"SaveFramebuffer": func(c *Context) error { return c.SaveFramebuffer("none.png") },
	}

	c, _ := newContext(t)
	for name, call := range calls {
		assert.ErrorIs(t, call(c), ErrNotInitialized, "before create: %s", name)
	}
	require.NoError(t, c.CreateWindow(64, 32, "test", false))
	require.NoError(t, c.CloseWindow())
	for name, call := range calls {
		assert.ErrorIs(t, call(c), ErrNotInitialized, "after close: %s", name)
	}
}
