// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"errors"
	"testing"
	"time"

	"cogentcore.org/glscript/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWindow(t *testing.T) {
	a := NewApp()
	_, err := a.CreateWindow(640, 480, "early", false)
	assert.Error(t, err)

	require.NoError(t, a.Init())
	sw, err := a.CreateWindow(640, 480, "test", false)
	require.NoError(t, err)
	w := sw.(*Window)
	assert.Equal(t, "test", w.Title())
	width, height := w.FramebufferSize()
	assert.Equal(t, 640, width)
	assert.Equal(t, 480, height)

	fs, err := a.CreateWindow(1, 1, "full", true)
	require.NoError(t, err)
	width, height = fs.FramebufferSize()
	assert.Equal(t, a.ScreenSize.X, width)
	assert.Equal(t, a.ScreenSize.Y, height)

	w.MakeContextCurrent()
	assert.Equal(t, w, a.Current())
	w.Destroy()
	assert.Nil(t, a.Current())
	assert.True(t, w.Destroyed())

	a.Terminate()
	assert.False(t, a.Initialized())
	assert.True(t, fs.(*Window).Destroyed())
}

func TestInjectedErrors(t *testing.T) {
	a := NewApp()
	a.InitError = errors.New("no display")
	assert.Error(t, a.Init())
	require.NoError(t, a.Init())
	a.CreateError = errors.New("no visual")
	_, err := a.CreateWindow(10, 10, "x", false)
	assert.Error(t, err)
	_, err = a.CreateWindow(10, 10, "x", false)
	assert.NoError(t, err)
}

func TestEventsAtPoll(t *testing.T) {
	a := NewApp()
	require.NoError(t, a.Init())
	sw, err := a.CreateWindow(100, 100, "events", false)
	require.NoError(t, err)
	w := sw.(*Window)

	var got []string
	w.SetCallbacks(system.Callbacks{
		MouseButton: func(b system.MouseButton, act system.Action) { got = append(got, "button") },
		Scroll:      func(x, y float64) { got = append(got, "scroll") },
		CursorPos:   func(x, y float64) { got = append(got, "cursor") },
	})
	w.MouseButtonEvent(system.MouseButtonLeft, system.Press)
	w.ScrollEvent(0, 1)
	w.CursorPosEvent(3, 4)
	w.KeyEvent(65, system.Press)
	w.CloseEvent()

	assert.Empty(t, got)
	assert.Equal(t, system.Release, w.Key(65))
	assert.False(t, w.ShouldClose())

	a.PollEvents()
	assert.Equal(t, []string{"button", "scroll", "cursor"}, got)
	assert.Equal(t, system.Press, w.Key(65))
	assert.True(t, w.ShouldClose())
	x, y := w.Cursor()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)

	a.PollEvents()
	assert.Len(t, got, 3)
}

func TestKeyNames(t *testing.T) {
	a := NewApp()
	n, ok := a.KeyName(65)
	assert.True(t, ok)
	assert.Equal(t, "a", n)
	n, ok = a.KeyName(321)
	assert.True(t, ok)
	assert.Equal(t, "1", n)
	_, ok = a.KeyName(system.KeyEscape)
	assert.False(t, ok)
	_, ok = a.KeyName(32)
	assert.False(t, ok)

	a.SetKeyName(32, "space")
	n, _ = a.KeyName(32)
	assert.Equal(t, "space", n)
	a.SetKeyName(32, "")
	_, ok = a.KeyName(32)
	assert.False(t, ok)
}

func TestTime(t *testing.T) {
	a := NewApp()
	now := time.Unix(100, 0)
	a.Now = func() time.Time { return now }
	assert.Equal(t, 0.0, a.Time())
	require.NoError(t, a.Init())
	now = now.Add(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, a.Time(), 1e-9)
}
