// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"cogentcore.org/glscript/system"
)

type eventKind int32

const (
	buttonEvent eventKind = iota
	scrollEvent
	cursorEvent
)

// event is an input event waiting for the next Flip.
type event struct {
	kind   eventKind
	button system.MouseButton
	action system.Action
	x, y   float64
}

// Input is the snapshot of the mouse state as of the last Flip.
// The window callbacks queue events, and Flip applies them in order.
type Input struct {
	cursor  [2]float64
	scroll  [2]float64
	buttons [3]system.Action // left, middle, right
	queue   []event
}

func (in *Input) push(e event) {
	in.queue = append(in.queue, e)
}

// drain applies the queued events to the snapshot.
func (in *Input) drain() {
	for _, e := range in.queue {
		switch e.kind {
		case buttonEvent:
			switch e.button {
			case system.MouseButtonLeft:
				in.buttons[0] = e.action
			case system.MouseButtonMiddle:
				in.buttons[1] = e.action
			case system.MouseButtonRight:
				in.buttons[2] = e.action
			}
		case scrollEvent:
			in.scroll = [2]float64{e.x, e.y}
		case cursorEvent:
			in.cursor = [2]float64{e.x, e.y}
		}
	}
	in.queue = in.queue[:0]
}

// CursorPos returns the cursor position in window coordinates.
func (c *Context) CursorPos() ([2]float64, error) {
	if err := c.check(); err != nil {
		return [2]float64{}, err
	}
	return c.input.cursor, nil
}

// MouseButtons returns the last action of the left, middle and right
// mouse buttons.
func (c *Context) MouseButtons() ([3]system.Action, error) {
	if err := c.check(); err != nil {
		return [3]system.Action{}, err
	}
	return c.input.buttons, nil
}

// ScrollWheel returns the offsets of the last scroll event.
func (c *Context) ScrollWheel() ([2]float64, error) {
	if err := c.check(); err != nil {
		return [2]float64{}, err
	}
	return c.input.scroll, nil
}

// SetCursorPos moves the cursor, updating the snapshot immediately.
func (c *Context) SetCursorPos(x, y float64) error {
	if err := c.check(); err != nil {
		return err
	}
	c.input.cursor = [2]float64{x, y}
	c.win.SetCursorPos(x, y)
	return nil
}

// HideCursor hides and captures the cursor, for unlimited relative
// movement.
func (c *Context) HideCursor() error {
	if err := c.check(); err != nil {
		return err
	}
	c.win.SetCursorMode(system.CursorDisabled)
	return nil
}

// ShowCursor restores the normal cursor.
func (c *Context) ShowCursor() error {
	if err := c.check(); err != nil {
		return err
	}
	c.win.SetCursorMode(system.CursorNormal)
	return nil
}
