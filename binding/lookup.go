// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"cogentcore.org/glscript/system"
)

// Flag returns the value of a GL enum name such as "GL_TRIANGLES",
// or 0 if the name is unknown or no window has been created yet.
func (c *Context) Flag(name string) uint32 {
	return c.flags.Lookup(name)
}

// FindFlag returns the value of a GL enum name and whether it is known.
func (c *Context) FindFlag(name string) (uint32, bool) {
	return c.flags.Find(name)
}

// FlagsOR returns the bitwise OR of two enum values, as used for
// clear masks.
func (c *Context) FlagsOR(a, b string) uint32 {
	return c.flags.LookupOr(a, b)
}

// KeyID returns the key code for a key display name, or 0 if the name
// is unknown. Keys without a display name share the name "NULL".
func (c *Context) KeyID(name string) int {
	return c.keys.Lookup(name)
}

// FindKey returns the key code for a key display name and whether it
// is known.
func (c *Context) FindKey(name string) (int, bool) {
	return c.keys.Find(name)
}

// KeyByName returns the current state of the named key.
func (c *Context) KeyByName(name string) (system.Action, error) {
	return c.KeyByCode(c.keys.Lookup(name))
}

// KeyByCode returns the current state of the key with the given code.
func (c *Context) KeyByCode(code int) (system.Action, error) {
	if err := c.check(); err != nil {
		return system.Release, err
	}
	return c.win.Key(code), nil
}

// KeyName returns the display name of a key code in the current
// keyboard layout, or "" if the key has none.
func (c *Context) KeyName(code int) (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}
	name, _ := c.tk.KeyName(code)
	return name, nil
}
