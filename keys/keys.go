// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keys provides the name to code index of keyboard keys,
// built by asking the windowing toolkit for the display name of each
// known key code.
package keys

import "log/slog"

// NullName is the name under which codes without a display name are
// registered. Only the last such code survives in the table.
const NullName = "NULL"

// KnownCodes are the key codes that are indexed, in registration order.
// They are the printable keys, the function and navigation keys, the
// keypad and the modifiers.
var KnownCodes = []int{
	32, 39, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 59, 61,
	65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 81, 82,
	83, 84, 85, 86, 87, 88, 89, 90, 91, 92, 93, 96, 161, 162,
	256, 257, 258, 259, 260, 261, 262, 263, 264, 265, 266, 267, 268, 269,
	280, 281, 282, 283, 284,
	290, 291, 292, 293, 294, 295, 296, 297, 298, 299, 300, 301, 302, 303,
	304, 305, 306, 307, 308, 309, 310, 311, 312, 313, 314,
	320, 321, 322, 323, 324, 325, 326, 327, 328, 329, 330, 331, 332, 333,
	334, 335, 336,
	340, 341, 342, 343, 344, 345, 346, 347, 348,
}

// Namer reports the display name of a key code, if it has one.
type Namer interface {
	KeyName(code int) (string, bool)
}

// NamerFunc adapts an ordinary function to a [Namer].
type NamerFunc func(code int) (string, bool)

func (f NamerFunc) KeyName(code int) (string, bool) { return f(code) }

// Table maps key display names to key codes.
type Table struct {
	codes map[string]int
}

// Register rebuilds the table from [KnownCodes] using the given namer.
// Later codes overwrite earlier ones with the same name.
func (t *Table) Register(n Namer) {
	t.codes = make(map[string]int, len(KnownCodes))
	for _, code := range KnownCodes {
		name, ok := n.KeyName(code)
		if !ok || name == "" {
			name = NullName
		}
		t.codes[name] = code
	}
	slog.Debug("registered key names", "count", len(t.codes))
}

// Lookup returns the code for the given name, or 0 if the name is unknown.
func (t *Table) Lookup(name string) int {
	return t.codes[name]
}

// Find returns the code for the given name and whether it is known.
func (t *Table) Find(name string) (int, bool) {
	c, ok := t.codes[name]
	return c, ok
}

// Len returns the number of names in the table.
func (t *Table) Len() int {
	return len(t.codes)
}

// Each calls fn for every entry in the table, in no particular order.
func (t *Table) Each(fn func(name string, code int)) {
	for name, code := range t.codes {
		fn(name, code)
	}
}
