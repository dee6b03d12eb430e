// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownCodes(t *testing.T) {
	assert.Len(t, KnownCodes, 120)
	seen := map[int]bool{}
	for _, c := range KnownCodes {
		assert.False(t, seen[c], "duplicate code %d", c)
		seen[c] = true
	}
}

func TestRegister(t *testing.T) {
	// printable ASCII keys are named, everything else is not
	namer := NamerFunc(func(code int) (string, bool) {
		if code < 256 && code != 161 && code != 162 {
			return strings.ToLower(string(rune(code))), true
		}
		return "", false
	})
	var tb Table
	tb.Register(namer)

	assert.Equal(t, 65, tb.Lookup("a"))
	assert.Equal(t, 32, tb.Lookup(" "))
	assert.Equal(t, 0, tb.Lookup("missing"))
	_, ok := tb.Find("missing")
	assert.False(t, ok)

	// the last unnamed code wins
	code, ok := tb.Find(NullName)
	assert.True(t, ok)
	assert.Equal(t, 348, code)

	named := map[string]bool{}
	for _, c := range KnownCodes {
		if n, ok := namer.KeyName(c); ok {
			named[n] = true
		}
	}
	assert.Equal(t, len(named)+1, tb.Len())
}

func TestRegisterCollisions(t *testing.T) {
	// two codes with the same display name keep the later one
	namer := NamerFunc(func(code int) (string, bool) {
		switch code {
		case 48, 320:
			return "0", true
		}
		return "", false
	})
	var tb Table
	tb.Register(namer)
	assert.Equal(t, 320, tb.Lookup("0"))
	assert.Equal(t, 2, tb.Len())

	n := 0
	tb.Each(func(name string, code int) { n++ })
	assert.Equal(t, tb.Len(), n)
}
