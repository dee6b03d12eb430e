// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marshal

import (
	"testing"

	"cogentcore.org/glscript/glenum"
	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	v := []float64{0, 1, 2, 250}
	for _, et := range []ElementType{Float32, Uint32, Int32, Uint16, Int16, Uint8} {
		b := Encode(v, et)
		assert.Len(t, b, len(v)*et.Size(), et.String())
		assert.Equal(t, v, Decode(b, et), et.String())
	}
	assert.Equal(t, []float64{-3}, Decode(Encode([]float64{-3}, Int8), Int8))
	assert.Equal(t, []float64{1}, Decode(Encode([]float64{1.75}, Uint32), Uint32))
}

func TestPixelLayout(t *testing.T) {
	et, n, ok := PixelLayout(glenum.RGB, glenum.UNSIGNED_BYTE)
	assert.True(t, ok)
	assert.Equal(t, Uint8, et)
	assert.Equal(t, 3, n)

	et, n, ok = PixelLayout(glenum.RGBA, glenum.FLOAT)
	assert.True(t, ok)
	assert.Equal(t, Float32, et)
	assert.Equal(t, 4, n)

	et, n, ok = PixelLayout(glenum.RGB, glenum.UNSIGNED_SHORT_5_6_5)
	assert.True(t, ok)
	assert.Equal(t, Uint16, et)
	assert.Equal(t, 1, n)

	_, n, ok = PixelLayout(glenum.LUMINANCE_ALPHA, glenum.UNSIGNED_BYTE)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, _, ok = PixelLayout(glenum.RGB, glenum.TEXTURE_2D)
	assert.False(t, ok)
	_, _, ok = PixelLayout(glenum.TEXTURE_2D, glenum.UNSIGNED_BYTE)
	assert.False(t, ok)
}
