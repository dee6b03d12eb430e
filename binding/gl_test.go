// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glscript/base/iox/imagex"
	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/marshal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noError asserts that the GL error flag is clear.
func noError(t *testing.T, c *Context) {
	t.Helper()
	e, err := c.GetError()
	require.NoError(t, err)
	assert.Equal(t, uint32(glenum.NO_ERROR), e)
}

func TestBuffers(t *testing.T) {
	c, app := openContext(t)
	bufs, err := c.GenBuffers(3)
	require.NoError(t, err)
	require.Len(t, bufs, 3)
	assert.NotContains(t, bufs, uint32(0))
	assert.NotEqual(t, bufs[0], bufs[1])
	assert.NotEqual(t, bufs[1], bufs[2])
	assert.NotEqual(t, bufs[0], bufs[2])

	_, err = c.GenBuffers(-1)
	assert.Error(t, err)
	empty, err := c.GenBuffers(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, c.BindBuffer(glenum.ARRAY_BUFFER, bufs[0]))
	require.NoError(t, c.BufferData(glenum.ARRAY_BUFFER, []float64{1, 2, 3, 4}, glenum.STATIC_DRAW, false))
	size, err := c.GetBufferParameteriv(glenum.ARRAY_BUFFER, glenum.BUFFER_SIZE, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{16}, size)

	require.NoError(t, c.BufferSubData(glenum.ARRAY_BUFFER, 4, 6, []float64{9, 8}))
	want := marshal.Encode([]float64{1, 9, 8, 4}, marshal.Float32)
	copy(want[10:12], marshal.Encode([]float64{3}, marshal.Float32)[2:])
	assert.Equal(t, want, app.GL().BufferContents(bufs[0]))
	assert.ErrorIs(t, c.BufferSubData(glenum.ARRAY_BUFFER, 0, 6, []float64{9}), marshal.ErrShapeMismatch)
	assert.Error(t, c.BufferSubData(glenum.ARRAY_BUFFER, 0, -1, nil))

	require.NoError(t, c.BindBuffer(glenum.ELEMENT_ARRAY_BUFFER, bufs[1]))
	require.NoError(t, c.BufferData(glenum.ELEMENT_ARRAY_BUFFER, []float64{0, 1, 2}, glenum.STATIC_DRAW, true))
	assert.Equal(t, marshal.Encode([]float64{0, 1, 2}, marshal.Uint32), app.GL().BufferContents(bufs[1]))
	noError(t, c)

	assert.ErrorIs(t, c.DeleteBuffers(3, bufs[:2]), marshal.ErrShapeMismatch)
	require.NoError(t, c.DeleteBuffers(2, bufs))
	for i, want := range []bool{false, false, true} {
		is, err := c.IsBuffer(bufs[i])
		require.NoError(t, err)
		assert.Equal(t, want, is, "buffer %d", i)
	}
}

func TestTexturePixels(t *testing.T) {
	c, app := openContext(t)
	tex, err := c.GenTextures(1)
	require.NoError(t, err)
	require.NoError(t, c.BindTexture(glenum.TEXTURE_2D, tex[0]))

	pix := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	require.NoError(t, c.TexImage2D(glenum.TEXTURE_2D, 0, glenum.RGB, 2, 2, 0, glenum.RGB, glenum.UNSIGNED_BYTE, pix))
	data, w, h := app.GL().TexImage(tex[0])
	assert.Equal(t, []int32{2, 2}, []int32{w, h})
	// Rows are padded to the default unpack alignment of 4.
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 0, 0, 7, 8, 9, 10, 11, 12}, data)

	require.NoError(t, c.PixelStorei(glenum.UNPACK_ALIGNMENT, 1))
	require.NoError(t, c.TexImage2D(glenum.TEXTURE_2D, 0, glenum.RGB, 2, 2, 0, glenum.RGB, glenum.UNSIGNED_BYTE, pix))
	data, _, _ = app.GL().TexImage(tex[0])
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, data)

	err = c.TexImage2D(glenum.TEXTURE_2D, 0, glenum.RGB, 2, 2, 0, glenum.RGB, glenum.UNSIGNED_BYTE, pix[:11])
	var se *marshal.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 12, se.Want)
	assert.Equal(t, 11, se.Got)

	require.NoError(t, c.TexImage2D(glenum.TEXTURE_2D, 0, glenum.RGBA, 4, 4, 0, glenum.RGBA, glenum.UNSIGNED_BYTE, nil))
	_, w, h = app.GL().TexImage(tex[0])
	assert.Equal(t, []int32{4, 4}, []int32{w, h})
	noError(t, c)

	require.NoError(t, c.TexParameteri(glenum.TEXTURE_2D, glenum.TEXTURE_MIN_FILTER, glenum.LINEAR))
	filter, err := c.GetTexParameteriv(glenum.TEXTURE_2D, glenum.TEXTURE_MIN_FILTER, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{glenum.LINEAR}, filter)
	assert.Error(t, c.TexParameteriv(glenum.TEXTURE_2D, glenum.TEXTURE_MIN_FILTER, nil))

	require.NoError(t, c.DeleteTextures(1, tex))
	is, err := c.IsTexture(tex[0])
	require.NoError(t, err)
	assert.False(t, is)
}

func TestTexImage2DFile(t *testing.T) {
	c, app := openContext(t)
	dir := t.TempDir()

	im := image.NewRGBA(image.Rect(0, 0, 3, 2))
	im.Set(0, 0, color.RGBA{255, 0, 0, 255})
	im.Set(2, 1, color.RGBA{0, 0, 255, 255})
	path := filepath.Join(dir, "tex.png")
	require.NoError(t, imagex.Save(im, path))

	tex, err := c.GenTextures(1)
	require.NoError(t, err)
	require.NoError(t, c.BindTexture(glenum.TEXTURE_2D, tex[0]))
	require.NoError(t, c.TexImage2DFile(path))
	data, w, h := app.GL().TexImage(tex[0])
	assert.Equal(t, []int32{3, 2}, []int32{w, h})
	require.Len(t, data, 12+9)
	assert.Equal(t, []byte{255, 0, 0}, data[0:3])
	assert.Equal(t, []byte{0, 0, 255}, data[18:21])
	noError(t, c)

	err = c.TexImage2DFile(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, ErrImageDecodeFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o666))
	assert.ErrorIs(t, c.TexImage2DFile(bad), ErrImageDecodeFailed)
}

func TestCompressedTexImage(t *testing.T) {
	c, _ := openContext(t)
	err := c.CompressedTexImage2D(glenum.TEXTURE_2D, 0, glenum.RGBA, 4, 4, 0, 16, make([]byte, 8))
	assert.ErrorIs(t, err, marshal.ErrShapeMismatch)
	err = c.CompressedTexSubImage2D(glenum.TEXTURE_2D, 0, 0, 0, 4, 4, glenum.RGBA, 16, make([]byte, 15))
	assert.ErrorIs(t, err, marshal.ErrShapeMismatch)
}

func TestReadPixels(t *testing.T) {
	c, _ := openContext(t)
	require.NoError(t, c.ClearColor(1, 0, 0, 1))
	require.NoError(t, c.Clear(glenum.COLOR_BUFFER_BIT))

	// A 3 pixel RGB row is 9 bytes, padded to 12 by PACK_ALIGNMENT.
	vals, err := c.ReadPixels(0, 0, 3, 2, glenum.RGB, glenum.UNSIGNED_BYTE, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{255, 0, 0, 255, 0, 0, 255, 0, 0, 255, 0, 0, 255, 0, 0, 255, 0, 0}, vals)

	vals, err = c.ReadPixels(0, 0, 1, 1, glenum.RGBA, glenum.UNSIGNED_BYTE, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{255, 0}, vals)

	vals, err = c.ReadPixels(0, 0, 1, 1, glenum.RGBA, glenum.FLOAT, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, vals, 1e-6)

	vals, err = c.ReadPixels(0, 0, 1, 1, glenum.TEXTURE_2D, glenum.UNSIGNED_BYTE, 0)
	require.NoError(t, err)
	assert.Empty(t, vals)
	e, _ := c.GetError()
	assert.Equal(t, uint32(glenum.INVALID_ENUM), e)
}

func TestSaveFramebuffer(t *testing.T) {
	c, _ := openContext(t)
	require.NoError(t, c.ClearColor(0, 1, 0, 1))
	require.NoError(t, c.Clear(glenum.COLOR_BUFFER_BIT))
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SaveFramebuffer(path))

	im, _, err := imagex.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), im.Bounds())
	r, g, b, a := im.At(10, 10).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestQueries(t *testing.T) {
	c, _ := openContext(t)
	align, err := c.GetIntegerv(glenum.UNPACK_ALIGNMENT, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{4}, align)

	// A short n is honored even when the native side writes more.
	vp, err := c.GetIntegerv(glenum.VIEWPORT, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0}, vp)

	depth, err := c.GetFloatv(glenum.DEPTH_RANGE, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, depth)

	_, err = c.GetIntegerv(glenum.VIEWPORT, 0)
	var se *marshal.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Want)
	assert.ErrorIs(t, err, marshal.ErrShapeMismatch)

	big, err := c.GetFloatv(glenum.VIEWPORT, 300)
	require.NoError(t, err)
	assert.Len(t, big, 300)

	s, err := c.GetString(glenum.VERSION)
	require.NoError(t, err)
	assert.NotEmpty(t, s)

	require.NoError(t, c.Enable(glenum.BLEND))
	on, err := c.IsEnabled(glenum.BLEND)
	require.NoError(t, err)
	assert.True(t, on)
	noError(t, c)
}
