// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"fmt"

	"cogentcore.org/glscript/base/iox/imagex"
	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/marshal"
)

// BufferData uploads data to the buffer bound to target as float32
// values, or as uint32 indices when elementArray is set.
func (c *Context) BufferData(target uint32, data []float64, usage uint32, elementArray bool) error {
	if err := c.check(); err != nil {
		return err
	}
	et := marshal.Float32
	if elementArray {
		et = marshal.Uint32
	}
	c.gl.BufferData(target, marshal.Encode(data, et), usage)
	return nil
}

// BufferSubData replaces size bytes of the buffer bound to target,
// starting at the byte offset, with data as float32 values.
func (c *Context) BufferSubData(target uint32, offset, size int, data []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	if size < 0 {
		return fmt.Errorf("buffer sub data: negative size %d", size)
	}
	n := (size + 3) / 4
	if err := marshal.Check("buffer data", data, n); err != nil {
		return err
	}
	c.gl.BufferSubData(target, offset, marshal.Encode(data[:n], marshal.Float32)[:size])
	return nil
}

// alignment returns the row alignment of pixel transfers, given
// UNPACK_ALIGNMENT or PACK_ALIGNMENT.
func (c *Context) alignment(pname uint32) int {
	v := make([]int32, scratchLen)
	c.gl.GetIntegerv(pname, v)
	switch v[0] {
	case 1, 2, 4, 8:
		return int(v[0])
	}
	return 4
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// alignRows returns tightly packed rows with each row start moved to
// a multiple of align bytes.
func alignRows(data []byte, rowBytes, rows, align int) []byte {
	stride := alignUp(rowBytes, align)
	if stride == rowBytes || rows == 0 {
		return data
	}
	res := make([]byte, stride*(rows-1)+rowBytes)
	for r := range rows {
		copy(res[r*stride:], data[r*rowBytes:(r+1)*rowBytes])
	}
	return res
}

// pixels returns the native upload buffer for width x height pixels of
// the given format and type. A nil container or an unknown layout
// yields a nil buffer.
func (c *Context) pixels(width, height int32, format, xtype uint32, pixels []float64) ([]byte, error) {
	et, comps, ok := marshal.PixelLayout(format, xtype)
	if pixels == nil || !ok {
		return nil, nil
	}
	w, h := max(int(width), 0), max(int(height), 0)
	n := w * h * comps
	if err := marshal.Check("pixels", pixels, n); err != nil {
		return nil, err
	}
	data := marshal.Encode(pixels[:n], et)
	return alignRows(data, w*comps*et.Size(), h, c.alignment(glenum.UNPACK_ALIGNMENT)), nil
}

// TexImage2D uploads a texture image. The pixel container holds
// width*height pixels of the components that format and xtype imply,
// with no row padding. A nil container allocates the texture without
// uploading.
func (c *Context) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	data, err := c.pixels(width, height, format, xtype, pixels)
	if err != nil {
		return err
	}
	c.gl.TexImage2D(target, level, internalformat, width, height, border, format, xtype, data)
	return nil
}

// TexSubImage2D replaces part of a texture image; pixels is laid out
// as for [Context.TexImage2D].
func (c *Context) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	data, err := c.pixels(width, height, format, xtype, pixels)
	if err != nil {
		return err
	}
	c.gl.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, xtype, data)
	return nil
}

// TexImage2DFile decodes an image file and uploads it as the RGB level
// 0 image of the 2D texture, top row first.
func (c *Context) TexImage2DFile(path string) error {
	if err := c.check(); err != nil {
		return err
	}
	pix, w, h, err := imagex.DecodeRGB(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageDecodeFailed, err)
	}
	data := alignRows(pix, w*3, h, c.alignment(glenum.UNPACK_ALIGNMENT))
	c.gl.TexImage2D(glenum.TEXTURE_2D, 0, glenum.RGB, int32(w), int32(h), 0, glenum.RGB, glenum.UNSIGNED_BYTE, data)
	return nil
}

// CompressedTexImage2D uploads imageSize bytes of compressed data.
func (c *Context) CompressedTexImage2D(target uint32, level int32, internalformat uint32, width, height, border, imageSize int32, data []byte) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := marshal.Check("compressed data", data, int(imageSize)); err != nil {
		return err
	}
	c.gl.CompressedTexImage2D(target, level, internalformat, width, height, border, data[:max(imageSize, 0)])
	return nil
}

// CompressedTexSubImage2D replaces part of a compressed texture image
// with imageSize bytes of data.
func (c *Context) CompressedTexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format uint32, imageSize int32, data []byte) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := marshal.Check("compressed data", data, int(imageSize)); err != nil {
		return err
	}
	c.gl.CompressedTexSubImage2D(target, level, xoffset, yoffset, width, height, format, data[:max(imageSize, 0)])
	return nil
}

func (c *Context) CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, width, height, border int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.CopyTexImage2D(target, level, internalformat, x, y, width, height, border)
	return nil
}

func (c *Context) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.CopyTexSubImage2D(target, level, xoffset, yoffset, x, y, width, height)
	return nil
}

func (c *Context) TexParameterf(target, pname uint32, param float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.TexParameterf(target, pname, param)
	return nil
}

func (c *Context) TexParameteri(target, pname uint32, param int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.TexParameteri(target, pname, param)
	return nil
}

// TexParameterfv sets a texture parameter from the values of params,
// which must hold at least one value.
func (c *Context) TexParameterfv(target, pname uint32, params []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	v, err := marshal.Floats("texture parameters", params, max(len(params), 1))
	if err != nil {
		return err
	}
	c.gl.TexParameterfv(target, pname, padded(v))
	return nil
}

// TexParameteriv is [Context.TexParameterfv] for int parameters.
func (c *Context) TexParameteriv(target, pname uint32, params []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	v, err := marshal.Ints("texture parameters", params, max(len(params), 1))
	if err != nil {
		return err
	}
	c.gl.TexParameteriv(target, pname, padded(v))
	return nil
}

// padded returns v extended with zeros to the scratch length, for
// vector parameters the native side may read more of than given.
func padded[T any](v []T) []T {
	if len(v) >= scratchLen {
		return v
	}
	res := make([]T, scratchLen)
	copy(res, v)
	return res
}

////////////////////////////////////////////////////////
//  Read back

// readPixels reads a block of pixels into a buffer laid out with the
// pack alignment, returning it with its row stride and row size.
func (c *Context) readPixels(x, y, width, height int32, format, xtype uint32) (buf []byte, stride, row int, et marshal.ElementType, ok bool) {
	et, comps, ok := marshal.PixelLayout(format, xtype)
	if !ok {
		c.gl.ReadPixels(x, y, width, height, format, xtype, nil)
		return nil, 0, 0, et, false
	}
	w, h := max(int(width), 0), max(int(height), 0)
	row = w * comps * et.Size()
	stride = alignUp(row, c.alignment(glenum.PACK_ALIGNMENT))
	if h > 0 {
		buf = make([]byte, stride*(h-1)+row)
	}
	c.gl.ReadPixels(x, y, width, height, format, xtype, buf)
	return buf, stride, row, et, true
}

// ReadPixels returns the values of a block of framebuffer pixels, bottom
// row first, with no row padding. If n is positive at most the first n
// values are returned.
func (c *Context) ReadPixels(x, y, width, height int32, format, xtype uint32, n int) ([]float64, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	buf, stride, row, et, ok := c.readPixels(x, y, width, height, format, xtype)
	if !ok {
		return []float64{}, nil
	}
	vals := make([]float64, 0, len(buf)/et.Size())
	for r := 0; row > 0 && r*stride < len(buf); r++ {
		vals = append(vals, marshal.Decode(buf[r*stride:r*stride+row], et)...)
	}
	if n > 0 && n < len(vals) {
		vals = vals[:n]
	}
	return vals, nil
}

// SaveFramebuffer writes the pixels of the bound framebuffer to an
// image file, with the format taken from the file extension.
func (c *Context) SaveFramebuffer(path string) error {
	if err := c.check(); err != nil {
		return err
	}
	w, h := c.win.FramebufferSize()
	buf, stride, _, _, _ := c.readPixels(0, 0, int32(w), int32(h), glenum.RGBA, glenum.UNSIGNED_BYTE)
	im, err := imagex.FromPixels(buf, w, h, stride, true)
	if err != nil {
		return err
	}
	return imagex.Save(im, path)
}
