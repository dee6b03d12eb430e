// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"encoding/binary"
	"math"

	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/marshal"
	"github.com/chewxy/math32"
)

func clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}

// quantize converts a normalized color component to 8 bits.
func quantize(v float32) uint8 {
	return uint8(math32.Floor(clamp01(v)*255 + 0.5))
}

// checkFramebuffer records INVALID_FRAMEBUFFER_OPERATION and returns
// false if the bound framebuffer is incomplete.
func (g *GL) checkFramebuffer() bool {
	if g.CheckFramebufferStatus(glenum.FRAMEBUFFER) != glenum.FRAMEBUFFER_COMPLETE {
		g.setError(glenum.INVALID_FRAMEBUFFER_OPERATION)
		return false
	}
	return true
}

func (g *GL) Clear(mask uint32) {
	if mask&^(glenum.COLOR_BUFFER_BIT|glenum.DEPTH_BUFFER_BIT|glenum.STENCIL_BUFFER_BIT) != 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	if !g.checkFramebuffer() {
		return
	}
	if mask&glenum.COLOR_BUFFER_BIT == 0 || g.boundFramebuffer() != nil {
		return
	}
	x0, y0, x1, y1 := 0, 0, g.width, g.height
	if g.caps[glenum.SCISSOR_TEST] {
		box := g.params[glenum.SCISSOR_BOX]
		x0, y0 = max(x0, int(box[0])), max(y0, int(box[1]))
		x1, y1 = min(x1, int(box[0]+box[2])), min(y1, int(box[1]+box[3]))
	}
	cc := g.params[glenum.COLOR_CLEAR_VALUE]
	wm := g.params[glenum.COLOR_WRITEMASK]
	var px [4]uint8
	for i := range px {
		px[i] = quantize(float32(cc[i]))
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			o := (y*g.width + x) * 4
			for i := range px {
				if wm[i] != 0 {
					g.color[o+i] = px[i]
				}
			}
		}
	}
}

// ReadPixels reads from the color buffer of the default framebuffer,
// bottom row first, honoring PACK_ALIGNMENT. Framebuffer objects have
// no storage and read as zero.
func (g *GL) ReadPixels(x, y, width, height int32, format, xtype uint32, data []byte) {
	et, comps, ok := marshal.PixelLayout(format, xtype)
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	if (et != marshal.Uint8 && et != marshal.Float32) || (format != glenum.RGBA && format != glenum.RGB && format != glenum.ALPHA) {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	if !g.checkFramebuffer() {
		return
	}
	fbo := g.boundFramebuffer() != nil
	stride := alignUp(int(width)*comps*et.Size(), int(g.param(glenum.PACK_ALIGNMENT)))
	chans := map[uint32][]int{glenum.RGBA: {0, 1, 2, 3}, glenum.RGB: {0, 1, 2}, glenum.ALPHA: {3}}[format]
	for row := range int(height) {
		for col := range int(width) {
			sx, sy := int(x)+col, int(y)+row
			inside := !fbo && sx >= 0 && sy >= 0 && sx < g.width && sy < g.height
			for c, ch := range chans {
				var v uint8
				if inside {
					v = g.color[(sy*g.width+sx)*4+ch]
				}
				o := row*stride + (col*comps+c)*et.Size()
				if o+et.Size() > len(data) {
					return
				}
				if et == marshal.Uint8 {
					data[o] = v
				} else {
					binary.NativeEndian.PutUint32(data[o:], math.Float32bits(float32(v)/255))
				}
			}
		}
	}
}

// alignUp rounds n up to a multiple of align.
func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

func isDrawMode(mode uint32) bool {
	return mode <= glenum.TRIANGLE_FAN
}

func (g *GL) DrawArrays(mode uint32, first, count int32) {
	if !isDrawMode(mode) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if first < 0 || count < 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	if !g.checkFramebuffer() || !g.checkAttribBuffers(int(first)+int(count)) {
		return
	}
	g.Draws++
}

func (g *GL) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	if !isDrawMode(mode) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	switch xtype {
	case glenum.UNSIGNED_BYTE, glenum.UNSIGNED_SHORT, glenum.UNSIGNED_INT:
	default:
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if count < 0 || offset < 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	if !g.checkFramebuffer() {
		return
	}
	b := g.boundBuffer(glenum.ELEMENT_ARRAY_BUFFER)
	if b == nil {
		return
	}
	et, _ := marshal.ElementTypeOf(xtype)
	if offset+int(count)*et.Size() > len(b.data) {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	indices := marshal.Decode(b.data[offset:offset+int(count)*et.Size()], et)
	maxIndex := 0
	for _, i := range indices {
		maxIndex = max(maxIndex, int(i))
	}
	if count > 0 && !g.checkAttribBuffers(maxIndex+1) {
		return
	}
	g.Draws++
}

// checkAttribBuffers records INVALID_OPERATION and returns false if an
// enabled attribute array is too short for the given vertex count.
func (g *GL) checkAttribBuffers(vertices int) bool {
	if vertices == 0 {
		return true
	}
	for _, a := range g.attribs {
		if !a.enabled || a.buffer == 0 {
			continue
		}
		b := g.buffers[a.buffer]
		if b == nil {
			g.setError(glenum.INVALID_OPERATION)
			return false
		}
		et, _ := marshal.ElementTypeOf(a.xtype)
		elem := int(a.size) * et.Size()
		stride := int(a.stride)
		if stride == 0 {
			stride = elem
		}
		if a.offset+(vertices-1)*stride+elem > len(b.data) {
			g.setError(glenum.INVALID_OPERATION)
			return false
		}
	}
	return true
}

// Pixel returns the RGBA color of the default framebuffer at x, y,
// with y counted from the bottom.
func (g *GL) Pixel(x, y int) [4]uint8 {
	var px [4]uint8
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return px
	}
	copy(px[:], g.color[(y*g.width+x)*4:])
	return px
}
