// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"slices"

	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/marshal"
)

type buffer struct {
	data  []byte
	usage uint32
}

type texture struct {
	target         uint32
	width, height  int32
	internalformat int32
	params         map[uint32]float64

	// data is the level 0 image as uploaded, with unpack row padding.
	data []byte
}

type renderbuffer struct {
	width, height  int32
	internalformat uint32
}

type attachment struct {
	kind  uint32
	name  uint32
	level int32
}

type framebuffer struct {
	attachments map[uint32]attachment
}

type vertexAttrib struct {
	enabled    bool
	size       int32
	xtype      uint32
	normalized bool
	stride     int32
	offset     int
	buffer     uint32
	current    [4]float32
}

////////////////////////////////////////////////////////
//  Buffers

func (g *GL) GenBuffers(n int) []uint32 {
	names := g.genNames("buffer", n)
	for _, b := range names {
		g.buffers[b] = &buffer{usage: glenum.STATIC_DRAW}
	}
	return names
}

func (g *GL) IsBuffer(b uint32) bool {
	_, ok := g.buffers[b]
	return ok && b != 0
}

func bufferBinding(target uint32) (uint32, bool) {
	switch target {
	case glenum.ARRAY_BUFFER:
		return glenum.ARRAY_BUFFER_BINDING, true
	case glenum.ELEMENT_ARRAY_BUFFER:
		return glenum.ELEMENT_ARRAY_BUFFER_BINDING, true
	}
	return 0, false
}

func (g *GL) BindBuffer(target, b uint32) {
	binding, ok := bufferBinding(target)
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if b != 0 && g.buffers[b] == nil {
		g.buffers[b] = &buffer{usage: glenum.STATIC_DRAW}
	}
	g.setParam(binding, float64(b))
}

// boundBuffer returns the buffer bound to target, recording an error
// if there is none.
func (g *GL) boundBuffer(target uint32) *buffer {
	binding, ok := bufferBinding(target)
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return nil
	}
	b := g.buffers[uint32(g.param(binding))]
	if b == nil {
		g.setError(glenum.INVALID_OPERATION)
	}
	return b
}

func (g *GL) BufferData(target uint32, data []byte, usage uint32) {
	switch usage {
	case glenum.STREAM_DRAW, glenum.STATIC_DRAW, glenum.DYNAMIC_DRAW:
	default:
		g.setError(glenum.INVALID_ENUM)
		return
	}
	b := g.boundBuffer(target)
	if b == nil {
		return
	}
	b.data = slices.Clone(data)
	if b.data == nil {
		b.data = []byte{}
	}
	b.usage = usage
}

func (g *GL) BufferSubData(target uint32, offset int, data []byte) {
	b := g.boundBuffer(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	copy(b.data[offset:], data)
}

func (g *GL) GetBufferParameteriv(target, pname uint32, params []int32) {
	b := g.boundBuffer(target)
	if b == nil || len(params) == 0 {
		return
	}
	switch pname {
	case glenum.BUFFER_SIZE:
		params[0] = int32(len(b.data))
	case glenum.BUFFER_USAGE:
		params[0] = int32(b.usage)
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

// BufferContents returns the data store of buffer b, or nil if b is
// not a buffer.
func (g *GL) BufferContents(b uint32) []byte {
	if buf := g.buffers[b]; buf != nil {
		return buf.data
	}
	return nil
}

func (g *GL) DeleteBuffers(buffers []uint32) {
	for _, b := range buffers {
		if b == 0 || g.buffers[b] == nil {
			continue
		}
		delete(g.buffers, b)
		for _, binding := range []uint32{glenum.ARRAY_BUFFER_BINDING, glenum.ELEMENT_ARRAY_BUFFER_BINDING} {
			if uint32(g.param(binding)) == b {
				g.setParam(binding, 0)
			}
		}
		for i := range g.attribs {
			if g.attribs[i].buffer == b {
				g.attribs[i].buffer = 0
			}
		}
	}
}

////////////////////////////////////////////////////////
//  Textures

func (g *GL) GenTextures(n int) []uint32 {
	names := g.genNames("texture", n)
	for _, t := range names {
		g.textures[t] = newTexture(0)
	}
	return names
}

func newTexture(target uint32) *texture {
	return &texture{target: target, params: map[uint32]float64{
		glenum.TEXTURE_MIN_FILTER: glenum.NEAREST_MIPMAP_LINEAR,
		glenum.TEXTURE_MAG_FILTER: glenum.LINEAR,
		glenum.TEXTURE_WRAP_S:     glenum.REPEAT,
		glenum.TEXTURE_WRAP_T:     glenum.REPEAT,
	}}
}

func (g *GL) IsTexture(t uint32) bool {
	_, ok := g.textures[t]
	return ok && t != 0
}

func (g *GL) ActiveTexture(unit uint32) {
	if unit < glenum.TEXTURE0 || unit >= glenum.TEXTURE0+maxTextureUnits {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	g.setParam(glenum.ACTIVE_TEXTURE, float64(unit))
	g.setParam(glenum.TEXTURE_BINDING_2D, float64(g.boundTextures[[2]uint32{unit, glenum.TEXTURE_2D}]))
	g.setParam(glenum.TEXTURE_BINDING_CUBE_MAP, float64(g.boundTextures[[2]uint32{unit, glenum.TEXTURE_CUBE_MAP}]))
}

func textureBinding(target uint32) (uint32, bool) {
	switch target {
	case glenum.TEXTURE_2D:
		return glenum.TEXTURE_BINDING_2D, true
	case glenum.TEXTURE_CUBE_MAP:
		return glenum.TEXTURE_BINDING_CUBE_MAP, true
	}
	return 0, false
}

// imageTarget returns the texture target that owns the given image
// target, such as a cube map face.
func imageTarget(target uint32) uint32 {
	if target >= glenum.TEXTURE_CUBE_MAP_POSITIVE_X && target <= glenum.TEXTURE_CUBE_MAP_NEGATIVE_Z {
		return glenum.TEXTURE_CUBE_MAP
	}
	return target
}

func (g *GL) BindTexture(target, t uint32) {
	binding, ok := textureBinding(target)
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if t != 0 {
		tex := g.textures[t]
		if tex == nil {
			tex = newTexture(target)
			g.textures[t] = tex
		}
		if tex.target == 0 {
			tex.target = target
		}
		if tex.target != target {
			g.setError(glenum.INVALID_OPERATION)
			return
		}
	}
	unit := uint32(g.param(glenum.ACTIVE_TEXTURE))
	g.boundTextures[[2]uint32{unit, target}] = t
	g.setParam(binding, float64(t))
}

func (g *GL) boundTexture(target uint32) *texture {
	binding, ok := textureBinding(imageTarget(target))
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return nil
	}
	tex := g.textures[uint32(g.param(binding))]
	if tex == nil {
		g.setError(glenum.INVALID_OPERATION)
	}
	return tex
}

func (g *GL) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels []byte) {
	tex := g.boundTexture(target)
	if tex == nil {
		return
	}
	if level < 0 || width < 0 || height < 0 || border != 0 || width > maxTextureSize || height > maxTextureSize {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	if uint32(internalformat) != format {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	if !g.checkUnpack(width, height, format, xtype, pixels) {
		return
	}
	if level == 0 {
		tex.width, tex.height, tex.internalformat = width, height, internalformat
		tex.data = slices.Clone(pixels)
	}
}

// checkUnpack validates the pixel transfer layout, recording
// INVALID_ENUM for an unknown one. It panics if pixels is shorter than
// the rows a native implementation would read, including the padding
// that UNPACK_ALIGNMENT requires.
func (g *GL) checkUnpack(width, height int32, format, xtype uint32, pixels []byte) bool {
	et, comps, ok := marshal.PixelLayout(format, xtype)
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return false
	}
	if pixels == nil || width == 0 || height == 0 {
		return true
	}
	row := int(width) * comps * et.Size()
	stride := alignUp(row, int(g.param(glenum.UNPACK_ALIGNMENT)))
	if need := stride*(int(height)-1) + row; len(pixels) < need {
		panic(fmt.Sprintf("offscreen: pixel upload reads %d bytes from a %d byte buffer", need, len(pixels)))
	}
	return true
}

// TexImage returns the level 0 image data of a texture as uploaded,
// and its size.
func (g *GL) TexImage(t uint32) (data []byte, width, height int32) {
	tex := g.textures[t]
	if tex == nil {
		return nil, 0, 0
	}
	return tex.data, tex.width, tex.height
}

func (g *GL) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte) {
	tex := g.boundTexture(target)
	if tex == nil {
		return
	}
	if xoffset < 0 || yoffset < 0 || width < 0 || height < 0 || xoffset+width > tex.width || yoffset+height > tex.height {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.checkUnpack(width, height, format, xtype, pixels)
}

func (g *GL) CompressedTexImage2D(target uint32, level int32, internalformat uint32, width, height, border int32, data []byte) {
	if g.boundTexture(target) == nil {
		return
	}
	// no compressed formats are supported
	g.setError(glenum.INVALID_ENUM)
}

func (g *GL) CompressedTexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format uint32, data []byte) {
	if g.boundTexture(target) == nil {
		return
	}
	g.setError(glenum.INVALID_ENUM)
}

func (g *GL) CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, width, height, border int32) {
	tex := g.boundTexture(target)
	if tex == nil {
		return
	}
	if width < 0 || height < 0 || border != 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	if level == 0 {
		tex.width, tex.height, tex.internalformat = width, height, int32(internalformat)
	}
}

func (g *GL) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32) {
	tex := g.boundTexture(target)
	if tex == nil {
		return
	}
	if xoffset < 0 || yoffset < 0 || xoffset+width > tex.width || yoffset+height > tex.height {
		g.setError(glenum.INVALID_VALUE)
	}
}

func (g *GL) GenerateMipmap(target uint32) {
	g.boundTexture(target)
}

func isTexParam(pname uint32) bool {
	switch pname {
	case glenum.TEXTURE_MIN_FILTER, glenum.TEXTURE_MAG_FILTER, glenum.TEXTURE_WRAP_S, glenum.TEXTURE_WRAP_T:
		return true
	}
	return false
}

func (g *GL) texParameter(target, pname uint32, v float64) {
	tex := g.boundTexture(target)
	if tex == nil {
		return
	}
	if !isTexParam(pname) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	tex.params[pname] = v
}

func (g *GL) TexParameterf(target, pname uint32, param float32) {
	g.texParameter(target, pname, float64(param))
}

func (g *GL) TexParameteri(target, pname uint32, param int32) {
	g.texParameter(target, pname, float64(param))
}

func (g *GL) TexParameterfv(target, pname uint32, params []float32) {
	if len(params) > 0 {
		g.texParameter(target, pname, float64(params[0]))
	}
}

func (g *GL) TexParameteriv(target, pname uint32, params []int32) {
	if len(params) > 0 {
		g.texParameter(target, pname, float64(params[0]))
	}
}

func (g *GL) getTexParameter(target, pname uint32) (float64, bool) {
	tex := g.boundTexture(target)
	if tex == nil {
		return 0, false
	}
	if !isTexParam(pname) {
		g.setError(glenum.INVALID_ENUM)
		return 0, false
	}
	return tex.params[pname], true
}

func (g *GL) GetTexParameterfv(target, pname uint32, params []float32) {
	if v, ok := g.getTexParameter(target, pname); ok && len(params) > 0 {
		params[0] = float32(v)
	}
}

func (g *GL) GetTexParameteriv(target, pname uint32, params []int32) {
	if v, ok := g.getTexParameter(target, pname); ok && len(params) > 0 {
		params[0] = int32(v)
	}
}

func (g *GL) DeleteTextures(textures []uint32) {
	for _, t := range textures {
		if t == 0 || g.textures[t] == nil {
			continue
		}
		delete(g.textures, t)
		for k, b := range g.boundTextures {
			if b == t {
				g.boundTextures[k] = 0
			}
		}
		for _, binding := range []uint32{glenum.TEXTURE_BINDING_2D, glenum.TEXTURE_BINDING_CUBE_MAP} {
			if uint32(g.param(binding)) == t {
				g.setParam(binding, 0)
			}
		}
		g.detachEverywhere(glenum.TEXTURE, t)
	}
}

////////////////////////////////////////////////////////
//  Renderbuffers

func (g *GL) GenRenderbuffers(n int) []uint32 {
	names := g.genNames("renderbuffer", n)
	for _, r := range names {
		g.renderbuffers[r] = &renderbuffer{internalformat: glenum.RGBA4}
	}
	return names
}

func (g *GL) IsRenderbuffer(r uint32) bool {
	_, ok := g.renderbuffers[r]
	return ok && r != 0
}

func (g *GL) BindRenderbuffer(target, r uint32) {
	if target != glenum.RENDERBUFFER {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if r != 0 && g.renderbuffers[r] == nil {
		g.renderbuffers[r] = &renderbuffer{internalformat: glenum.RGBA4}
	}
	g.setParam(glenum.RENDERBUFFER_BINDING, float64(r))
}

func (g *GL) boundRenderbuffer(target uint32) *renderbuffer {
	if target != glenum.RENDERBUFFER {
		g.setError(glenum.INVALID_ENUM)
		return nil
	}
	rb := g.renderbuffers[uint32(g.param(glenum.RENDERBUFFER_BINDING))]
	if rb == nil {
		g.setError(glenum.INVALID_OPERATION)
	}
	return rb
}

func (g *GL) RenderbufferStorage(target, internalformat uint32, width, height int32) {
	rb := g.boundRenderbuffer(target)
	if rb == nil {
		return
	}
	switch internalformat {
	case glenum.RGBA4, glenum.RGB565, glenum.RGB5_A1, glenum.DEPTH_COMPONENT16, glenum.STENCIL_INDEX8:
	default:
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 || width > maxTextureSize || height > maxTextureSize {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	rb.width, rb.height, rb.internalformat = width, height, internalformat
}

func (g *GL) GetRenderbufferParameteriv(target, pname uint32, params []int32) {
	rb := g.boundRenderbuffer(target)
	if rb == nil || len(params) == 0 {
		return
	}
	switch pname {
	case glenum.RENDERBUFFER_WIDTH:
		params[0] = rb.width
	case glenum.RENDERBUFFER_HEIGHT:
		params[0] = rb.height
	case glenum.RENDERBUFFER_INTERNAL_FORMAT:
		params[0] = int32(rb.internalformat)
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

func (g *GL) DeleteRenderbuffers(renderbuffers []uint32) {
	for _, r := range renderbuffers {
		if r == 0 || g.renderbuffers[r] == nil {
			continue
		}
		delete(g.renderbuffers, r)
		if uint32(g.param(glenum.RENDERBUFFER_BINDING)) == r {
			g.setParam(glenum.RENDERBUFFER_BINDING, 0)
		}
		g.detachEverywhere(glenum.RENDERBUFFER, r)
	}
}

////////////////////////////////////////////////////////
//  Framebuffers

func (g *GL) GenFramebuffers(n int) []uint32 {
	names := g.genNames("framebuffer", n)
	for _, f := range names {
		g.framebuffers[f] = &framebuffer{attachments: map[uint32]attachment{}}
	}
	return names
}

func (g *GL) IsFramebuffer(f uint32) bool {
	_, ok := g.framebuffers[f]
	return ok && f != 0
}

func (g *GL) BindFramebuffer(target, f uint32) {
	if target != glenum.FRAMEBUFFER {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if f != 0 && g.framebuffers[f] == nil {
		g.framebuffers[f] = &framebuffer{attachments: map[uint32]attachment{}}
	}
	g.setParam(glenum.FRAMEBUFFER_BINDING, float64(f))
}

// boundFramebuffer returns the bound framebuffer object, or nil for the
// default framebuffer.
func (g *GL) boundFramebuffer() *framebuffer {
	return g.framebuffers[uint32(g.param(glenum.FRAMEBUFFER_BINDING))]
}

func isAttachment(a uint32) bool {
	switch a {
	case glenum.COLOR_ATTACHMENT0, glenum.DEPTH_ATTACHMENT, glenum.STENCIL_ATTACHMENT:
		return true
	}
	return false
}

func (g *GL) attach(target, point uint32, a attachment) {
	if target != glenum.FRAMEBUFFER || !isAttachment(point) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	fb := g.boundFramebuffer()
	if fb == nil {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	if a.name == 0 {
		delete(fb.attachments, point)
		return
	}
	fb.attachments[point] = a
}

func (g *GL) FramebufferRenderbuffer(target, point, rbtarget, r uint32) {
	if rbtarget != glenum.RENDERBUFFER {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	if r != 0 && g.renderbuffers[r] == nil {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	g.attach(target, point, attachment{kind: glenum.RENDERBUFFER, name: r})
}

func (g *GL) FramebufferTexture2D(target, point, textarget, t uint32, level int32) {
	if t != 0 && g.textures[t] == nil {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	if level != 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.attach(target, point, attachment{kind: glenum.TEXTURE, name: t, level: level})
}

func (g *GL) CheckFramebufferStatus(target uint32) uint32 {
	if target != glenum.FRAMEBUFFER {
		g.setError(glenum.INVALID_ENUM)
		return 0
	}
	fb := g.boundFramebuffer()
	if fb == nil {
		return glenum.FRAMEBUFFER_COMPLETE
	}
	if len(fb.attachments) == 0 {
		return glenum.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	var size [2]int32
	first := true
	for _, a := range fb.attachments {
		w, h := g.attachmentSize(a)
		if w == 0 || h == 0 {
			return glenum.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if first {
			size, first = [2]int32{w, h}, false
		} else if size != [2]int32{w, h} {
			return glenum.FRAMEBUFFER_INCOMPLETE_DIMENSIONS
		}
	}
	return glenum.FRAMEBUFFER_COMPLETE
}

func (g *GL) attachmentSize(a attachment) (int32, int32) {
	switch a.kind {
	case glenum.TEXTURE:
		if t := g.textures[a.name]; t != nil {
			return t.width, t.height
		}
	case glenum.RENDERBUFFER:
		if r := g.renderbuffers[a.name]; r != nil {
			return r.width, r.height
		}
	}
	return 0, 0
}

func (g *GL) GetFramebufferAttachmentParameteriv(target, point, pname uint32, params []int32) {
	if target != glenum.FRAMEBUFFER || !isAttachment(point) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	fb := g.boundFramebuffer()
	if fb == nil {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	if len(params) == 0 {
		return
	}
	a, ok := fb.attachments[point]
	switch pname {
	case glenum.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE:
		params[0] = glenum.NONE
		if ok {
			params[0] = int32(a.kind)
		}
	case glenum.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME:
		params[0] = int32(a.name)
	case glenum.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL:
		params[0] = a.level
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

// detachEverywhere removes the given object from all framebuffers.
func (g *GL) detachEverywhere(kind, name uint32) {
	for _, fb := range g.framebuffers {
		for p, a := range fb.attachments {
			if a.kind == kind && a.name == name {
				delete(fb.attachments, p)
			}
		}
	}
}

func (g *GL) DeleteFramebuffers(framebuffers []uint32) {
	for _, f := range framebuffers {
		if f == 0 || g.framebuffers[f] == nil {
			continue
		}
		delete(g.framebuffers, f)
		if uint32(g.param(glenum.FRAMEBUFFER_BINDING)) == f {
			g.setParam(glenum.FRAMEBUFFER_BINDING, 0)
		}
	}
}

////////////////////////////////////////////////////////
//  Vertex arrays

func (g *GL) GenVertexArrays(n int) []uint32 {
	names := g.genNames("vertexarray", n)
	for _, v := range names {
		g.vertexArrays[v] = true
	}
	return names
}

func (g *GL) BindVertexArray(v uint32) {
	if v != 0 && !g.vertexArrays[v] {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	g.setParam(vertexArrayBinding, float64(v))
}

func (g *GL) DeleteVertexArrays(arrays []uint32) {
	for _, v := range arrays {
		if v == 0 || !g.vertexArrays[v] {
			continue
		}
		delete(g.vertexArrays, v)
		if uint32(g.param(vertexArrayBinding)) == v {
			g.setParam(vertexArrayBinding, 0)
		}
	}
}

// IsVertexArray reports whether v names a vertex array object.
func (g *GL) IsVertexArray(v uint32) bool {
	return g.vertexArrays[v]
}

func (g *GL) checkAttrib(index uint32) bool {
	if index >= maxVertexAttribs {
		g.setError(glenum.INVALID_VALUE)
		return false
	}
	return true
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	if g.checkAttrib(index) {
		g.attribs[index].enabled = true
	}
}

func (g *GL) DisableVertexAttribArray(index uint32) {
	if g.checkAttrib(index) {
		g.attribs[index].enabled = false
	}
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	if !g.checkAttrib(index) {
		return
	}
	if size < 1 || size > 4 || stride < 0 || offset < 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	switch xtype {
	case glenum.BYTE, glenum.UNSIGNED_BYTE, glenum.SHORT, glenum.UNSIGNED_SHORT, glenum.FIXED, glenum.FLOAT:
	default:
		g.setError(glenum.INVALID_ENUM)
		return
	}
	g.attribs[index] = vertexAttrib{
		enabled:    g.attribs[index].enabled,
		size:       size,
		xtype:      xtype,
		normalized: normalized,
		stride:     stride,
		offset:     offset,
		buffer:     uint32(g.param(glenum.ARRAY_BUFFER_BINDING)),
		current:    g.attribs[index].current,
	}
}

func (g *GL) VertexAttribf(index uint32, v []float32) {
	if !g.checkAttrib(index) {
		return
	}
	cur := [4]float32{0, 0, 0, 1}
	copy(cur[:], v)
	g.attribs[index].current = cur
}

func (g *GL) getVertexAttrib(index, pname uint32) ([]float64, bool) {
	if !g.checkAttrib(index) {
		return nil, false
	}
	a := g.attribs[index]
	switch pname {
	case glenum.VERTEX_ATTRIB_ARRAY_ENABLED:
		return []float64{btof(a.enabled)}, true
	case glenum.VERTEX_ATTRIB_ARRAY_SIZE:
		return []float64{float64(a.size)}, true
	case glenum.VERTEX_ATTRIB_ARRAY_STRIDE:
		return []float64{float64(a.stride)}, true
	case glenum.VERTEX_ATTRIB_ARRAY_TYPE:
		return []float64{float64(a.xtype)}, true
	case glenum.VERTEX_ATTRIB_ARRAY_NORMALIZED:
		return []float64{btof(a.normalized)}, true
	case glenum.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
		return []float64{float64(a.buffer)}, true
	case glenum.CURRENT_VERTEX_ATTRIB:
		c := a.current
		return []float64{float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])}, true
	}
	g.setError(glenum.INVALID_ENUM)
	return nil, false
}

func (g *GL) GetVertexAttribfv(index, pname uint32, params []float32) {
	v, _ := g.getVertexAttrib(index, pname)
	for i := range min(len(v), len(params)) {
		params[i] = float32(v[i])
	}
}

func (g *GL) GetVertexAttribiv(index, pname uint32, params []int32) {
	v, _ := g.getVertexAttrib(index, pname)
	for i := range min(len(v), len(params)) {
		params[i] = int32(v[i])
	}
}
