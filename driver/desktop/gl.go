// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

package desktop

import (
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/glscript/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GL is the [gpu.GL] implementation over the OpenGL 4.1 core profile,
// which includes the ES 2.0 entry points.
type GL struct{}

var _ gpu.GL = (*GL)(nil)

// Init loads the entry points; a context must be current.
func (g *GL) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("loading OpenGL: %w", err)
	}
	return nil
}

// ptr returns a pointer to the first element of s, or nil if s is empty.
func ptr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(s)
}

// first returns a pointer to the first element of s, or nil if s is
// empty.
func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// cstr returns a null-terminated copy of s for the duration of a call.
func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return gl.Str(s)
}

func (g *GL) ActiveTexture(texture uint32) { gl.ActiveTexture(texture) }
func (g *GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (g *GL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }
func (g *GL) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }
func (g *GL) BindVertexArray(array uint32) { gl.BindVertexArray(array) }
func (g *GL) BlendEquation(mode uint32) { gl.BlendEquation(mode) }
func (g *GL) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }
func (g *GL) Clear(mask uint32) { gl.Clear(mask) }
func (g *GL) ClearDepthf(depth float32) { gl.ClearDepthf(depth) }
func (g *GL) ClearStencil(s int32) { gl.ClearStencil(s) }
func (g *GL) CompileShader(shader uint32) { gl.CompileShader(shader) }
func (g *GL) CreateProgram() uint32 { return gl.CreateProgram() }
func (g *GL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }
func (g *GL) CullFace(mode uint32) { gl.CullFace(mode) }
func (g *GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (g *GL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }
func (g *GL) DepthFunc(fn uint32) { gl.DepthFunc(fn) }
func (g *GL) DepthMask(flag bool) { gl.DepthMask(flag) }
func (g *GL) DepthRangef(near, far float32) { gl.DepthRangef(near, far) }
func (g *GL) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (g *GL) Disable(cap uint32) { gl.Disable(cap) }
func (g *GL) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }
func (g *GL) Enable(cap uint32) { gl.Enable(cap) }
func (g *GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }
func (g *GL) Finish() { gl.Finish() }
func (g *GL) Flush() { gl.Flush() }
func (g *GL) FrontFace(mode uint32) { gl.FrontFace(mode) }
func (g *GL) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }
func (g *GL) GetError() uint32 { return gl.GetError() }
func (g *GL) Hint(target, mode uint32) { gl.Hint(target, mode) }
func (g *GL) IsBuffer(buffer uint32) bool { return gl.IsBuffer(buffer) }
func (g *GL) IsEnabled(cap uint32) bool { return gl.IsEnabled(cap) }
func (g *GL) IsFramebuffer(framebuffer uint32) bool { return gl.IsFramebuffer(framebuffer) }
func (g *GL) IsProgram(program uint32) bool { return gl.IsProgram(program) }
func (g *GL) IsRenderbuffer(renderbuffer uint32) bool {
	return gl.IsRenderbuffer(renderbuffer)
}
func (g *GL) IsShader(shader uint32) bool { return gl.IsShader(shader) }
func (g *GL) IsTexture(texture uint32) bool { return gl.IsTexture(texture) }
func (g *GL) LineWidth(width float32) { gl.LineWidth(width) }
func (g *GL) LinkProgram(program uint32) { gl.LinkProgram(program) }
func (g *GL) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }
func (g *GL) PolygonOffset(factor, units float32) { gl.PolygonOffset(factor, units) }
func (g *GL) ReleaseShaderCompiler() { gl.ReleaseShaderCompiler() }
func (g *GL) SampleCoverage(value float32, invert bool) { gl.SampleCoverage(value, invert) }
func (g *GL) StencilMask(mask uint32) { gl.StencilMask(mask) }
func (g *GL) StencilMaskSeparate(face, mask uint32) { gl.StencilMaskSeparate(face, mask) }
func (g *GL) StencilOp(fail, zfail, zpass uint32) { gl.StencilOp(fail, zfail, zpass) }
func (g *GL) UseProgram(program uint32) { gl.UseProgram(program) }
func (g *GL) ValidateProgram(program uint32) { gl.ValidateProgram(program) }

func (g *GL) BindFramebuffer(target, framebuffer uint32) {
	gl.BindFramebuffer(target, framebuffer)
}

func (g *GL) BindRenderbuffer(target, renderbuffer uint32) {
	gl.BindRenderbuffer(target, renderbuffer)
}

func (g *GL) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, cstr(name))
}

func (g *GL) BlendColor(red, green, blue, alpha float32) {
	gl.BlendColor(red, green, blue, alpha)
}

func (g *GL) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	gl.BlendEquationSeparate(modeRGB, modeAlpha)
}

func (g *GL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (g *GL) BufferData(target uint32, data []byte, usage uint32) {
	gl.BufferData(target, len(data), ptr(data), usage)
}

func (g *GL) BufferSubData(target uint32, offset int, data []byte) {
	gl.BufferSubData(target, offset, len(data), ptr(data))
}

func (g *GL) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (g *GL) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (g *GL) ColorMask(red, green, blue, alpha bool) {
	gl.ColorMask(red, green, blue, alpha)
}

func (g *GL) CompressedTexImage2D(target uint32, level int32, internalformat uint32, width, height, border int32, data []byte) {
	gl.CompressedTexImage2D(target, level, internalformat, width, height, border, int32(len(data)), ptr(data))
}

func (g *GL) CompressedTexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format uint32, data []byte) {
	gl.CompressedTexSubImage2D(target, level, xoffset, yoffset, width, height, format, int32(len(data)), ptr(data))
}

func (g *GL) CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, width, height, border int32) {
	gl.CopyTexImage2D(target, level, internalformat, x, y, width, height, border)
}

func (g *GL) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32) {
	gl.CopyTexSubImage2D(target, level, xoffset, yoffset, x, y, width, height)
}

////////////////////////////////////////////////////////
//  Object names

// gen calls a glGen function for n names.
func gen(n int, fn func(int32, *uint32)) []uint32 {
	names := make([]uint32, max(n, 0))
	fn(int32(n), first(names))
	return names
}

// del calls a glDelete function for the given names.
func del(names []uint32, fn func(int32, *uint32)) {
	if len(names) > 0 {
		fn(int32(len(names)), &names[0])
	}
}

func (g *GL) GenBuffers(n int) []uint32 { return gen(n, gl.GenBuffers) }
func (g *GL) GenFramebuffers(n int) []uint32 { return gen(n, gl.GenFramebuffers) }
func (g *GL) GenRenderbuffers(n int) []uint32 { return gen(n, gl.GenRenderbuffers) }
func (g *GL) GenTextures(n int) []uint32 { return gen(n, gl.GenTextures) }
func (g *GL) GenVertexArrays(n int) []uint32 { return gen(n, gl.GenVertexArrays) }

func (g *GL) DeleteBuffers(buffers []uint32) { del(buffers, gl.DeleteBuffers) }
func (g *GL) DeleteFramebuffers(framebuffers []uint32) { del(framebuffers, gl.DeleteFramebuffers) }
func (g *GL) DeleteRenderbuffers(renderbuffers []uint32) {
	del(renderbuffers, gl.DeleteRenderbuffers)
}
func (g *GL) DeleteTextures(textures []uint32) { del(textures, gl.DeleteTextures) }
func (g *GL) DeleteVertexArrays(arrays []uint32) { del(arrays, gl.DeleteVertexArrays) }

////////////////////////////////////////////////////////
//  Drawing

func (g *GL) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (g *GL) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(offset))
}

func (g *GL) FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer)
}

func (g *GL) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (g *GL) ReadPixels(x, y, width, height int32, format, xtype uint32, data []byte) {
	gl.ReadPixels(x, y, width, height, format, xtype, ptr(data))
}

func (g *GL) RenderbufferStorage(target, internalformat uint32, width, height int32) {
	gl.RenderbufferStorage(target, internalformat, width, height)
}

func (g *GL) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (g *GL) StencilFunc(fn uint32, ref int32, mask uint32) {
	gl.StencilFunc(fn, ref, mask)
}

func (g *GL) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	gl.StencilFuncSeparate(face, fn, ref, mask)
}

func (g *GL) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	gl.StencilOpSeparate(face, sfail, dpfail, dppass)
}

func (g *GL) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels []byte) {
	gl.TexImage2D(target, level, internalformat, width, height, border, format, xtype, ptr(pixels))
}

func (g *GL) TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte) {
	gl.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, xtype, ptr(pixels))
}

func (g *GL) TexParameterf(target, pname uint32, param float32) {
	gl.TexParameterf(target, pname, param)
}

func (g *GL) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (g *GL) TexParameterfv(target, pname uint32, params []float32) {
	if len(params) > 0 {
		gl.TexParameterfv(target, pname, &params[0])
	}
}

func (g *GL) TexParameteriv(target, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.TexParameteriv(target, pname, &params[0])
	}
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (g *GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

////////////////////////////////////////////////////////
//  Shaders and uniforms

func (g *GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (g *GL) GetShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (g *GL) GetProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (g *GL) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (g *GL) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, cstr(name))
}

func (g *GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, cstr(name))
}

func (g *GL) Uniformf(location int32, v []float32) {
	switch len(v) {
	case 1:
		gl.Uniform1f(location, v[0])
	case 2:
		gl.Uniform2f(location, v[0], v[1])
	case 3:
		gl.Uniform3f(location, v[0], v[1], v[2])
	case 4:
		gl.Uniform4f(location, v[0], v[1], v[2], v[3])
	}
}

func (g *GL) Uniformi(location int32, v []int32) {
	switch len(v) {
	case 1:
		gl.Uniform1i(location, v[0])
	case 2:
		gl.Uniform2i(location, v[0], v[1])
	case 3:
		gl.Uniform3i(location, v[0], v[1], v[2])
	case 4:
		gl.Uniform4i(location, v[0], v[1], v[2], v[3])
	}
}

func (g *GL) Uniformfv(location int32, size int, count int32, v []float32) {
	switch size {
	case 1:
		gl.Uniform1fv(location, count, first(v))
	case 2:
		gl.Uniform2fv(location, count, first(v))
	case 3:
		gl.Uniform3fv(location, count, first(v))
	case 4:
		gl.Uniform4fv(location, count, first(v))
	}
}

func (g *GL) Uniformiv(location int32, size int, count int32, v []int32) {
	switch size {
	case 1:
		gl.Uniform1iv(location, count, first(v))
	case 2:
		gl.Uniform2iv(location, count, first(v))
	case 3:
		gl.Uniform3iv(location, count, first(v))
	case 4:
		gl.Uniform4iv(location, count, first(v))
	}
}

func (g *GL) UniformMatrixfv(location int32, dim int, count int32, transpose bool, v []float32) {
	switch dim {
	case 2:
		gl.UniformMatrix2fv(location, count, transpose, first(v))
	case 3:
		gl.UniformMatrix3fv(location, count, transpose, first(v))
	case 4:
		gl.UniformMatrix4fv(location, count, transpose, first(v))
	}
}

func (g *GL) VertexAttribf(index uint32, v []float32) {
	switch len(v) {
	case 1:
		gl.VertexAttrib1f(index, v[0])
	case 2:
		gl.VertexAttrib2f(index, v[0], v[1])
	case 3:
		gl.VertexAttrib3f(index, v[0], v[1], v[2])
	case 4:
		gl.VertexAttrib4f(index, v[0], v[1], v[2], v[3])
	}
}

////////////////////////////////////////////////////////
//  Queries

func (g *GL) GetBufferParameteriv(target, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetBufferParameteriv(target, pname, &params[0])
	}
}

func (g *GL) GetFloatv(pname uint32, params []float32) {
	if len(params) > 0 {
		gl.GetFloatv(pname, &params[0])
	}
}

func (g *GL) GetIntegerv(pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetIntegerv(pname, &params[0])
	}
}

func (g *GL) GetFramebufferAttachmentParameteriv(target, attachment, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetFramebufferAttachmentParameteriv(target, attachment, pname, &params[0])
	}
}

func (g *GL) GetProgramiv(program, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetProgramiv(program, pname, &params[0])
	}
}

func (g *GL) GetRenderbufferParameteriv(target, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetRenderbufferParameteriv(target, pname, &params[0])
	}
}

func (g *GL) GetShaderiv(shader, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetShaderiv(shader, pname, &params[0])
	}
}

func (g *GL) GetTexParameterfv(target, pname uint32, params []float32) {
	if len(params) > 0 {
		gl.GetTexParameterfv(target, pname, &params[0])
	}
}

func (g *GL) GetTexParameteriv(target, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetTexParameteriv(target, pname, &params[0])
	}
}

func (g *GL) GetUniformfv(program uint32, location int32, params []float32) {
	if len(params) > 0 {
		gl.GetUniformfv(program, location, &params[0])
	}
}

func (g *GL) GetUniformiv(program uint32, location int32, params []int32) {
	if len(params) > 0 {
		gl.GetUniformiv(program, location, &params[0])
	}
}

func (g *GL) GetVertexAttribfv(index, pname uint32, params []float32) {
	if len(params) > 0 {
		gl.GetVertexAttribfv(index, pname, &params[0])
	}
}

func (g *GL) GetVertexAttribiv(index, pname uint32, params []int32) {
	if len(params) > 0 {
		gl.GetVertexAttribiv(index, pname, &params[0])
	}
}
