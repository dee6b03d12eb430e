// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the graphics call surface that glscript drives.
//
// [GL] mirrors the OpenGL ES 2.0 entry points, plus vertex arrays, with
// Go slices and strings in place of pointers. Implementations copy what
// they need before returning, so callers may reuse their slices.
// Query methods fill the given slice; callers must size it for the
// largest result the native call can write.
package gpu

// GL is the graphics call surface of a context. All methods must be
// called from the thread that owns the current context.
type GL interface {
	// Init loads the entry points for the current context.
	Init() error

	ActiveTexture(texture uint32)
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	BindBuffer(target, buffer uint32)
	BindFramebuffer(target, framebuffer uint32)
	BindRenderbuffer(target, renderbuffer uint32)
	BindTexture(target, texture uint32)
	BindVertexArray(array uint32)
	BlendColor(red, green, blue, alpha float32)
	BlendEquation(mode uint32)
	BlendEquationSeparate(modeRGB, modeAlpha uint32)
	BlendFunc(sfactor, dfactor uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	BufferData(target uint32, data []byte, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)
	CheckFramebufferStatus(target uint32) uint32
	Clear(mask uint32)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(depth float32)
	ClearStencil(s int32)
	ColorMask(red, green, blue, alpha bool)
	CompileShader(shader uint32)
	CompressedTexImage2D(target uint32, level int32, internalformat uint32, width, height, border int32, data []byte)
	CompressedTexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format uint32, data []byte)
	CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, width, height, border int32)
	CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32)
	CreateProgram() uint32
	CreateShader(xtype uint32) uint32
	CullFace(mode uint32)
	DeleteBuffers(buffers []uint32)
	DeleteFramebuffers(framebuffers []uint32)
	DeleteProgram(program uint32)
	DeleteRenderbuffers(renderbuffers []uint32)
	DeleteShader(shader uint32)
	DeleteTextures(textures []uint32)
	DeleteVertexArrays(arrays []uint32)
	DepthFunc(fn uint32)
	DepthMask(flag bool)
	DepthRangef(near, far float32)
	DetachShader(program, shader uint32)
	Disable(cap uint32)
	DisableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)

	// DrawElements draws from the bound element array buffer, starting
	// offset bytes into it.
	DrawElements(mode uint32, count int32, xtype uint32, offset int)

	Enable(cap uint32)
	EnableVertexAttribArray(index uint32)
	Finish()
	Flush()
	FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer uint32)
	FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32)
	FrontFace(mode uint32)
	GenBuffers(n int) []uint32
	GenerateMipmap(target uint32)
	GenFramebuffers(n int) []uint32
	GenRenderbuffers(n int) []uint32
	GenTextures(n int) []uint32
	GenVertexArrays(n int) []uint32
	GetAttribLocation(program uint32, name string) int32
	GetBufferParameteriv(target, pname uint32, params []int32)
	GetError() uint32
	GetFloatv(pname uint32, params []float32)
	GetFramebufferAttachmentParameteriv(target, attachment, pname uint32, params []int32)
	GetIntegerv(pname uint32, params []int32)
	GetProgramiv(program, pname uint32, params []int32)
	GetProgramInfoLog(program uint32) string
	GetRenderbufferParameteriv(target, pname uint32, params []int32)
	GetShaderiv(shader, pname uint32, params []int32)
	GetShaderInfoLog(shader uint32) string
	GetString(name uint32) string
	GetTexParameterfv(target, pname uint32, params []float32)
	GetTexParameteriv(target, pname uint32, params []int32)
	GetUniformfv(program uint32, location int32, params []float32)
	GetUniformiv(program uint32, location int32, params []int32)
	GetUniformLocation(program uint32, name string) int32
	GetVertexAttribfv(index, pname uint32, params []float32)
	GetVertexAttribiv(index, pname uint32, params []int32)
	Hint(target, mode uint32)
	IsBuffer(buffer uint32) bool
	IsEnabled(cap uint32) bool
	IsFramebuffer(framebuffer uint32) bool
	IsProgram(program uint32) bool
	IsRenderbuffer(renderbuffer uint32) bool
	IsShader(shader uint32) bool
	IsTexture(texture uint32) bool
	LineWidth(width float32)
	LinkProgram(program uint32)
	PixelStorei(pname uint32, param int32)
	PolygonOffset(factor, units float32)
	ReadPixels(x, y, width, height int32, format, xtype uint32, data []byte)
	ReleaseShaderCompiler()
	RenderbufferStorage(target, internalformat uint32, width, height int32)
	SampleCoverage(value float32, invert bool)
	Scissor(x, y, width, height int32)
	ShaderSource(shader uint32, source string)
	StencilFunc(fn uint32, ref int32, mask uint32)
	StencilFuncSeparate(face, fn uint32, ref int32, mask uint32)
	StencilMask(mask uint32)
	StencilMaskSeparate(face, mask uint32)
	StencilOp(fail, zfail, zpass uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass uint32)
	TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels []byte)
	TexParameterf(target, pname uint32, param float32)
	TexParameterfv(target, pname uint32, params []float32)
	TexParameteri(target, pname uint32, param int32)
	TexParameteriv(target, pname uint32, params []int32)
	TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels []byte)

	// Uniformf sets a float, vec2, vec3 or vec4 uniform from the 1 to 4
	// values of v, as glUniform1f through glUniform4f.
	Uniformf(location int32, v []float32)

	// Uniformi is [GL.Uniformf] for int uniforms.
	Uniformi(location int32, v []int32)

	// Uniformfv sets count uniforms of size float components each, as
	// glUniform1fv through glUniform4fv.
	Uniformfv(location int32, size int, count int32, v []float32)

	// Uniformiv is [GL.Uniformfv] for int uniforms.
	Uniformiv(location int32, size int, count int32, v []int32)

	// UniformMatrixfv sets count dim x dim matrices, as
	// glUniformMatrix2fv through glUniformMatrix4fv.
	UniformMatrixfv(location int32, dim int, count int32, transpose bool, v []float32)

	UseProgram(program uint32)
	ValidateProgram(program uint32)

	// VertexAttribf sets a generic vertex attribute from the 1 to 4
	// values of v, as glVertexAttrib1f through glVertexAttrib4f.
	VertexAttribf(index uint32, v []float32)

	// VertexAttribPointer configures an attribute array sourced from
	// the bound array buffer; stride and offset are in bytes.
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	Viewport(x, y, width, height int32)
}
