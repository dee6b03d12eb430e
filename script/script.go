// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script defines the functions that the script hosts expose,
// under the names scripts call them by.
package script

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/transform"
)

// Funcs returns the script functions bound to c, keyed by script name.
// Functions that can fail return an error as their last result, which
// the hosts turn into an exception or an error value.
func Funcs(c *binding.Context) map[string]any {
	fns := map[string]any{
		"createWindow":      c.CreateWindow,
		"closeWindow":       c.CloseWindow,
		"focusWindow":       c.FocusWindow,
		"shouldClose":       c.ShouldClose,
		"shouldWindowClose": c.ShouldClose,
		"flip":              c.Flip,
		"getTime":           c.Time,
		"getFramebufferSize": func() ([]int, error) {
			w, h, err := c.FramebufferSize()
			return []int{w, h}, err
		},
		"saveFramebuffer": c.SaveFramebuffer,

		"getFlag":    c.Flag,
		"getFlagsOR": c.FlagsOR,
		"getKeyId":   c.KeyID,
		"getKeyByName": func(name string) (int, error) {
			a, err := c.KeyByName(name)
			return int(a), err
		},
		"getKeyById": func(code int) (int, error) {
			a, err := c.KeyByCode(code)
			return int(a), err
		},
		"getKeyName": c.KeyName,

		"getCursorPos": func() ([]float64, error) {
			p, err := c.CursorPos()
			return p[:], err
		},
		"getMouseButtons": func() ([]int, error) {
			b, err := c.MouseButtons()
			return []int{int(b[0]), int(b[1]), int(b[2])}, err
		},
		"getScrollWheel": func() ([]float64, error) {
			s, err := c.ScrollWheel()
			return s[:], err
		},
		"setCursorPos": c.SetCursorPos,
		"hideCursor":   c.HideCursor,
		"showCursor":   c.ShowCursor,

		"identity":    transform.Identity,
		"ortho":       transform.Ortho,
		"perspective": transform.Perspective,
		"frustum":     transform.Frustum,
		"lookAt":      transform.LookAt,
		"scale":       transform.Scale,
		"translate":   transform.Translate,
		"rotate":      transform.Rotate,
		"normalize":   transform.Normalize,
		"cross":       transform.Cross,
	}
	for name, fn := range glFuncs(c) {
		fns[name] = fn
	}
	return fns
}

// glFuncs returns the graphics calls, named as in the C API.
func glFuncs(c *binding.Context) map[string]any {
	return map[string]any{
		"glActiveTexture":                       c.ActiveTexture,
		"glAttachShader":                        c.AttachShader,
		"glBindAttribLocation":                  c.BindAttribLocation,
		"glBindBuffer":                          c.BindBuffer,
		"glBindFramebuffer":                     c.BindFramebuffer,
		"glBindRenderbuffer":                    c.BindRenderbuffer,
		"glBindTexture":                         c.BindTexture,
		"glBindVertexArray":                     c.BindVertexArray,
		"glBlendColor":                          c.BlendColor,
		"glBlendEquation":                       c.BlendEquation,
		"glBlendEquationSeparate":               c.BlendEquationSeparate,
		"glBlendFunc":                           c.BlendFunc,
		"glBlendFuncSeparate":                   c.BlendFuncSeparate,
		"glBufferData":                          c.BufferData,
		"glBufferSubData":                       c.BufferSubData,
		"glCheckFramebufferStatus":              c.CheckFramebufferStatus,
		"glClear":                               c.Clear,
		"glClearColor":                          c.ClearColor,
		"glClearDepthf":                         c.ClearDepthf,
		"glClearStencil":                        c.ClearStencil,
		"glColorMask":                           c.ColorMask,
		"glCompileShader":                       c.CompileShader,
		"glCompressedTexImage2D":                c.CompressedTexImage2D,
		"glCompressedTexSubImage2D":             c.CompressedTexSubImage2D,
		"glCopyTexImage2D":                      c.CopyTexImage2D,
		"glCopyTexSubImage2D":                   c.CopyTexSubImage2D,
		"glCreateProgram":                       c.CreateProgram,
		"glCreateShader":                        c.CreateShader,
		"glCullFace":                            c.CullFace,
		"glDeleteBuffers":                       c.DeleteBuffers,
		"glDeleteFramebuffers":                  c.DeleteFramebuffers,
		"glDeleteProgram":                       c.DeleteProgram,
		"glDeleteRenderbuffers":                 c.DeleteRenderbuffers,
		"glDeleteShader":                        c.DeleteShader,
		"glDeleteTextures":                      c.DeleteTextures,
		"glDeleteVertexArrays":                  c.DeleteVertexArrays,
		"glDepthFunc":                           c.DepthFunc,
		"glDepthMask":                           c.DepthMask,
		"glDepthRangef":                         c.DepthRangef,
		"glDetachShader":                        c.DetachShader,
		"glDisable":                             c.Disable,
		"glDisableVertexAttribArray":            c.DisableVertexAttribArray,
		"glDrawArrays":                          c.DrawArrays,
		"glDrawElements":                        c.DrawElements,
		"glEnable":                              c.Enable,
		"glEnableVertexAttribArray":             c.EnableVertexAttribArray,
		"glFinish":                              c.Finish,
		"glFlush":                               c.Flush,
		"glFramebufferRenderbuffer":             c.FramebufferRenderbuffer,
		"glFramebufferTexture2D":                c.FramebufferTexture2D,
		"glFrontFace":                           c.FrontFace,
		"glGenBuffers":                          c.GenBuffers,
		"glGenFramebuffers":                     c.GenFramebuffers,
		"glGenRenderbuffers":                    c.GenRenderbuffers,
		"glGenTextures":                         c.GenTextures,
		"glGenVertexArrays":                     c.GenVertexArrays,
		"glGenerateMipmap":                      c.GenerateMipmap,
		"glGetAttribLocation":                   c.GetAttribLocation,
		"glGetBufferParameteriv":                c.GetBufferParameteriv,
		"glGetError":                            c.GetError,
		"glGetFloatv":                           c.GetFloatv,
		"glGetFramebufferAttachmentParameteriv": c.GetFramebufferAttachmentParameteriv,
		"glGetIntegerv":                         c.GetIntegerv,
		"glGetProgramInfoLog":                   c.GetProgramInfoLog,
		"glGetProgramiv":                        c.GetProgramiv,
		"glGetRenderbufferParameteriv":          c.GetRenderbufferParameteriv,
		"glGetShaderInfoLog":                    c.GetShaderInfoLog,
		"glGetShaderiv":                         c.GetShaderiv,
		"glGetString":                           c.GetString,
		"glGetTexParameterfv":                   c.GetTexParameterfv,
		"glGetTexParameteriv":                   c.GetTexParameteriv,
		"glGetUniformLocation":                  c.GetUniformLocation,
		"glGetUniformfv":                        c.GetUniformfv,
		"glGetUniformiv":                        c.GetUniformiv,
		"glGetVertexAttribfv":                   c.GetVertexAttribfv,
		"glGetVertexAttribiv":                   c.GetVertexAttribiv,
		"glHint":                                c.Hint,
		"glIsBuffer":                            c.IsBuffer,
		"glIsEnabled":                           c.IsEnabled,
		"glIsFramebuffer":                       c.IsFramebuffer,
		"glIsProgram":                           c.IsProgram,
		"glIsRenderbuffer":                      c.IsRenderbuffer,
		"glIsShader":                            c.IsShader,
		"glIsTexture":                           c.IsTexture,
		"glLineWidth":                           c.LineWidth,
		"glLinkProgram":                         c.LinkProgram,
		"glPixelStorei":                         c.PixelStorei,
		"glPolygonOffset":                       c.PolygonOffset,
		"glReadPixels":                          c.ReadPixels,
		"glReleaseShaderCompiler":               c.ReleaseShaderCompiler,
		"glRenderbufferStorage":                 c.RenderbufferStorage,
		"glSampleCoverage":                      c.SampleCoverage,
		"glScissor":                             c.Scissor,
		"glShaderSource":                        c.ShaderSource,
		"glStencilFunc":                         c.StencilFunc,
		"glStencilFuncSeparate":                 c.StencilFuncSeparate,
		"glStencilMask":                         c.StencilMask,
		"glStencilMaskSeparate":                 c.StencilMaskSeparate,
		"glStencilOp":                           c.StencilOp,
		"glStencilOpSeparate":                   c.StencilOpSeparate,
		"glTexImage2D":                          c.TexImage2D,
		"glTexParameterf":                       c.TexParameterf,
		"glTexParameterfv":                      c.TexParameterfv,
		"glTexParameteri":                       c.TexParameteri,
		"glTexParameteriv":                      c.TexParameteriv,
		"glTexSubImage2D":                       c.TexSubImage2D,
		"glUniform1f":                           c.Uniform1f,
		"glUniform1fv":                          c.Uniform1fv,
		"glUniform1i":                           c.Uniform1i,
		"glUniform1iv":                          c.Uniform1iv,
		"glUniform2f":                           c.Uniform2f,
		"glUniform2fv":                          c.Uniform2fv,
		"glUniform2i":                           c.Uniform2i,
		"glUniform2iv":                          c.Uniform2iv,
		"glUniform3f":                           c.Uniform3f,
		"glUniform3fv":                          c.Uniform3fv,
		"glUniform3i":                           c.Uniform3i,
		"glUniform3iv":                          c.Uniform3iv,
		"glUniform4f":                           c.Uniform4f,
		"glUniform4fv":                          c.Uniform4fv,
		"glUniform4i":                           c.Uniform4i,
		"glUniform4iv":                          c.Uniform4iv,
		"glUniformMatrix2fv":                    c.UniformMatrix2fv,
		"glUniformMatrix3fv":                    c.UniformMatrix3fv,
		"glUniformMatrix4fv":                    c.UniformMatrix4fv,
		"glUseProgram":                          c.UseProgram,
		"glValidateProgram":                     c.ValidateProgram,
		"glVertexAttrib1f":                      c.VertexAttrib1f,
		"glVertexAttrib1fv":                     c.VertexAttrib1fv,
		"glVertexAttrib2f":                      c.VertexAttrib2f,
		"glVertexAttrib2fv":                     c.VertexAttrib2fv,
		"glVertexAttrib3f":                      c.VertexAttrib3f,
		"glVertexAttrib3fv":                     c.VertexAttrib3fv,
		"glVertexAttrib4f":                      c.VertexAttrib4f,
		"glVertexAttrib4fv":                     c.VertexAttrib4fv,
		"glVertexAttribPointer":                 c.VertexAttribPointer,
		"glViewport":                            c.Viewport,
	}
}

// GoName returns the exported Go name for a script name, with any
// "gl" prefix removed: "glClear" is "Clear" and "createWindow" is
// "CreateWindow".
func GoName(name string) string {
	if rest, ok := strings.CutPrefix(name, "gl"); ok && rest != "" {
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			return rest
		}
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
