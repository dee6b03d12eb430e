// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"cogentcore.org/glscript/marshal"
)

func (c *Context) GetError() (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.gl.GetError(), nil
}

func (c *Context) GetString(name uint32) (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}
	return c.gl.GetString(name), nil
}

func (c *Context) GetShaderInfoLog(shader uint32) (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}
	return c.gl.GetShaderInfoLog(shader), nil
}

func (c *Context) GetProgramInfoLog(program uint32) (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}
	return c.gl.GetProgramInfoLog(program), nil
}

// query runs get against a scratch buffer wide enough for any
// parameter and returns its first n values. n must be at least 1.
func query[T int32 | float32](c *Context, n int, get func(params []T)) ([]T, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, &marshal.ShapeError{What: "result", Want: 1, Got: n}
	}
	buf := make([]T, max(n, scratchLen))
	get(buf)
	return buf[:n:n], nil
}

func (c *Context) GetIntegerv(pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetIntegerv(pname, p) })
}

func (c *Context) GetFloatv(pname uint32, n int) ([]float32, error) {
	return query(c, n, func(p []float32) { c.gl.GetFloatv(pname, p) })
}

func (c *Context) GetBufferParameteriv(target, pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetBufferParameteriv(target, pname, p) })
}

func (c *Context) GetFramebufferAttachmentParameteriv(target, attachment, pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetFramebufferAttachmentParameteriv(target, attachment, pname, p) })
}

func (c *Context) GetProgramiv(program, pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetProgramiv(program, pname, p) })
}

func (c *Context) GetRenderbufferParameteriv(target, pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetRenderbufferParameteriv(target, pname, p) })
}

func (c *Context) GetShaderiv(shader, pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetShaderiv(shader, pname, p) })
}

func (c *Context) GetTexParameterfv(target, pname uint32, n int) ([]float32, error) {
	return query(c, n, func(p []float32) { c.gl.GetTexParameterfv(target, pname, p) })
}

func (c *Context) GetTexParameteriv(target, pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetTexParameteriv(target, pname, p) })
}

// GetUniformfv returns the first n components of the uniform at
// location in program.
func (c *Context) GetUniformfv(program uint32, location int32, n int) ([]float32, error) {
	return query(c, n, func(p []float32) { c.gl.GetUniformfv(program, location, p) })
}

func (c *Context) GetUniformiv(program uint32, location int32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetUniformiv(program, location, p) })
}

func (c *Context) GetVertexAttribfv(index, pname uint32, n int) ([]float32, error) {
	return query(c, n, func(p []float32) { c.gl.GetVertexAttribfv(index, pname, p) })
}

func (c *Context) GetVertexAttribiv(index, pname uint32, n int) ([]int32, error) {
	return query(c, n, func(p []int32) { c.gl.GetVertexAttribiv(index, pname, p) })
}
