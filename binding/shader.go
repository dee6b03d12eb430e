// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"cogentcore.org/glscript/marshal"
)

func (c *Context) CreateShader(xtype uint32) (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.gl.CreateShader(xtype), nil
}

func (c *Context) ShaderSource(shader uint32, source string) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ShaderSource(shader, source)
	return nil
}

func (c *Context) CompileShader(shader uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.CompileShader(shader)
	return nil
}

func (c *Context) DeleteShader(shader uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DeleteShader(shader)
	return nil
}

func (c *Context) ReleaseShaderCompiler() error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ReleaseShaderCompiler()
	return nil
}

func (c *Context) CreateProgram() (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.gl.CreateProgram(), nil
}

func (c *Context) AttachShader(program, shader uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.AttachShader(program, shader)
	return nil
}

func (c *Context) DetachShader(program, shader uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DetachShader(program, shader)
	return nil
}

func (c *Context) BindAttribLocation(program, index uint32, name string) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BindAttribLocation(program, index, name)
	return nil
}

func (c *Context) LinkProgram(program uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.LinkProgram(program)
	return nil
}

func (c *Context) ValidateProgram(program uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ValidateProgram(program)
	return nil
}

func (c *Context) UseProgram(program uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.UseProgram(program)
	return nil
}

func (c *Context) DeleteProgram(program uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DeleteProgram(program)
	return nil
}

func (c *Context) GetAttribLocation(program uint32, name string) (int32, error) {
	if err := c.check(); err != nil {
		return -1, err
	}
	return c.gl.GetAttribLocation(program, name), nil
}

func (c *Context) GetUniformLocation(program uint32, name string) (int32, error) {
	if err := c.check(); err != nil {
		return -1, err
	}
	return c.gl.GetUniformLocation(program, name), nil
}

////////////////////////////////////////////////////////
//  Uniforms

func (c *Context) Uniform1f(location int32, v0 float32) error {
	return c.uniformf(location, v0)
}

func (c *Context) Uniform2f(location int32, v0, v1 float32) error {
	return c.uniformf(location, v0, v1)
}

func (c *Context) Uniform3f(location int32, v0, v1, v2 float32) error {
	return c.uniformf(location, v0, v1, v2)
}

func (c *Context) Uniform4f(location int32, v0, v1, v2, v3 float32) error {
	return c.uniformf(location, v0, v1, v2, v3)
}

func (c *Context) uniformf(location int32, v ...float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Uniformf(location, v)
	return nil
}

func (c *Context) Uniform1i(location int32, v0 int32) error {
	return c.uniformi(location, v0)
}

func (c *Context) Uniform2i(location int32, v0, v1 int32) error {
	return c.uniformi(location, v0, v1)
}

func (c *Context) Uniform3i(location int32, v0, v1, v2 int32) error {
	return c.uniformi(location, v0, v1, v2)
}

func (c *Context) Uniform4i(location int32, v0, v1, v2, v3 int32) error {
	return c.uniformi(location, v0, v1, v2, v3)
}

func (c *Context) uniformi(location int32, v ...int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Uniformi(location, v)
	return nil
}

// Uniform1fv sets count uniforms from count*1 values of v.
func (c *Context) Uniform1fv(location int32, count int32, v []float64) error {
	return c.uniformfv(location, 1, count, v)
}

// Uniform2fv sets count uniforms from count*2 values of v.
func (c *Context) Uniform2fv(location int32, count int32, v []float64) error {
	return c.uniformfv(location, 2, count, v)
}

// Uniform3fv sets count uniforms from count*3 values of v.
func (c *Context) Uniform3fv(location int32, count int32, v []float64) error {
	return c.uniformfv(location, 3, count, v)
}

// Uniform4fv sets count uniforms from count*4 values of v.
func (c *Context) Uniform4fv(location int32, count int32, v []float64) error {
	return c.uniformfv(location, 4, count, v)
}

func (c *Context) uniformfv(location int32, size int, count int32, v []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	vals, err := marshal.Floats("uniform values", v, size*max(int(count), 0))
	if err != nil {
		return err
	}
	c.gl.Uniformfv(location, size, count, vals)
	return nil
}

// Uniform1iv sets count uniforms from count*1 values of v.
func (c *Context) Uniform1iv(location int32, count int32, v []float64) error {
	return c.uniformiv(location, 1, count, v)
}

// Uniform2iv sets count uniforms from count*2 values of v.
func (c *Context) Uniform2iv(location int32, count int32, v []float64) error {
	return c.uniformiv(location, 2, count, v)
}

// Uniform3iv sets count uniforms from count*3 values of v.
func (c *Context) Uniform3iv(location int32, count int32, v []float64) error {
	return c.uniformiv(location, 3, count, v)
}

// Uniform4iv sets count uniforms from count*4 values of v.
func (c *Context) Uniform4iv(location int32, count int32, v []float64) error {
	return c.uniformiv(location, 4, count, v)
}

func (c *Context) uniformiv(location int32, size int, count int32, v []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	vals, err := marshal.Ints("uniform values", v, size*max(int(count), 0))
	if err != nil {
		return err
	}
	c.gl.Uniformiv(location, size, count, vals)
	return nil
}

// UniformMatrix2fv sets count 2x2 matrices from count*4 column-major
// values of v.
func (c *Context) UniformMatrix2fv(location int32, count int32, transpose bool, v []float64) error {
	return c.uniformMatrixfv(location, 2, count, transpose, v)
}

// UniformMatrix3fv sets count 3x3 matrices from count*9 column-major
// values of v.
func (c *Context) UniformMatrix3fv(location int32, count int32, transpose bool, v []float64) error {
	return c.uniformMatrixfv(location, 3, count, transpose, v)
}

// UniformMatrix4fv sets count 4x4 matrices from count*16 column-major
// values of v, as returned by the transform functions.
func (c *Context) UniformMatrix4fv(location int32, count int32, transpose bool, v []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	n := max(int(count), 0)
	if err := marshal.Check("mat4 values", v, 16*n); err != nil {
		return err
	}
	vals := make([]float32, 0, 16*n)
	for i := range n {
		m, err := marshal.Mat4(v[16*i:])
		if err != nil {
			return err
		}
		vals = append(vals, m[:]...)
	}
	c.gl.UniformMatrixfv(location, 4, count, transpose, vals)
	return nil
}

func (c *Context) uniformMatrixfv(location int32, dim int, count int32, transpose bool, v []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	vals, err := marshal.Floats("matrix values", v, dim*dim*max(int(count), 0))
	if err != nil {
		return err
	}
	c.gl.UniformMatrixfv(location, dim, count, transpose, vals)
	return nil
}

////////////////////////////////////////////////////////
//  Vertex attributes

func (c *Context) EnableVertexAttribArray(index uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.EnableVertexAttribArray(index)
	return nil
}

func (c *Context) DisableVertexAttribArray(index uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DisableVertexAttribArray(index)
	return nil
}

// VertexAttribPointer sources an attribute from the bound array buffer.
// The stride and offset are counted in float32 values, not bytes.
func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride, offset int) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.VertexAttribPointer(index, size, xtype, normalized, int32(stride*4), offset*4)
	return nil
}

func (c *Context) VertexAttrib1f(index uint32, x float32) error {
	return c.vertexAttrib(index, x)
}

func (c *Context) VertexAttrib2f(index uint32, x, y float32) error {
	return c.vertexAttrib(index, x, y)
}

func (c *Context) VertexAttrib3f(index uint32, x, y, z float32) error {
	return c.vertexAttrib(index, x, y, z)
}

func (c *Context) VertexAttrib4f(index uint32, x, y, z, w float32) error {
	return c.vertexAttrib(index, x, y, z, w)
}

func (c *Context) vertexAttrib(index uint32, v ...float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.VertexAttribf(index, v)
	return nil
}

func (c *Context) VertexAttrib1fv(index uint32, v []float64) error {
	return c.vertexAttribfv(index, 1, v)
}

func (c *Context) VertexAttrib2fv(index uint32, v []float64) error {
	return c.vertexAttribfv(index, 2, v)
}

func (c *Context) VertexAttrib3fv(index uint32, v []float64) error {
	return c.vertexAttribfv(index, 3, v)
}

func (c *Context) VertexAttrib4fv(index uint32, v []float64) error {
	return c.vertexAttribfv(index, 4, v)
}

func (c *Context) vertexAttribfv(index uint32, size int, v []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	vals, err := marshal.Floats("vertex attribute", v, size)
	if err != nil {
		return err
	}
	c.gl.VertexAttribf(index, vals)
	return nil
}
