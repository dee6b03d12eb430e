// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"testing"

	"cogentcore.org/glscript/glenum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSource = `#version 410
uniform mat4 MVP;
in vec3 vCol;
in vec2 vPos;
out vec3 color;
void main() {
	gl_Position = MVP * vec4(vPos, 0.0, 1.0);
	color = vCol;
}
`

const fragmentSource = `#version 410
uniform vec4 tint;
uniform float weights[3];
in vec3 color;
out vec4 fragment;
void main() {
	fragment = vec4(color, 1.0) * tint;
}
`

func linkedProgram(t *testing.T, g *GL) uint32 {
	vs := g.CreateShader(glenum.VERTEX_SHADER)
	g.ShaderSource(vs, vertexSource)
	g.CompileShader(vs)
	fs := g.CreateShader(glenum.FRAGMENT_SHADER)
	g.ShaderSource(fs, fragmentSource)
	g.CompileShader(fs)
	p := g.CreateProgram()
	g.AttachShader(p, vs)
	g.AttachShader(p, fs)
	g.BindAttribLocation(p, 3, "vCol")
	g.LinkProgram(p)
	status := make([]int32, 1)
	g.GetProgramiv(p, glenum.LINK_STATUS, status)
	require.Equal(t, int32(1), status[0], g.GetProgramInfoLog(p))
	return p
}

func TestCompile(t *testing.T) {
	g := newTestGL(t, 4, 4)
	s := g.CreateShader(glenum.VERTEX_SHADER)
	assert.True(t, g.IsShader(s))
	g.ShaderSource(s, "not a shader")
	g.CompileShader(s)
	p := make([]int32, 1)
	g.GetShaderiv(s, glenum.COMPILE_STATUS, p)
	assert.Equal(t, int32(0), p[0])
	assert.NotEmpty(t, g.GetShaderInfoLog(s))
	g.GetShaderiv(s, glenum.INFO_LOG_LENGTH, p)
	assert.Equal(t, int32(len(g.GetShaderInfoLog(s))+1), p[0])

	g.ShaderSource(s, vertexSource)
	g.CompileShader(s)
	g.GetShaderiv(s, glenum.COMPILE_STATUS, p)
	assert.Equal(t, int32(1), p[0])
	assert.Empty(t, g.GetShaderInfoLog(s))

	assert.Equal(t, uint32(0), g.CreateShader(glenum.TEXTURE_2D))
	assert.Equal(t, uint32(glenum.INVALID_ENUM), g.GetError())
}

func TestLink(t *testing.T) {
	g := newTestGL(t, 4, 4)
	p := linkedProgram(t, g)
	assert.True(t, g.IsProgram(p))
	assert.Equal(t, int32(3), g.GetAttribLocation(p, "vCol"))
	assert.Equal(t, int32(0), g.GetAttribLocation(p, "vPos"))
	assert.Equal(t, int32(-1), g.GetAttribLocation(p, "color"))

	mvp := g.GetUniformLocation(p, "MVP")
	tint := g.GetUniformLocation(p, "tint")
	assert.NotEqual(t, mvp, tint)
	assert.GreaterOrEqual(t, mvp, int32(0))
	assert.Equal(t, g.GetUniformLocation(p, "weights")+2, g.GetUniformLocation(p, "weights[2]"))
	assert.Equal(t, int32(-1), g.GetUniformLocation(p, "missing"))

	n := make([]int32, 1)
	g.GetProgramiv(p, glenum.ACTIVE_UNIFORMS, n)
	assert.Equal(t, int32(3), n[0])
	g.GetProgramiv(p, glenum.ATTACHED_SHADERS, n)
	assert.Equal(t, int32(2), n[0])

	empty := g.CreateProgram()
	g.LinkProgram(empty)
	g.GetProgramiv(empty, glenum.LINK_STATUS, n)
	assert.Equal(t, int32(0), n[0])
	assert.NotEmpty(t, g.GetProgramInfoLog(empty))
	g.UseProgram(empty)
	assert.Equal(t, uint32(glenum.INVALID_OPERATION), g.GetError())
}

func TestUniforms(t *testing.T) {
	g := newTestGL(t, 4, 4)
	p := linkedProgram(t, g)
	tint := g.GetUniformLocation(p, "tint")

	g.Uniformf(tint, []float32{1, 2, 3, 4})
	assert.Equal(t, uint32(glenum.INVALID_OPERATION), g.GetError())

	g.UseProgram(p)
	g.Uniformf(tint, []float32{1, 2, 3, 4})
	g.Uniformf(-1, []float32{1})
	require.Equal(t, uint32(glenum.NO_ERROR), g.GetError())
	v := make([]float32, 4)
	g.GetUniformfv(p, tint, v)
	assert.Equal(t, []float32{1, 2, 3, 4}, v)

	mvp := g.GetUniformLocation(p, "MVP")
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	g.UniformMatrixfv(mvp, 4, 1, true, m)
	got := make([]float32, 16)
	g.GetUniformfv(p, mvp, got)
	assert.Equal(t, float32(4), got[1])
	assert.Equal(t, float32(1), got[4])

	g.UniformMatrixfv(mvp, 4, 2, false, m)
	assert.Equal(t, uint32(glenum.INVALID_VALUE), g.GetError())
}

func TestDeleteProgram(t *testing.T) {
	g := newTestGL(t, 4, 4)
	p := linkedProgram(t, g)
	g.UseProgram(p)
	g.DeleteProgram(p)
	assert.True(t, g.IsProgram(p))
	d := make([]int32, 1)
	g.GetProgramiv(p, glenum.DELETE_STATUS, d)
	assert.Equal(t, int32(1), d[0])
	g.UseProgram(0)
	assert.False(t, g.IsProgram(p))
}

func TestDraw(t *testing.T) {
	g := newTestGL(t, 4, 4)
	p := linkedProgram(t, g)
	g.UseProgram(p)

	vbo := g.GenBuffers(1)[0]
	g.BindBuffer(glenum.ARRAY_BUFFER, vbo)
	g.BufferData(glenum.ARRAY_BUFFER, make([]byte, 3*5*4), glenum.STATIC_DRAW)
	g.EnableVertexAttribArray(0)
	g.VertexAttribPointer(0, 2, glenum.FLOAT, false, 5*4, 0)
	g.EnableVertexAttribArray(3)
	g.VertexAttribPointer(3, 3, glenum.FLOAT, false, 5*4, 2*4)
	g.DrawArrays(glenum.TRIANGLES, 0, 3)
	require.Equal(t, uint32(glenum.NO_ERROR), g.GetError())
	assert.Equal(t, 1, g.Draws)

	g.DrawArrays(glenum.TRIANGLES, 0, 4)
	assert.Equal(t, uint32(glenum.INVALID_OPERATION), g.GetError())

	g.DrawElements(glenum.TRIANGLES, 3, glenum.UNSIGNED_INT, 0)
	assert.Equal(t, uint32(glenum.INVALID_OPERATION), g.GetError())

	ebo := g.GenBuffers(1)[0]
	g.BindBuffer(glenum.ELEMENT_ARRAY_BUFFER, ebo)
	g.BufferData(glenum.ELEMENT_ARRAY_BUFFER, []byte{0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0}, glenum.STATIC_DRAW)
	g.DrawElements(glenum.TRIANGLES, 3, glenum.UNSIGNED_INT, 0)
	require.Equal(t, uint32(glenum.NO_ERROR), g.GetError())
	assert.Equal(t, 2, g.Draws)

	a := make([]int32, 1)
	g.GetVertexAttribiv(3, glenum.VERTEX_ATTRIB_ARRAY_SIZE, a)
	assert.Equal(t, int32(3), a[0])
	cur := make([]float32, 4)
	g.VertexAttribf(5, []float32{0.5, 0.25})
	g.GetVertexAttribfv(5, glenum.CURRENT_VERTEX_ATTRIB, cur)
	assert.Equal(t, []float32{0.5, 0.25, 0, 1}, cur)
}
