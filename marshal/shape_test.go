// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marshal

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4RoundTrip(t *testing.T) {
	id := FromMat4(mgl32.Ident4())
	m, err := Mat4(id)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Ident4(), m)
	assert.Equal(t, id, FromMat4(m))

	distinct := make([]float64, 16)
	for i := range distinct {
		distinct[i] = float64(i + 1)
	}
	m, err = Mat4(distinct)
	require.NoError(t, err)
	assert.Equal(t, distinct, FromMat4(m))
	// column-major: element at row 1, column 2 is index 2*4+1
	assert.Equal(t, float32(10), m.At(1, 2))
	assert.Equal(t, float32(13), m.Col(3)[0])
}

func TestMat4Shape(t *testing.T) {
	_, err := Mat4(make([]float64, 15))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "mat4", se.What)
	assert.Equal(t, 16, se.Want)
	assert.Equal(t, 15, se.Got)

	long := FromMat4(mgl32.Ident4())
	long = append(long, 99, 100)
	m, err := Mat4(long)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Ident4(), m)
}

func TestVec3(t *testing.T) {
	v, err := Vec3([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v)
	assert.Equal(t, []float64{1, 2, 3}, FromVec3(v))

	_, err = Vec3([]float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Vec3(nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFreshOutput(t *testing.T) {
	in := []float64{1, 2, 3}
	v, _ := Vec3(in)
	out := FromVec3(v)
	out[0] = 42
	assert.Equal(t, 1.0, in[0])
}

func TestTyped(t *testing.T) {
	f, err := Floats("data", []float64{0.5, 1.5, 2.5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1.5}, f)
	f, err = Floats("data", []float64{0.5, 1.5, 2.5}, -1)
	require.NoError(t, err)
	assert.Len(t, f, 3)
	_, err = Floats("data", []float64{1}, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	i, err := Ints("ints", []float64{1.9, -2.9}, -1)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -2}, i)

	u, err := Uints("handles", []float64{3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 4}, u)
	_, err = Uints("handles", []float64{3}, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
