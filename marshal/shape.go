// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marshal converts between the dynamic numeric containers
// scripts pass around ([]float64) and the fixed-layout values the
// graphics API consumes. Every conversion checks the length of its
// input before reading it; excess values are ignored.
package marshal

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrShapeMismatch is matched by every [ShapeError].
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError reports a container that is shorter than the shape
// a call site requires.
type ShapeError struct {
	// What names the value being converted, such as "mat4" or "pixels".
	What string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: need %d values, got %d", e.What, e.Want, e.Got)
}

// Is reports whether target is [ErrShapeMismatch].
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Check returns a [ShapeError] if n is larger than the length of v.
// A negative n is treated as a requirement for zero values.
func Check[T any](what string, v []T, n int) error {
	if n < 0 {
		n = 0
	}
	if len(v) < n {
		return &ShapeError{What: what, Want: n, Got: len(v)}
	}
	return nil
}

// Vec3 converts the first 3 values of v to a vector.
func Vec3(v []float64) (mgl32.Vec3, error) {
	if err := Check("vec3", v, 3); err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}, nil
}

// FromVec3 returns a new 3 element container with the values of v.
func FromVec3(v mgl32.Vec3) []float64 {
	return []float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Mat4 converts the first 16 values of m, in column-major order, to
// a matrix. Element (row r, column c) is m[c*4+r].
func Mat4(m []float64) (mgl32.Mat4, error) {
	var res mgl32.Mat4
	if err := Check("mat4", m, 16); err != nil {
		return res, err
	}
	for i := range res {
		res[i] = float32(m[i])
	}
	return res, nil
}

// FromMat4 returns a new 16 element column-major container with the
// values of m.
func FromMat4(m mgl32.Mat4) []float64 {
	res := make([]float64, 16)
	for i, v := range m {
		res[i] = float64(v)
	}
	return res
}

// Floats converts the first n values of v to float32.
// A negative n converts all of v.
func Floats(what string, v []float64, n int) ([]float32, error) {
	if n < 0 {
		n = len(v)
	}
	if err := Check(what, v, n); err != nil {
		return nil, err
	}
	res := make([]float32, n)
	for i := range res {
		res[i] = float32(v[i])
	}
	return res, nil
}

// Ints converts the first n values of v to int32, truncating toward zero.
// A negative n converts all of v.
func Ints(what string, v []float64, n int) ([]int32, error) {
	if n < 0 {
		n = len(v)
	}
	if err := Check(what, v, n); err != nil {
		return nil, err
	}
	res := make([]int32, n)
	for i := range res {
		res[i] = int32(v[i])
	}
	return res, nil
}

// Uints converts the first n values of v to uint32, as used for object
// handles and element indices. A negative n converts all of v.
func Uints(what string, v []float64, n int) ([]uint32, error) {
	if n < 0 {
		n = len(v)
	}
	if err := Check(what, v, n); err != nil {
		return nil, err
	}
	res := make([]uint32, n)
	for i := range res {
		res[i] = uint32(v[i])
	}
	return res, nil
}
