// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides the projection, view and model matrix
// functions exposed to scripts. Matrices are 16 element column-major
// containers and vectors are 3 element containers; see package marshal.
// All functions are pure and safe for concurrent use.
package transform

import (
	"cogentcore.org/glscript/marshal"
	"github.com/go-gl/mathgl/mgl32"
)

// Identity returns the 4x4 identity matrix.
func Identity() []float64 {
	return marshal.FromMat4(mgl32.Ident4())
}

// Ortho returns an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float64) []float64 {
	return marshal.FromMat4(mgl32.Ortho(float32(left), float32(right), float32(bottom), float32(top), float32(near), float32(far)))
}

// Perspective returns a perspective projection matrix for the given
// vertical field of view in radians.
func Perspective(fovy, aspect, near, far float64) []float64 {
	return marshal.FromMat4(mgl32.Perspective(float32(fovy), float32(aspect), float32(near), float32(far)))
}

// Frustum returns a perspective projection matrix for the given
// clipping planes.
func Frustum(left, right, bottom, top, near, far float64) []float64 {
	return marshal.FromMat4(mgl32.Frustum(float32(left), float32(right), float32(bottom), float32(top), float32(near), float32(far)))
}

// LookAt returns a view matrix looking from eye toward center.
func LookAt(eye, center, up []float64) ([]float64, error) {
	e, err := marshal.Vec3(eye)
	if err != nil {
		return nil, err
	}
	c, err := marshal.Vec3(center)
	if err != nil {
		return nil, err
	}
	u, err := marshal.Vec3(up)
	if err != nil {
		return nil, err
	}
	return marshal.FromMat4(mgl32.LookAtV(e, c, u)), nil
}

// Scale returns m scaled by v.
func Scale(m, v []float64) ([]float64, error) {
	return compose(m, v, func(v mgl32.Vec3) mgl32.Mat4 {
		return mgl32.Scale3D(v[0], v[1], v[2])
	})
}

// Translate returns m translated by v.
func Translate(m, v []float64) ([]float64, error) {
	return compose(m, v, func(v mgl32.Vec3) mgl32.Mat4 {
		return mgl32.Translate3D(v[0], v[1], v[2])
	})
}

// Rotate returns m rotated by angle radians around axis.
// The axis does not need to be normalized.
func Rotate(m []float64, angle float64, axis []float64) ([]float64, error) {
	return compose(m, axis, func(v mgl32.Vec3) mgl32.Mat4 {
		return mgl32.HomogRotate3D(float32(angle), v.Normalize())
	})
}

// Normalize returns v scaled to unit length.
func Normalize(v []float64) ([]float64, error) {
	a, err := marshal.Vec3(v)
	if err != nil {
		return nil, err
	}
	return marshal.FromVec3(a.Normalize()), nil
}

// Cross returns the cross product a x b.
func Cross(a, b []float64) ([]float64, error) {
	va, err := marshal.Vec3(a)
	if err != nil {
		return nil, err
	}
	vb, err := marshal.Vec3(b)
	if err != nil {
		return nil, err
	}
	return marshal.FromVec3(va.Cross(vb)), nil
}

// compose returns base * fn(v), so the new transform applies first
// to column vectors.
func compose(base, v []float64, fn func(v mgl32.Vec3) mgl32.Mat4) ([]float64, error) {
	bm, err := marshal.Mat4(base)
	if err != nil {
		return nil, err
	}
	vv, err := marshal.Vec3(v)
	if err != nil {
		return nil, err
	}
	return marshal.FromMat4(bm.Mul4(fn(vv))), nil
}
