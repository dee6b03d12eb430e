// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marshal

import (
	"encoding/binary"
	"math"

	"cogentcore.org/glscript/glenum"
)

// ElementType is the native type of the elements of a flat buffer.
type ElementType int32

const (
	Float32 ElementType = iota
	Uint32
	Int32
	Uint16
	Int16
	Uint8
	Int8
)

// Size returns the size of one element in bytes.
func (t ElementType) Size() int {
	switch t {
	case Uint16, Int16:
		return 2
	case Uint8, Int8:
		return 1
	default:
		return 4
	}
}

func (t ElementType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Uint32:
		return "uint32"
	case Int32:
		return "int32"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	}
	return "unknown"
}

// ElementTypeOf returns the element type for a GL data type such as
// GL_FLOAT or GL_UNSIGNED_SHORT. Packed pixel types map to their
// storage type.
func ElementTypeOf(glType uint32) (ElementType, bool) {
	switch glType {
	case glenum.FLOAT:
		return Float32, true
	case glenum.UNSIGNED_INT:
		return Uint32, true
	case glenum.INT, glenum.FIXED:
		return Int32, true
	case glenum.UNSIGNED_SHORT, glenum.UNSIGNED_SHORT_4_4_4_4,
		glenum.UNSIGNED_SHORT_5_5_5_1, glenum.UNSIGNED_SHORT_5_6_5:
		return Uint16, true
	case glenum.SHORT:
		return Int16, true
	case glenum.UNSIGNED_BYTE:
		return Uint8, true
	case glenum.BYTE:
		return Int8, true
	}
	return Float32, false
}

// PixelLayout returns the element type and the number of elements per
// pixel for a pixel transfer of the given format and type.
// Unknown combinations report false.
func PixelLayout(format, glType uint32) (ElementType, int, bool) {
	et, ok := ElementTypeOf(glType)
	if !ok {
		return et, 0, false
	}
	switch glType {
	case glenum.UNSIGNED_SHORT_4_4_4_4, glenum.UNSIGNED_SHORT_5_5_5_1, glenum.UNSIGNED_SHORT_5_6_5:
		return et, 1, true
	}
	switch format {
	case glenum.ALPHA, glenum.LUMINANCE, glenum.DEPTH_COMPONENT:
		return et, 1, true
	case glenum.LUMINANCE_ALPHA:
		return et, 2, true
	case glenum.RGB:
		return et, 3, true
	case glenum.RGBA:
		return et, 4, true
	}
	return et, 0, false
}

// Encode returns the native byte representation of v as elements of
// the given type. Values are converted as by a Go conversion, so
// integer types truncate toward zero.
func Encode(v []float64, t ElementType) []byte {
	sz := t.Size()
	b := make([]byte, len(v)*sz)
	ne := binary.NativeEndian
	for i, x := range v {
		o := b[i*sz:]
		switch t {
		case Float32:
			ne.PutUint32(o, math.Float32bits(float32(x)))
		case Uint32:
			ne.PutUint32(o, uint32(x))
		case Int32:
			ne.PutUint32(o, uint32(int32(x)))
		case Uint16:
			ne.PutUint16(o, uint16(x))
		case Int16:
			ne.PutUint16(o, uint16(int16(x)))
		case Uint8:
			o[0] = uint8(x)
		case Int8:
			o[0] = uint8(int8(x))
		}
	}
	return b
}

// Decode is the inverse of [Encode]: it reads len(b)/t.Size() elements
// of the given type from b.
func Decode(b []byte, t ElementType) []float64 {
	sz := t.Size()
	res := make([]float64, len(b)/sz)
	ne := binary.NativeEndian
	for i := range res {
		o := b[i*sz:]
		switch t {
		case Float32:
			res[i] = float64(math.Float32frombits(ne.Uint32(o)))
		case Uint32:
			res[i] = float64(ne.Uint32(o))
		case Int32:
			res[i] = float64(int32(ne.Uint32(o)))
		case Uint16:
			res[i] = float64(ne.Uint16(o))
		case Int16:
			res[i] = float64(int16(ne.Uint16(o)))
		case Uint8:
			res[i] = float64(o[0])
		case Int8:
			res[i] = float64(int8(o[0]))
		}
	}
	return res
}
