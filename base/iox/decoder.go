// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox decodes settings files with any decoder that reads one
// value from a stream, such as the TOML and YAML decoders.
package iox

import (
	"bufio"
	"io"
	"os"
)

// Decoder decodes a value from the stream it was created on.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a [Decoder] that reads from r.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc adapts a decoder constructor with a concrete result
// type, like toml.NewDecoder, to a [DecoderFunc].
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// Open decodes the named file into v. Fields the file does not set
// keep the values v already holds, so v can carry the defaults.
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return f(bufio.NewReader(fp)).Decode(v)
}
