// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gohost runs Go programs against a [binding.Context] using
// the yaegi interpreter. The script functions are provided as package
// gl, which is imported automatically along with the standard library:
//
//	gl.CreateWindow(640, 480, "triangle", false)
//	for ok, _ := gl.ShouldClose(); !ok; ok, _ = gl.ShouldClose() {
//		gl.Clear(gl.COLOR_BUFFER_BIT)
//		gl.Flip()
//	}
//	gl.CloseWindow()
package gohost

import (
	"context"
	"os"
	"reflect"
	"strings"

	"cogentcore.org/glscript/base/errors"
	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/script"
	"github.com/cogentcore/yaegi/interp"
	"github.com/cogentcore/yaegi/stdlib"
)

// ImportPath is the import path of the gl package.
const ImportPath = "glscript/gl"

// Symbols returns the exports of the gl package bound to c. Functions
// are named as in Go, and enums drop their GL_ prefix.
func Symbols(c *binding.Context) interp.Exports {
	syms := map[string]reflect.Value{}
	for name, fn := range script.Funcs(c) {
		syms[script.GoName(name)] = reflect.ValueOf(fn)
	}
	for _, e := range glenum.Entries() {
		syms[strings.TrimPrefix(e.Name, "GL_")] = reflect.ValueOf(e.Value)
	}
	syms["ReadFile"] = reflect.ValueOf(binding.ReadFile)
	syms["TexImage2DFile"] = reflect.ValueOf(c.TexImage2DFile)
	return interp.Exports{
		ImportPath + "/gl": syms,
	}
}

// Host is a Go interpreter bound to a [binding.Context].
type Host struct {
	// Interp is the yaegi interpreter.
	Interp *interp.Interpreter
}

// New returns a new Host whose programs drive ctx. The standard
// library and the gl package are imported before any code runs.
func New(ctx *binding.Context, options interp.Options) *Host {
	in := interp.New(options)
	errors.Log(in.Use(stdlib.Symbols))
	errors.Must(in.Use(Symbols(ctx)))
	in.ImportUsed()
	return &Host{Interp: in}
}

// Run runs a program. Code outside a main function is run as the body
// of one. Cancelling ctx stops the program.
func (h *Host) Run(ctx context.Context, src string) error {
	// all code must be in a function for declarations to be handled correctly
	if !strings.Contains(src, "func main()") {
		src = "func main() {\n" + src + "\n}"
	}
	_, err := h.Interp.EvalWithContext(ctx, src)
	return err
}

// RunFile runs the program in the given file.
func (h *Host) RunFile(ctx context.Context, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return h.Run(ctx, string(b))
}
