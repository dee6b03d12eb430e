// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jshost runs JavaScript programs against a [binding.Context]
// using goja. Every script function and GL enum is defined as a
// global, and errors returned by the context are thrown as exceptions.
package jshost

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"cogentcore.org/glscript/base/errors"
	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/script"
	"github.com/dop251/goja"
)

// Demo is the source of the spinning triangle demo.
//
//go:embed demo.js
var Demo string

// queries are the query functions whose trailing count argument
// defaults to 1, with their full argument counts.
var queries = map[string]int{
	"glGetIntegerv":                         2,
	"glGetFloatv":                           2,
	"glGetBufferParameteriv":                3,
	"glGetFramebufferAttachmentParameteriv": 4,
	"glGetProgramiv":                        3,
	"glGetRenderbufferParameteriv":          3,
	"glGetShaderiv":                         3,
	"glGetTexParameterfv":                   3,
	"glGetTexParameteriv":                   3,
	"glGetUniformfv":                        3,
	"glGetUniformiv":                        3,
	"glGetVertexAttribfv":                   3,
	"glGetVertexAttribiv":                   3,
}

// Host is a JavaScript runtime bound to a [binding.Context].
type Host struct {
	vm  *goja.Runtime
	ctx *binding.Context
	out io.Writer
}

// New returns a new Host whose scripts drive ctx and print to out.
func New(ctx *binding.Context, out io.Writer) *Host {
	h := &Host{vm: goja.New(), ctx: ctx, out: out}
	for name, fn := range script.Funcs(ctx) {
		h.set(name, fn)
	}
	for _, e := range glenum.Entries() {
		h.set(e.Name, e.Value)
	}
	h.set("readFile", binding.ReadFileCompat)
	h.set("print", h.print)
	console := h.vm.NewObject()
	console.Set("log", h.print)
	h.set("console", console)

	for name, n := range queries {
		h.wrap(name, func(call goja.FunctionCall, next goja.Callable) goja.Value {
			args := call.Arguments
			if len(args) == n-1 {
				args = append(slices.Clip(args), h.vm.ToValue(1))
			}
			return h.forward(next, call, args...)
		})
	}
	h.wrap("glDrawElements", h.drawElements)
	h.wrap("glTexImage2D", h.texImage2D)
	return h
}

// Runtime returns the JavaScript runtime, to define more globals.
func (h *Host) Runtime() *goja.Runtime {
	return h.vm
}

// Run runs a program, using name in error positions. Cancelling ctx
// interrupts it.
func (h *Host) Run(ctx context.Context, name, src string) error {
	stop := context.AfterFunc(ctx, func() {
		h.vm.Interrupt(ctx.Err())
	})
	defer func() {
		stop()
		h.vm.ClearInterrupt()
	}()
	_, err := h.vm.RunScript(name, src)
	return err
}

// RunFile runs the program in the given file.
func (h *Host) RunFile(ctx context.Context, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return h.Run(ctx, path, string(b))
}

// RunDemo runs [Demo].
func (h *Host) RunDemo(ctx context.Context) error {
	return h.Run(ctx, "demo.js", Demo)
}

func (h *Host) set(name string, v any) {
	errors.Must(h.vm.Set(name, v))
}

// wrap replaces the global function name with fn, which can call the
// original through next.
func (h *Host) wrap(name string, fn func(call goja.FunctionCall, next goja.Callable) goja.Value) {
	next, ok := goja.AssertFunction(h.vm.Get(name))
	if !ok {
		panic("jshost: no function " + name)
	}
	h.set(name, func(call goja.FunctionCall) goja.Value {
		return fn(call, next)
	})
}

// forward calls next with args, rethrowing any exception.
func (h *Host) forward(next goja.Callable, call goja.FunctionCall, args ...goja.Value) goja.Value {
	v, err := next(call.This, args...)
	if err != nil {
		h.throw(err)
	}
	return v
}

// throw raises err as a JavaScript exception.
func (h *Host) throw(err error) {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		panic(ex)
	}
	panic(h.vm.NewGoError(err))
}

// drawElements keeps the three argument form, which draws unsigned int
// indices from the start of the element array buffer.
func (h *Host) drawElements(call goja.FunctionCall, next goja.Callable) goja.Value {
	if len(call.Arguments) != 3 {
		return h.forward(next, call, call.Arguments...)
	}
	return h.forward(next, call, call.Argument(0), call.Argument(1), h.vm.ToValue(glenum.UNSIGNED_INT), h.vm.ToValue(0))
}

// texImage2D adds the one argument form, which uploads an image file.
func (h *Host) texImage2D(call goja.FunctionCall, next goja.Callable) goja.Value {
	if len(call.Arguments) != 1 {
		return h.forward(next, call, call.Arguments...)
	}
	if err := h.ctx.TexImage2DFile(call.Argument(0).String()); err != nil {
		h.throw(err)
	}
	return goja.Undefined()
}

func (h *Host) print(call goja.FunctionCall) goja.Value {
	parts := make([]string, len(call.Arguments))
	for i, a := range call.Arguments {
		parts[i] = a.String()
	}
	fmt.Fprintln(h.out, strings.Join(parts, " "))
	return goja.Undefined()
}
