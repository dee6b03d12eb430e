// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gohost

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/driver/offscreen"
	"github.com/cogentcore/yaegi/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHost(t *testing.T) (*Host, *binding.Context, *bytes.Buffer) {
	t.Helper()
	app := offscreen.NewApp()
	ctx := binding.New(app, app.GL())
	t.Cleanup(func() {
		if ctx.State() == binding.Windowed {
			ctx.CloseWindow()
		}
	})
	out := &bytes.Buffer{}
	return New(ctx, interp.Options{Stdout: out}), ctx, out
}

func TestSymbols(t *testing.T) {
	app := offscreen.NewApp()
	syms := Symbols(binding.New(app, app.GL()))[ImportPath+"/gl"]
	for _, name := range []string{"CreateWindow", "Flip", "Clear", "UniformMatrix4fv", "GetFlag", "Identity", "ReadFile", "TexImage2DFile", "COLOR_BUFFER_BIT", "TRIANGLES"} {
		assert.Contains(t, syms, name)
	}
	assert.Equal(t, uint32(0x4000), syms["COLOR_BUFFER_BIT"].Interface())
}

func TestRun(t *testing.T) {
	h, ctx, out := newHost(t)
	require.NoError(t, h.Run(context.Background(), `
	fmt.Println(gl.Clear(gl.COLOR_BUFFER_BIT) != nil)
	if err := gl.CreateWindow(64, 32, "go", false); err != nil {
		panic(err)
	}
	fmt.Println(gl.GetFlag("GL_TRIANGLES") == gl.TRIANGLES)
	gl.ClearColor(0, 1, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	px, err := gl.ReadPixels(0, 0, 1, 1, gl.RGB, gl.UNSIGNED_BYTE, 3)
	fmt.Println(px, err)
	m, _ := gl.Translate(gl.Identity(), []float64{1, 2, 3})
	fmt.Println(m[12], m[13], m[14])
	gl.Flip()
	gl.CloseWindow()
	`))
	assert.Equal(t, "true\ntrue\n[0 255 0] <nil>\n1 2 3\n", out.String())
	assert.Equal(t, binding.Destroyed, ctx.State())
}

func TestRunFile(t *testing.T) {
	h, _, out := newHost(t)
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte(`
func frames() int { return 2 }

func main() {
	gl.CreateWindow(0, 0, "", false)
	for i := 0; i < frames(); i++ {
		gl.Flip()
	}
	w, _ := gl.GetFramebufferSize()
	fmt.Println(w)
	gl.CloseWindow()
}
`), 0666))
	require.NoError(t, h.RunFile(context.Background(), path))
	assert.Equal(t, "[640 480]\n", out.String())

	assert.Error(t, h.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.go")))
}

func TestRunErrors(t *testing.T) {
	h, _, _ := newHost(t)
	assert.Error(t, h.Run(context.Background(), `gl.NoSuchFunc()`))
	assert.Error(t, h.Run(context.Background(), `panic("stop")`))
}

func TestCancel(t *testing.T) {
	h, _, _ := newHost(t)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)
	err := h.Run(ctx, `
	gl.CreateWindow(64, 32, "loop", false)
	for {
		gl.Flip()
	}
	`)
	assert.ErrorIs(t, err, context.Canceled)
}
