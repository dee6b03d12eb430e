// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jshost

import (
	"bytes"
	"context"
	"image"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/glscript/base/iox/imagex"
	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/driver/offscreen"
	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHost returns a Host on an offscreen toolkit, with any window
// closed at the end of the test.
func newHost(t *testing.T) (*Host, *offscreen.App, *bytes.Buffer) {
	t.Helper()
	app := offscreen.NewApp()
	ctx := binding.New(app, app.GL())
	t.Cleanup(func() {
		if ctx.State() == binding.Windowed {
			ctx.CloseWindow()
		}
	})
	out := &bytes.Buffer{}
	return New(ctx, out), app, out
}

func run(t *testing.T, h *Host, src string) {
	t.Helper()
	require.NoError(t, h.Run(context.Background(), t.Name(), src))
}

func TestDemo(t *testing.T) {
	h, app, _ := newHost(t)
	require.NoError(t, h.Runtime().Set("maxFrames", 3))
	require.NoError(t, h.RunDemo(context.Background()))
	assert.Equal(t, 3, app.GL().Draws)
	assert.Equal(t, binding.Destroyed, h.ctx.State())
}

func TestGlobals(t *testing.T) {
	h, _, out := newHost(t)
	run(t, h, `
		print(GL_TRIANGLES, GL_COLOR_BUFFER_BIT, getFlag("GL_TRIANGLES"));
		createWindow(64, 32, "globals");
		print(getFlag("GL_TRIANGLES"), getFlagsOR("GL_COLOR_BUFFER_BIT", "GL_DEPTH_BUFFER_BIT"));
		var m = translate(identity(), [1, 2, 3]);
		console.log(m.length, m[12], m[13], m[14]);
		print(cross([1, 0, 0], [0, 1, 0]).join(","));
		print(getFramebufferSize().join("x"));
		print(readFile("no/such/file") === "FILE COULD NOT BE OPENED");
	`)
	assert.Equal(t, "4 16384 0\n4 16640\n16 1 2 3\n0,0,1\n64x32\ntrue\n", out.String())
}

func TestErrorsThrow(t *testing.T) {
	h, _, out := newHost(t)
	err := h.Run(context.Background(), "clear.js", `glClear(GL_COLOR_BUFFER_BIT);`)
	require.Error(t, err)
	assert.ErrorContains(t, err, binding.ErrNotInitialized.Error())

	run(t, h, `
		try {
			flip();
		} catch (e) {
			print("caught");
		}
		try {
			getKeyName(65);
		} catch (e) {
			print("no key names yet");
		}
		createWindow(64, 32, "errors");
		print(getKeyName(65));
		try {
			glUniformMatrix4fv(0, 1, false, [1, 2, 3]);
		} catch (e) {
			print("short matrix");
		}
	`)
	assert.Equal(t, "caught\nno key names yet\na\nshort matrix\n", out.String())

	var buf bytes.Buffer
	PrintError(&buf, err)
	assert.Contains(t, buf.String(), binding.ErrNotInitialized.Error())
}

func TestQueryCount(t *testing.T) {
	h, _, out := newHost(t)
	run(t, h, `
		createWindow(64, 32, "queries");
		var one = glGetIntegerv(GL_VIEWPORT);
		var all = glGetIntegerv(GL_VIEWPORT, 4);
		print(one.length, all.length, all[2], all[3]);
		print(glGetFloatv(GL_DEPTH_RANGE, 2).join(","));
		print(glGetError() == GL_NO_ERROR);
	`)
	assert.Equal(t, "1 4 64 32\n0,1\ntrue\n", out.String())
}

func TestDrawElements(t *testing.T) {
	h, app, out := newHost(t)
	run(t, h, `
		createWindow(64, 32, "elements");
		var ebo = glGenBuffers(1);
		glBindBuffer(GL_ELEMENT_ARRAY_BUFFER, ebo[0]);
		glBufferData(GL_ELEMENT_ARRAY_BUFFER, [0, 1, 2], GL_STATIC_DRAW, true);
		// The three argument form always draws unsigned ints.
		glDrawElements(GL_TRIANGLES, 3, GL_FLOAT);
		print(glGetError() == GL_NO_ERROR);
		glDrawElements(GL_TRIANGLES, 3, GL_UNSIGNED_INT, 1);
		print(glGetError() == GL_INVALID_OPERATION);
		glDeleteBuffers(1, ebo);
		print(glIsBuffer(ebo[0]));
	`)
	assert.Equal(t, "true\ntrue\nfalse\n", out.String())
	assert.Equal(t, 1, app.GL().Draws)
}

func TestTexImageFile(t *testing.T) {
	h, app, _ := newHost(t)
	path := filepath.Join(t.TempDir(), "tex.png")
	require.NoError(t, imagex.Save(image.NewRGBA(image.Rect(0, 0, 5, 3)), path))
	require.NoError(t, h.Runtime().Set("path", path))
	run(t, h, `
		createWindow(64, 32, "texture");
		var tex = glGenTextures(1)[0];
		glBindTexture(GL_TEXTURE_2D, tex);
		glTexImage2D(path);
		glTexImage2D(GL_TEXTURE_2D, 0, GL_RGBA, 2, 2, 0, GL_RGBA, GL_UNSIGNED_BYTE, null);
		var tex2 = glGenTextures(1)[0];
		glBindTexture(GL_TEXTURE_2D, tex2);
		glTexImage2D(path);
	`)
	_, w, hgt := app.GL().TexImage(1)
	assert.Equal(t, []int32{2, 2}, []int32{w, hgt})
	_, w, hgt = app.GL().TexImage(2)
	assert.Equal(t, []int32{5, 3}, []int32{w, hgt})

	err := h.Run(context.Background(), "missing.js", `glTexImage2D("no/such/image.png");`)
	assert.ErrorContains(t, err, binding.ErrImageDecodeFailed.Error())
}

func TestInterrupt(t *testing.T) {
	h, _, _ := newHost(t)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)
	err := h.Run(ctx, "loop.js", `
		createWindow(64, 32, "loop");
		while (!shouldClose()) {
			flip();
		}
	`)
	var ie *goja.InterruptedError
	require.ErrorAs(t, err, &ie)

	// The runtime is usable again after an interrupt.
	run(t, h, `closeWindow();`)
	assert.Equal(t, binding.Destroyed, h.ctx.State())
}
