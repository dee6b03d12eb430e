// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp runs the command line and returns what it wrote.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"glscript"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestFlags(t *testing.T) {
	out, err := runApp(t, "flags", "GL_TRIANGLE")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%-48s 0x0004\n%-48s 0x0006\n%-48s 0x0005\n", "GL_TRIANGLES", "GL_TRIANGLE_FAN", "GL_TRIANGLE_STRIP"), out)
}

func TestKeys(t *testing.T) {
	out, err := runApp(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("%-12s %d\n", "a", 65))
	assert.Contains(t, out, fmt.Sprintf("%-12s %d\n", "NULL", 348))
}

func TestRunJS(t *testing.T) {
	path := writeFile(t, "hello.js", `
		createWindow(0, 0, "");
		print(getFramebufferSize().join("x"));
		flip();
	`)
	out, err := runApp(t, "run", path)
	require.NoError(t, err)
	assert.Equal(t, "640x480\n", out)

	// a second run can open a window, since the first was closed
	_, err = runApp(t, "run", path)
	assert.NoError(t, err)
}

func TestRunGo(t *testing.T) {
	path := writeFile(t, "hello.go", `
	gl.CreateWindow(0, 0, "", false)
	w, _ := gl.GetFramebufferSize()
	fmt.Println(w[0] * w[1])
	gl.CloseWindow()
	`)
	out, err := runApp(t, "run", path)
	require.NoError(t, err)
	assert.Equal(t, "307200\n", out)
}

func TestRunConfig(t *testing.T) {
	cfg := writeFile(t, "glscript.toml", "width = 320\nheight = 200\n")
	path := writeFile(t, "size.js", `
		createWindow(0, 0, "");
		print(getFramebufferSize().join("x"));
	`)
	out, err := runApp(t, "run", "--config", cfg, "-vv", path)
	require.NoError(t, err)
	assert.Equal(t, "320x200\n", out)
	assert.Equal(t, logx.LevelFromFlags(true, false, false), logx.UserLevel)
	logx.UserLevel = logx.LevelFromFlags(false, false, false)
}

func TestRunErrors(t *testing.T) {
	_, err := runApp(t, "run")
	assert.Error(t, err)

	_, err = runApp(t, "run", writeFile(t, "script.py", "print(1)"))
	assert.ErrorContains(t, err, "unknown script type")

	_, err = runApp(t, "run", "--config", writeFile(t, "glscript.ini", ""), writeFile(t, "a.js", ""))
	assert.ErrorContains(t, err, "unknown format")

	_, err = runApp(t, "run", writeFile(t, "throw.js", `createWindow(0, 0, ""); throw new Error("boom");`))
	assert.ErrorContains(t, err, "boom")

	// the failed script's window was closed
	_, err = runApp(t, "run", writeFile(t, "ok.js", `createWindow(0, 0, "");`))
	assert.NoError(t, err)
}

func TestCloseWindow(t *testing.T) {
	bc := newContext(binding.DefaultConfig())
	closeWindow(bc)
	assert.Equal(t, binding.Uninitialized, bc.State())

	require.NoError(t, bc.CreateWindow(0, 0, "", false))
	closeWindow(bc)
	assert.Equal(t, binding.Destroyed, bc.State())
	closeWindow(bc)
	assert.Equal(t, binding.Destroyed, bc.State())
}

// syncBuffer is a buffer that a running command writes to while the
// test reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	src := `createWindow(0, 0, ""); print("run"); closeWindow();`
	path := writeFile(t, "watched.js", src)
	app := newApp()
	out := &syncBuffer{}
	app.Writer = out
	app.ErrWriter = out

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.RunContext(ctx, []string{"glscript", "run", "--watch", path})
	}()
	runs := func() int { return strings.Count(out.String(), "run\n") }
	require.Eventually(t, func() bool { return runs() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(src+"\n"), 0666))
	require.Eventually(t, func() bool { return runs() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
