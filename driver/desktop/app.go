// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

// Package desktop implements the windowing toolkit and the graphics
// call surface with glfw and OpenGL.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"cogentcore.org/glscript/gpu"
	"cogentcore.org/glscript/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw must run on the main thread
	runtime.LockOSThread()
}

// App is the [system.Toolkit] implementation for the desktop platform.
type App struct {
	gl *GL
}

var _ system.Toolkit = (*App)(nil)

// NewApp returns a new desktop toolkit.
func NewApp() *App {
	return &App{gl: &GL{}}
}

// GL returns the graphics call surface of the app's contexts.
func (a *App) GL() gpu.GL {
	return a.gl
}

func (a *App) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	slog.Debug("glfw initialized", "version", glfw.GetVersionString())
	return nil
}

func (a *App) Terminate() {
	glfw.Terminate()
}

func (a *App) SetContextHints(h system.ContextHints) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, h.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, h.Minor)
	if h.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Samples, h.Samples)
	glfw.WindowHint(glfw.Resizable, glfwBool(h.Resizable))
}

func (a *App) CreateWindow(width, height int, title string, fullscreen bool) (system.Window, error) {
	var mon *glfw.Monitor
	if fullscreen {
		mon = glfw.GetPrimaryMonitor()
		if mon == nil {
			return nil, fmt.Errorf("no primary monitor for a fullscreen window")
		}
		if vm := mon.GetVideoMode(); vm != nil {
			width, height = vm.Width, vm.Height
		}
	}
	glw, err := glfw.CreateWindow(width, height, title, mon, nil)
	if err != nil {
		return nil, err
	}
	return newWindow(glw), nil
}

func (a *App) PollEvents() {
	glfw.PollEvents()
}

func (a *App) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (a *App) KeyName(code int) (string, bool) {
	if !validKey(code) {
		return "", false
	}
	name := glfw.GetKeyName(glfw.Key(code), 0)
	return name, name != ""
}

func (a *App) Time() float64 {
	return glfw.GetTime()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
