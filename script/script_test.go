// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"reflect"
	"strings"
	"testing"

	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/driver/offscreen"
	"github.com/stretchr/testify/assert"
)

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"glClear":            "Clear",
		"glGetIntegerv":      "GetIntegerv",
		"glUniformMatrix4fv": "UniformMatrix4fv",
		"createWindow":       "CreateWindow",
		"getFlagsOR":         "GetFlagsOR",
		"flip":               "Flip",
		"gl":                 "Gl",
		"global":             "Global",
	}
	for in, want := range tests {
		assert.Equal(t, want, GoName(in), in)
	}
}

func TestFuncs(t *testing.T) {
	app := offscreen.NewApp()
	fns := Funcs(binding.New(app, app.GL()))

	names := strings.Fields(`createWindow closeWindow focusWindow shouldClose
		shouldWindowClose flip getTime getFramebufferSize getFlag getFlagsOR
		getKeyId getKeyByName getKeyById getKeyName getCursorPos
		getMouseButtons getScrollWheel setCursorPos hideCursor showCursor
		ortho perspective frustum lookAt scale translate rotate normalize
		cross identity glActiveTexture glBufferData glDrawElements
		glGetShaderInfoLog glGetProgramInfoLog glGetString glReadPixels
		glTexImage2D glUniformMatrix2fv glUniformMatrix3fv glUniformMatrix4fv
		glVertexAttribPointer glViewport`)
	for _, n := range []string{"1", "2", "3", "4"} {
		for _, s := range []string{"f", "i", "fv", "iv"} {
			names = append(names, "glUniform"+n+s)
		}
		names = append(names, "glVertexAttrib"+n+"f", "glVertexAttrib"+n+"fv")
	}
	for _, name := range names {
		fn, ok := fns[name]
		if assert.True(t, ok, name) {
			assert.Equal(t, reflect.Func, reflect.TypeOf(fn).Kind(), name)
		}
	}

	// Go names must stay unique for the Go host.
	seen := map[string]string{}
	for name := range fns {
		gn := GoName(name)
		other, dup := seen[gn]
		assert.False(t, dup, "%s and %s both map to %s", name, other, gn)
		seen[gn] = name
	}
}
