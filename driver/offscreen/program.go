// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/glscript/glenum"
)

type shader struct {
	kind     uint32
	source   string
	compiled bool
	deleted  bool
	log      string
}

type program struct {
	shaders   []uint32
	linked    bool
	validated bool
	deleted   bool
	log       string

	// bound are the attribute indexes set by BindAttribLocation,
	// applied at the next link.
	bound map[string]uint32

	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32][]float64
}

var (
	mainRe    = regexp.MustCompile(`\bvoid\s+main\s*\(`)
	uniformRe = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*;`)
	attribRe  = regexp.MustCompile(`(?m)^\s*(?:layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?(?:attribute|in)\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*;`)
)

func (g *GL) CreateShader(xtype uint32) uint32 {
	if xtype != glenum.VERTEX_SHADER && xtype != glenum.FRAGMENT_SHADER {
		g.setError(glenum.INVALID_ENUM)
		return 0
	}
	s := g.genNames("object", 1)[0]
	g.shaders[s] = &shader{kind: xtype}
	return s
}

func (g *GL) IsShader(s uint32) bool {
	_, ok := g.shaders[s]
	return ok
}

// lookupShader returns the shader with the given name, recording
// INVALID_OPERATION for a program name and INVALID_VALUE otherwise.
func (g *GL) lookupShader(s uint32) *shader {
	sh := g.shaders[s]
	if sh == nil {
		if g.programs[s] != nil {
			g.setError(glenum.INVALID_OPERATION)
		} else {
			g.setError(glenum.INVALID_VALUE)
		}
	}
	return sh
}

func (g *GL) ShaderSource(s uint32, source string) {
	if sh := g.lookupShader(s); sh != nil {
		sh.source = source
	}
}

// CompileShader accepts any source with a main function.
func (g *GL) CompileShader(s uint32) {
	sh := g.lookupShader(s)
	if sh == nil {
		return
	}
	sh.compiled = mainRe.MatchString(sh.source)
	sh.log = ""
	if !sh.compiled {
		sh.log = "0:1(1): error: function `main' is not defined\n"
	}
}

func (g *GL) GetShaderiv(s, pname uint32, params []int32) {
	sh := g.lookupShader(s)
	if sh == nil || len(params) == 0 {
		return
	}
	switch pname {
	case glenum.SHADER_TYPE:
		params[0] = int32(sh.kind)
	case glenum.DELETE_STATUS:
		params[0] = int32(btof(sh.deleted))
	case glenum.COMPILE_STATUS:
		params[0] = int32(btof(sh.compiled))
	case glenum.INFO_LOG_LENGTH:
		params[0] = cStrLen(sh.log)
	case glenum.SHADER_SOURCE_LENGTH:
		params[0] = cStrLen(sh.source)
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

func (g *GL) GetShaderInfoLog(s uint32) string {
	if sh := g.lookupShader(s); sh != nil {
		return sh.log
	}
	return ""
}

func (g *GL) DeleteShader(s uint32) {
	if s == 0 {
		return
	}
	sh := g.lookupShader(s)
	if sh == nil {
		return
	}
	sh.deleted = true
	if !g.attached(s) {
		delete(g.shaders, s)
	}
}

// attached reports whether the shader is attached to any program.
func (g *GL) attached(s uint32) bool {
	for _, p := range g.programs {
		if slices.Contains(p.shaders, s) {
			return true
		}
	}
	return false
}

func (g *GL) CreateProgram() uint32 {
	p := g.genNames("object", 1)[0]
	g.programs[p] = &program{bound: map[string]uint32{}}
	return p
}

func (g *GL) IsProgram(p uint32) bool {
	_, ok := g.programs[p]
	return ok
}

// lookupProgram is [GL.lookupShader] for programs.
func (g *GL) lookupProgram(p uint32) *program {
	pr := g.programs[p]
	if pr == nil {
		if g.shaders[p] != nil {
			g.setError(glenum.INVALID_OPERATION)
		} else {
			g.setError(glenum.INVALID_VALUE)
		}
	}
	return pr
}

func (g *GL) AttachShader(p, s uint32) {
	pr := g.lookupProgram(p)
	sh := g.lookupShader(s)
	if pr == nil || sh == nil {
		return
	}
	if slices.Contains(pr.shaders, s) {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	pr.shaders = append(pr.shaders, s)
}

func (g *GL) DetachShader(p, s uint32) {
	pr := g.lookupProgram(p)
	sh := g.lookupShader(s)
	if pr == nil || sh == nil {
		return
	}
	i := slices.Index(pr.shaders, s)
	if i < 0 {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	pr.shaders = slices.Delete(pr.shaders, i, i+1)
	if sh.deleted && !g.attached(s) {
		delete(g.shaders, s)
	}
}

func (g *GL) BindAttribLocation(p, index uint32, name string) {
	if !g.checkAttrib(index) {
		return
	}
	pr := g.lookupProgram(p)
	if pr == nil {
		return
	}
	if strings.HasPrefix(name, "gl_") {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	pr.bound[name] = index
}

// LinkProgram links a program with one compiled vertex shader and one
// compiled fragment shader. Uniforms get consecutive locations in
// declaration order; attributes get their bound or declared index, or
// else the lowest free one.
func (g *GL) LinkProgram(p uint32) {
	pr := g.lookupProgram(p)
	if pr == nil {
		return
	}
	pr.linked, pr.validated = false, false
	pr.attribs, pr.uniforms, pr.values = nil, nil, nil
	var vert, frag *shader
	for _, s := range pr.shaders {
		sh := g.shaders[s]
		switch {
		case !sh.compiled:
			pr.log = fmt.Sprintf("error: shader %d is not compiled\n", s)
			return
		case sh.kind == glenum.VERTEX_SHADER:
			vert = sh
		case sh.kind == glenum.FRAGMENT_SHADER:
			frag = sh
		}
	}
	if vert == nil || frag == nil {
		pr.log = "error: a vertex and a fragment shader are required\n"
		return
	}
	pr.uniforms = map[string]int32{}
	var loc int32
	for _, sh := range []*shader{vert, frag} {
		for _, m := range uniformRe.FindAllStringSubmatch(sh.source, -1) {
			name := m[1]
			if _, ok := pr.uniforms[name]; ok {
				continue
			}
			n := 1
			if m[2] != "" {
				n, _ = strconv.Atoi(m[2])
			}
			pr.uniforms[name] = loc
			if m[2] != "" {
				for i := range n {
					pr.uniforms[fmt.Sprintf("%s[%d]", name, i)] = loc + int32(i)
				}
			}
			loc += int32(max(n, 1))
		}
	}
	pr.attribs = map[string]int32{}
	used := map[int32]bool{}
	var free []string
	for _, m := range attribRe.FindAllStringSubmatch(vert.source, -1) {
		name := m[2]
		if idx, ok := pr.bound[name]; ok {
			pr.attribs[name] = int32(idx)
		} else if m[1] != "" {
			idx, _ := strconv.Atoi(m[1])
			pr.attribs[name] = int32(idx)
		} else {
			free = append(free, name)
			continue
		}
		used[pr.attribs[name]] = true
	}
	var next int32
	for _, name := range free {
		for used[next] {
			next++
		}
		pr.attribs[name] = next
		used[next] = true
	}
	pr.values = map[int32][]float64{}
	pr.linked = true
	pr.log = ""
}

func (g *GL) ValidateProgram(p uint32) {
	if pr := g.lookupProgram(p); pr != nil {
		pr.validated = pr.linked
	}
}

func (g *GL) UseProgram(p uint32) {
	if p != 0 {
		pr := g.lookupProgram(p)
		if pr == nil {
			return
		}
		if !pr.linked {
			g.setError(glenum.INVALID_OPERATION)
			return
		}
	}
	old := uint32(g.param(glenum.CURRENT_PROGRAM))
	if op := g.programs[old]; op != nil && op.deleted && old != p {
		g.removeProgram(old)
	}
	g.setParam(glenum.CURRENT_PROGRAM, float64(p))
}

func (g *GL) DeleteProgram(p uint32) {
	if p == 0 {
		return
	}
	pr := g.lookupProgram(p)
	if pr == nil {
		return
	}
	pr.deleted = true
	if uint32(g.param(glenum.CURRENT_PROGRAM)) != p {
		g.removeProgram(p)
	}
}

// removeProgram deletes a program and any deleted shaders that were
// only attached to it.
func (g *GL) removeProgram(p uint32) {
	pr := g.programs[p]
	delete(g.programs, p)
	for _, s := range pr.shaders {
		if sh := g.shaders[s]; sh != nil && sh.deleted && !g.attached(s) {
			delete(g.shaders, s)
		}
	}
}

func (g *GL) GetProgramiv(p, pname uint32, params []int32) {
	pr := g.lookupProgram(p)
	if pr == nil || len(params) == 0 {
		return
	}
	switch pname {
	case glenum.DELETE_STATUS:
		params[0] = int32(btof(pr.deleted))
	case glenum.LINK_STATUS:
		params[0] = int32(btof(pr.linked))
	case glenum.VALIDATE_STATUS:
		params[0] = int32(btof(pr.validated))
	case glenum.INFO_LOG_LENGTH:
		params[0] = cStrLen(pr.log)
	case glenum.ATTACHED_SHADERS:
		params[0] = int32(len(pr.shaders))
	case glenum.ACTIVE_ATTRIBUTES:
		params[0] = int32(len(pr.attribs))
	case glenum.ACTIVE_ATTRIBUTE_MAX_LENGTH:
		params[0] = maxNameLen(pr.attribs)
	case glenum.ACTIVE_UNIFORMS:
		params[0] = int32(len(activeUniforms(pr.uniforms)))
	case glenum.ACTIVE_UNIFORM_MAX_LENGTH:
		params[0] = maxNameLen(pr.uniforms)
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

func (g *GL) GetProgramInfoLog(p uint32) string {
	if pr := g.lookupProgram(p); pr != nil {
		return pr.log
	}
	return ""
}

// activeUniforms returns the declared uniform names, without the
// element names of arrays.
func activeUniforms(uniforms map[string]int32) []string {
	return slices.DeleteFunc(slices.Collect(maps.Keys(uniforms)), func(n string) bool {
		return strings.Contains(n, "[")
	})
}

func maxNameLen(names map[string]int32) int32 {
	var n int32
	for name := range names {
		n = max(n, cStrLen(name))
	}
	return n
}

// cStrLen returns the length of s including a null terminator, or 0
// for an empty string, as the GL length queries report it.
func cStrLen(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s) + 1)
}

func (g *GL) GetAttribLocation(p uint32, name string) int32 {
	pr := g.lookupProgram(p)
	if pr == nil {
		return -1
	}
	if !pr.linked {
		g.setError(glenum.INVALID_OPERATION)
		return -1
	}
	if loc, ok := pr.attribs[name]; ok {
		return loc
	}
	return -1
}

func (g *GL) GetUniformLocation(p uint32, name string) int32 {
	pr := g.lookupProgram(p)
	if pr == nil {
		return -1
	}
	if !pr.linked {
		g.setError(glenum.INVALID_OPERATION)
		return -1
	}
	if loc, ok := pr.uniforms[name]; ok {
		return loc
	}
	return -1
}

// setUniform stores values for a location of the current program.
// Location -1 is silently ignored.
func (g *GL) setUniform(location int32, values []float64) {
	pr := g.programs[uint32(g.param(glenum.CURRENT_PROGRAM))]
	if pr == nil || !pr.linked {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	if location == -1 {
		return
	}
	if !slices.Contains(slices.Collect(maps.Values(pr.uniforms)), location) {
		g.setError(glenum.INVALID_OPERATION)
		return
	}
	pr.values[location] = values
}

func (g *GL) Uniformf(location int32, v []float32) {
	if len(v) < 1 || len(v) > 4 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.setUniform(location, floats64(v))
}

func (g *GL) Uniformi(location int32, v []int32) {
	if len(v) < 1 || len(v) > 4 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.setUniform(location, ints64(v))
}

func (g *GL) Uniformfv(location int32, size int, count int32, v []float32) {
	n := size * int(count)
	if count < 0 || n > len(v) {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.setUniform(location, floats64(v[:n]))
}

func (g *GL) Uniformiv(location int32, size int, count int32, v []int32) {
	n := size * int(count)
	if count < 0 || n > len(v) {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.setUniform(location, ints64(v[:n]))
}

// UniformMatrixfv stores matrices in column-major order, transposing
// them first if transpose is set.
func (g *GL) UniformMatrixfv(location int32, dim int, count int32, transpose bool, v []float32) {
	sz := dim * dim
	n := sz * int(count)
	if count < 0 || n > len(v) {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	vals := floats64(v[:n])
	if transpose {
		for m := 0; m < n; m += sz {
			mat := slices.Clone(vals[m : m+sz])
			for r := range dim {
				for c := range dim {
					vals[m+c*dim+r] = mat[r*dim+c]
				}
			}
		}
	}
	g.setUniform(location, vals)
}

func (g *GL) uniformValues(p uint32, location int32) []float64 {
	pr := g.lookupProgram(p)
	if pr == nil {
		return nil
	}
	if !pr.linked {
		g.setError(glenum.INVALID_OPERATION)
		return nil
	}
	v, ok := pr.values[location]
	if !ok && !slices.Contains(slices.Collect(maps.Values(pr.uniforms)), location) {
		g.setError(glenum.INVALID_OPERATION)
	}
	return v
}

func (g *GL) GetUniformfv(p uint32, location int32, params []float32) {
	v := g.uniformValues(p, location)
	for i := range min(len(v), len(params)) {
		params[i] = float32(v[i])
	}
}

func (g *GL) GetUniformiv(p uint32, location int32, params []int32) {
	v := g.uniformValues(p, location)
	for i := range min(len(v), len(params)) {
		params[i] = int32(v[i])
	}
}

func floats64(v []float32) []float64 {
	res := make([]float64, len(v))
	for i, x := range v {
		res[i] = float64(x)
	}
	return res
}

func ints64(v []int32) []float64 {
	res := make([]float64, len(v))
	for i, x := range v {
		res[i] = float64(x)
	}
	return res
}
