// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"errors"
	"slices"

	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/gpu"
)

const (
	maxVertexAttribs   = 16
	maxTextureUnits    = 32
	maxTextureSize     = 4096
	vertexArrayBinding = 0x85B5
)

// GL is a software implementation of [gpu.GL]. It tracks the object and
// state semantics of a GL context in memory and keeps a color buffer
// that Clear writes and ReadPixels reads. It does not rasterize; draw
// calls are validated and counted.
type GL struct {
	app    *App
	loaded bool

	// err is the first unreported error, returned by GetError.
	err uint32

	// params holds the values of the state queries, by pname.
	params map[uint32][]float64
	caps   map[uint32]bool
	hints  map[uint32]uint32

	nextName map[string]uint32

	buffers       map[uint32]*buffer
	textures      map[uint32]*texture
	framebuffers  map[uint32]*framebuffer
	renderbuffers map[uint32]*renderbuffer
	vertexArrays  map[uint32]bool
	shaders       map[uint32]*shader
	programs      map[uint32]*program

	// boundTextures is the texture bound to each unit and target.
	boundTextures map[[2]uint32]uint32
	attribs       [maxVertexAttribs]vertexAttrib

	width, height int
	color         []uint8

	// Draws counts the accepted draw calls.
	Draws int
}

var _ gpu.GL = (*GL)(nil)

func newGL(app *App) *GL {
	g := &GL{app: app}
	g.reset()
	return g
}

// reset puts the context in its initial state.
func (g *GL) reset() {
	g.err = glenum.NO_ERROR
	g.params = map[uint32][]float64{
		glenum.COLOR_CLEAR_VALUE:                {0, 0, 0, 0},
		glenum.COLOR_WRITEMASK:                  {1, 1, 1, 1},
		glenum.DEPTH_CLEAR_VALUE:                {1},
		glenum.DEPTH_RANGE:                      {0, 1},
		glenum.DEPTH_WRITEMASK:                  {1},
		glenum.DEPTH_FUNC:                       {glenum.LESS},
		glenum.STENCIL_CLEAR_VALUE:              {0},
		glenum.LINE_WIDTH:                       {1},
		glenum.CULL_FACE_MODE:                   {glenum.BACK},
		glenum.FRONT_FACE:                       {glenum.CCW},
		glenum.BLEND_COLOR:                      {0, 0, 0, 0},
		glenum.BLEND_EQUATION_RGB:               {glenum.FUNC_ADD},
		glenum.BLEND_EQUATION_ALPHA:             {glenum.FUNC_ADD},
		glenum.BLEND_SRC_RGB:                    {glenum.ONE},
		glenum.BLEND_SRC_ALPHA:                  {glenum.ONE},
		glenum.BLEND_DST_RGB:                    {glenum.ZERO},
		glenum.BLEND_DST_ALPHA:                  {glenum.ZERO},
		glenum.STENCIL_FUNC:                     {glenum.ALWAYS},
		glenum.STENCIL_REF:                      {0},
		glenum.STENCIL_VALUE_MASK:               {0xFFFFFFFF},
		glenum.STENCIL_WRITEMASK:                {0xFFFFFFFF},
		glenum.STENCIL_FAIL:                     {glenum.KEEP},
		glenum.STENCIL_PASS_DEPTH_FAIL:          {glenum.KEEP},
		glenum.STENCIL_PASS_DEPTH_PASS:          {glenum.KEEP},
		glenum.STENCIL_BACK_FUNC:                {glenum.ALWAYS},
		glenum.STENCIL_BACK_REF:                 {0},
		glenum.STENCIL_BACK_VALUE_MASK:          {0xFFFFFFFF},
		glenum.STENCIL_BACK_WRITEMASK:           {0xFFFFFFFF},
		glenum.STENCIL_BACK_FAIL:                {glenum.KEEP},
		glenum.STENCIL_BACK_PASS_DEPTH_FAIL:     {glenum.KEEP},
		glenum.STENCIL_BACK_PASS_DEPTH_PASS:     {glenum.KEEP},
		glenum.POLYGON_OFFSET_FACTOR:            {0},
		glenum.POLYGON_OFFSET_UNITS:             {0},
		glenum.SAMPLE_COVERAGE_VALUE:            {1},
		glenum.SAMPLE_COVERAGE_INVERT:           {0},
		glenum.UNPACK_ALIGNMENT:                 {4},
		glenum.PACK_ALIGNMENT:                   {4},
		glenum.ACTIVE_TEXTURE:                   {glenum.TEXTURE0},
		glenum.ARRAY_BUFFER_BINDING:             {0},
		glenum.ELEMENT_ARRAY_BUFFER_BINDING:     {0},
		glenum.FRAMEBUFFER_BINDING:              {0},
		glenum.RENDERBUFFER_BINDING:             {0},
		glenum.CURRENT_PROGRAM:                  {0},
		glenum.TEXTURE_BINDING_2D:               {0},
		glenum.TEXTURE_BINDING_CUBE_MAP:         {0},
		vertexArrayBinding:                      {0},
		glenum.VIEWPORT:                         {0, 0, 0, 0},
		glenum.SCISSOR_BOX:                      {0, 0, 0, 0},
		glenum.GENERATE_MIPMAP_HINT:             {glenum.DONT_CARE},
		glenum.MAX_TEXTURE_SIZE:                 {maxTextureSize},
		glenum.MAX_CUBE_MAP_TEXTURE_SIZE:        {maxTextureSize},
		glenum.MAX_RENDERBUFFER_SIZE:            {maxTextureSize},
		glenum.MAX_VIEWPORT_DIMS:                {maxTextureSize, maxTextureSize},
		glenum.MAX_VERTEX_ATTRIBS:               {maxVertexAttribs},
		glenum.MAX_TEXTURE_IMAGE_UNITS:          {16},
		glenum.MAX_VERTEX_TEXTURE_IMAGE_UNITS:   {16},
		glenum.MAX_COMBINED_TEXTURE_IMAGE_UNITS: {maxTextureUnits},
		glenum.MAX_VERTEX_UNIFORM_VECTORS:       {256},
		glenum.MAX_FRAGMENT_UNIFORM_VECTORS:     {224},
		glenum.MAX_VARYING_VECTORS:              {15},
		glenum.ALIASED_LINE_WIDTH_RANGE:         {1, 1},
		glenum.ALIASED_POINT_SIZE_RANGE:         {1, 1024},
		glenum.SUBPIXEL_BITS:                    {4},
		glenum.RED_BITS:                         {8},
		glenum.GREEN_BITS:                       {8},
		glenum.BLUE_BITS:                        {8},
		glenum.ALPHA_BITS:                       {8},
		glenum.DEPTH_BITS:                       {24},
		glenum.STENCIL_BITS:                     {8},
		glenum.SAMPLE_BUFFERS:                   {0},
		glenum.SAMPLES:                          {0},
		glenum.NUM_COMPRESSED_TEXTURE_FORMATS:   {0},
		glenum.NUM_SHADER_BINARY_FORMATS:        {0},
		glenum.SHADER_COMPILER:                  {1},
		glenum.IMPLEMENTATION_COLOR_READ_FORMAT: {glenum.RGBA},
		glenum.IMPLEMENTATION_COLOR_READ_TYPE:   {glenum.UNSIGNED_BYTE},
	}
	g.caps = map[uint32]bool{
		glenum.BLEND:                    false,
		glenum.CULL_FACE:                false,
		glenum.DEPTH_TEST:               false,
		glenum.DITHER:                   true,
		glenum.POLYGON_OFFSET_FILL:      false,
		glenum.SAMPLE_ALPHA_TO_COVERAGE: false,
		glenum.SAMPLE_COVERAGE:          false,
		glenum.SCISSOR_TEST:             false,
		glenum.STENCIL_TEST:             false,
	}
	g.hints = map[uint32]uint32{glenum.GENERATE_MIPMAP_HINT: glenum.DONT_CARE}
	g.nextName = map[string]uint32{}
	g.buffers = map[uint32]*buffer{}
	g.textures = map[uint32]*texture{}
	g.framebuffers = map[uint32]*framebuffer{}
	g.renderbuffers = map[uint32]*renderbuffer{}
	g.vertexArrays = map[uint32]bool{}
	g.shaders = map[uint32]*shader{}
	g.programs = map[uint32]*program{}
	g.boundTextures = map[[2]uint32]uint32{}
	for i := range g.attribs {
		g.attribs[i] = vertexAttrib{size: 4, xtype: glenum.FLOAT, current: [4]float32{0, 0, 0, 1}}
	}
	g.Draws = 0
}

// Init loads the context of the current window, sizing the color buffer,
// viewport and scissor box to its framebuffer. Loading a new window's
// context resets all state, as a new context would have.
func (g *GL) Init() error {
	w := g.app.current
	if w == nil {
		return errors.New("offscreen: no current context")
	}
	g.reset()
	g.width, g.height = w.FramebufferSize()
	g.color = make([]uint8, g.width*g.height*4)
	box := []float64{0, 0, float64(g.width), float64(g.height)}
	g.params[glenum.VIEWPORT] = box
	g.params[glenum.SCISSOR_BOX] = slices.Clone(box)
	g.loaded = true
	return nil
}

// setError records err unless an earlier error is still unreported.
func (g *GL) setError(err uint32) {
	if g.err == glenum.NO_ERROR {
		g.err = err
	}
}

func (g *GL) GetError() uint32 {
	err := g.err
	g.err = glenum.NO_ERROR
	return err
}

func (g *GL) param(pname uint32) float64 {
	if v := g.params[pname]; len(v) > 0 {
		return v[0]
	}
	return 0
}

func (g *GL) setParam(pname uint32, v ...float64) {
	g.params[pname] = v
}

// genNames returns n new names of the given kind. Names start at 1
// and are never reused.
func (g *GL) genNames(kind string, n int) []uint32 {
	if n < 0 {
		g.setError(glenum.INVALID_VALUE)
		return nil
	}
	names := make([]uint32, n)
	for i := range names {
		g.nextName[kind]++
		names[i] = g.nextName[kind]
	}
	return names
}

func (g *GL) Enable(cap uint32)  { g.setCap(cap, true) }
func (g *GL) Disable(cap uint32) { g.setCap(cap, false) }

func (g *GL) setCap(cap uint32, on bool) {
	if _, ok := g.caps[cap]; !ok {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	g.caps[cap] = on
}

func (g *GL) IsEnabled(cap uint32) bool {
	on, ok := g.caps[cap]
	if !ok {
		g.setError(glenum.INVALID_ENUM)
	}
	return on
}

func (g *GL) GetIntegerv(pname uint32, params []int32) {
	if on, ok := g.caps[pname]; ok {
		if len(params) > 0 {
			params[0] = int32(btof(on))
		}
		return
	}
	v, ok := g.params[pname]
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	for i := range min(len(v), len(params)) {
		params[i] = int32(int64(v[i]))
	}
}

func (g *GL) GetFloatv(pname uint32, params []float32) {
	if on, ok := g.caps[pname]; ok {
		if len(params) > 0 {
			params[0] = float32(btof(on))
		}
		return
	}
	v, ok := g.params[pname]
	if !ok {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	for i := range min(len(v), len(params)) {
		params[i] = float32(v[i])
	}
}

func (g *GL) GetString(name uint32) string {
	switch name {
	case glenum.VENDOR:
		return "Cogent Core"
	case glenum.RENDERER:
		return "glscript offscreen"
	case glenum.VERSION:
		return "OpenGL ES 2.0 offscreen"
	case glenum.SHADING_LANGUAGE_VERSION:
		return "OpenGL ES GLSL ES 1.00"
	case glenum.EXTENSIONS:
		return ""
	}
	g.setError(glenum.INVALID_ENUM)
	return ""
}

func (g *GL) Hint(target, mode uint32) {
	if target != glenum.GENERATE_MIPMAP_HINT {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	switch mode {
	case glenum.FASTEST, glenum.NICEST, glenum.DONT_CARE:
		g.hints[target] = mode
		g.setParam(target, float64(mode))
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

func (g *GL) BlendColor(red, green, blue, alpha float32) {
	g.setParam(glenum.BLEND_COLOR, float64(red), float64(green), float64(blue), float64(alpha))
}

func (g *GL) BlendEquation(mode uint32) {
	g.BlendEquationSeparate(mode, mode)
}

func (g *GL) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	if !isBlendEquation(modeRGB) || !isBlendEquation(modeAlpha) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	g.setParam(glenum.BLEND_EQUATION_RGB, float64(modeRGB))
	g.setParam(glenum.BLEND_EQUATION_ALPHA, float64(modeAlpha))
}

func isBlendEquation(mode uint32) bool {
	switch mode {
	case glenum.FUNC_ADD, glenum.FUNC_SUBTRACT, glenum.FUNC_REVERSE_SUBTRACT:
		return true
	}
	return false
}

func (g *GL) BlendFunc(sfactor, dfactor uint32) {
	g.BlendFuncSeparate(sfactor, dfactor, sfactor, dfactor)
}

func (g *GL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	g.setParam(glenum.BLEND_SRC_RGB, float64(srcRGB))
	g.setParam(glenum.BLEND_DST_RGB, float64(dstRGB))
	g.setParam(glenum.BLEND_SRC_ALPHA, float64(srcAlpha))
	g.setParam(glenum.BLEND_DST_ALPHA, float64(dstAlpha))
}

func (g *GL) ClearColor(red, green, blue, alpha float32) {
	g.setParam(glenum.COLOR_CLEAR_VALUE, float64(clamp01(red)), float64(clamp01(green)), float64(clamp01(blue)), float64(clamp01(alpha)))
}

func (g *GL) ClearDepthf(depth float32) {
	g.setParam(glenum.DEPTH_CLEAR_VALUE, float64(clamp01(depth)))
}

func (g *GL) ClearStencil(s int32) {
	g.setParam(glenum.STENCIL_CLEAR_VALUE, float64(s))
}

func (g *GL) ColorMask(red, green, blue, alpha bool) {
	g.setParam(glenum.COLOR_WRITEMASK, btof(red), btof(green), btof(blue), btof(alpha))
}

func (g *GL) CullFace(mode uint32) {
	switch mode {
	case glenum.FRONT, glenum.BACK, glenum.FRONT_AND_BACK:
		g.setParam(glenum.CULL_FACE_MODE, float64(mode))
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

func (g *GL) FrontFace(mode uint32) {
	switch mode {
	case glenum.CW, glenum.CCW:
		g.setParam(glenum.FRONT_FACE, float64(mode))
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

func (g *GL) DepthFunc(fn uint32) {
	if !isCompareFunc(fn) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	g.setParam(glenum.DEPTH_FUNC, float64(fn))
}

func isCompareFunc(fn uint32) bool {
	return fn >= glenum.NEVER && fn <= glenum.ALWAYS
}

func (g *GL) DepthMask(flag bool) {
	g.setParam(glenum.DEPTH_WRITEMASK, btof(flag))
}

func (g *GL) DepthRangef(near, far float32) {
	g.setParam(glenum.DEPTH_RANGE, float64(clamp01(near)), float64(clamp01(far)))
}

func (g *GL) LineWidth(width float32) {
	if width <= 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.setParam(glenum.LINE_WIDTH, float64(width))
}

func (g *GL) PixelStorei(pname uint32, param int32) {
	if pname != glenum.UNPACK_ALIGNMENT && pname != glenum.PACK_ALIGNMENT {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	switch param {
	case 1, 2, 4, 8:
		g.setParam(pname, float64(param))
	default:
		g.setError(glenum.INVALID_VALUE)
	}
}

func (g *GL) PolygonOffset(factor, units float32) {
	g.setParam(glenum.POLYGON_OFFSET_FACTOR, float64(factor))
	g.setParam(glenum.POLYGON_OFFSET_UNITS, float64(units))
}

func (g *GL) SampleCoverage(value float32, invert bool) {
	g.setParam(glenum.SAMPLE_COVERAGE_VALUE, float64(clamp01(value)))
	g.setParam(glenum.SAMPLE_COVERAGE_INVERT, btof(invert))
}

func (g *GL) Scissor(x, y, width, height int32) {
	if width < 0 || height < 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.setParam(glenum.SCISSOR_BOX, float64(x), float64(y), float64(width), float64(height))
}

func (g *GL) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		g.setError(glenum.INVALID_VALUE)
		return
	}
	g.setParam(glenum.VIEWPORT, float64(x), float64(y), float64(width), float64(height))
}

func (g *GL) StencilFunc(fn uint32, ref int32, mask uint32) {
	g.StencilFuncSeparate(glenum.FRONT_AND_BACK, fn, ref, mask)
}

func (g *GL) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	if !isCompareFunc(fn) {
		g.setError(glenum.INVALID_ENUM)
		return
	}
	g.stencilFaces(face, func(back bool) {
		if back {
			g.setParam(glenum.STENCIL_BACK_FUNC, float64(fn))
			g.setParam(glenum.STENCIL_BACK_REF, float64(ref))
			g.setParam(glenum.STENCIL_BACK_VALUE_MASK, float64(mask))
			return
		}
		g.setParam(glenum.STENCIL_FUNC, float64(fn))
		g.setParam(glenum.STENCIL_REF, float64(ref))
		g.setParam(glenum.STENCIL_VALUE_MASK, float64(mask))
	})
}

func (g *GL) StencilMask(mask uint32) {
	g.StencilMaskSeparate(glenum.FRONT_AND_BACK, mask)
}

func (g *GL) StencilMaskSeparate(face, mask uint32) {
	g.stencilFaces(face, func(back bool) {
		if back {
			g.setParam(glenum.STENCIL_BACK_WRITEMASK, float64(mask))
			return
		}
		g.setParam(glenum.STENCIL_WRITEMASK, float64(mask))
	})
}

func (g *GL) StencilOp(fail, zfail, zpass uint32) {
	g.StencilOpSeparate(glenum.FRONT_AND_BACK, fail, zfail, zpass)
}

func (g *GL) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	g.stencilFaces(face, func(back bool) {
		if back {
			g.setParam(glenum.STENCIL_BACK_FAIL, float64(sfail))
			g.setParam(glenum.STENCIL_BACK_PASS_DEPTH_FAIL, float64(dpfail))
			g.setParam(glenum.STENCIL_BACK_PASS_DEPTH_PASS, float64(dppass))
			return
		}
		g.setParam(glenum.STENCIL_FAIL, float64(sfail))
		g.setParam(glenum.STENCIL_PASS_DEPTH_FAIL, float64(dpfail))
		g.setParam(glenum.STENCIL_PASS_DEPTH_PASS, float64(dppass))
	})
}

// stencilFaces calls fn for the front and back faces selected by face.
func (g *GL) stencilFaces(face uint32, fn func(back bool)) {
	switch face {
	case glenum.FRONT:
		fn(false)
	case glenum.BACK:
		fn(true)
	case glenum.FRONT_AND_BACK:
		fn(false)
		fn(true)
	default:
		g.setError(glenum.INVALID_ENUM)
	}
}

func (g *GL) Finish()                {}
func (g *GL) Flush()                 {}
func (g *GL) ReleaseShaderCompiler() {}

func btof(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
