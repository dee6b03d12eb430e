// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"cogentcore.org/glscript/marshal"
)

// scratchLen is the minimum number of elements of a query result
// buffer, so that a query writing more values than the caller asked
// for stays within the buffer.
const scratchLen = 256

func (c *Context) ActiveTexture(texture uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ActiveTexture(texture)
	return nil
}

func (c *Context) BlendColor(red, green, blue, alpha float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BlendColor(red, green, blue, alpha)
	return nil
}

func (c *Context) BlendEquation(mode uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BlendEquation(mode)
	return nil
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BlendEquationSeparate(modeRGB, modeAlpha)
	return nil
}

func (c *Context) BlendFunc(sfactor, dfactor uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BlendFunc(sfactor, dfactor)
	return nil
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
	return nil
}

func (c *Context) Clear(mask uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Clear(mask)
	return nil
}

func (c *Context) ClearColor(red, green, blue, alpha float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ClearColor(red, green, blue, alpha)
	return nil
}

func (c *Context) ClearDepthf(depth float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ClearDepthf(depth)
	return nil
}

func (c *Context) ClearStencil(s int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ClearStencil(s)
	return nil
}

func (c *Context) ColorMask(red, green, blue, alpha bool) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.ColorMask(red, green, blue, alpha)
	return nil
}

func (c *Context) CullFace(mode uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.CullFace(mode)
	return nil
}

func (c *Context) DepthFunc(fn uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DepthFunc(fn)
	return nil
}

func (c *Context) DepthMask(flag bool) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DepthMask(flag)
	return nil
}

func (c *Context) DepthRangef(near, far float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DepthRangef(near, far)
	return nil
}

func (c *Context) Disable(cap uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Disable(cap)
	return nil
}

func (c *Context) Enable(cap uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Enable(cap)
	return nil
}

func (c *Context) Finish() error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Finish()
	return nil
}

func (c *Context) Flush() error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Flush()
	return nil
}

func (c *Context) FrontFace(mode uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.FrontFace(mode)
	return nil
}

func (c *Context) Hint(target, mode uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Hint(target, mode)
	return nil
}

func (c *Context) LineWidth(width float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.LineWidth(width)
	return nil
}

func (c *Context) PixelStorei(pname uint32, param int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.PixelStorei(pname, param)
	return nil
}

func (c *Context) PolygonOffset(factor, units float32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.PolygonOffset(factor, units)
	return nil
}

func (c *Context) SampleCoverage(value float32, invert bool) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.SampleCoverage(value, invert)
	return nil
}

func (c *Context) Scissor(x, y, width, height int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Scissor(x, y, width, height)
	return nil
}

func (c *Context) StencilFunc(fn uint32, ref int32, mask uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.StencilFunc(fn, ref, mask)
	return nil
}

func (c *Context) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.StencilFuncSeparate(face, fn, ref, mask)
	return nil
}

func (c *Context) StencilMask(mask uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.StencilMask(mask)
	return nil
}

func (c *Context) StencilMaskSeparate(face, mask uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.StencilMaskSeparate(face, mask)
	return nil
}

func (c *Context) StencilOp(fail, zfail, zpass uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.StencilOp(fail, zfail, zpass)
	return nil
}

func (c *Context) StencilOpSeparate(face, sfail, dpfail, dppass uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.StencilOpSeparate(face, sfail, dpfail, dppass)
	return nil
}

func (c *Context) Viewport(x, y, width, height int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.Viewport(x, y, width, height)
	return nil
}

////////////////////////////////////////////////////////
//  Drawing

func (c *Context) DrawArrays(mode uint32, first, count int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.DrawArrays(mode, first, count)
	return nil
}

// DrawElements draws count indices of the given type from the bound
// element array buffer, starting offset indices into it.
func (c *Context) DrawElements(mode uint32, count int32, xtype uint32, offset int) error {
	if err := c.check(); err != nil {
		return err
	}
	et, _ := marshal.ElementTypeOf(xtype)
	c.gl.DrawElements(mode, count, xtype, offset*et.Size())
	return nil
}
