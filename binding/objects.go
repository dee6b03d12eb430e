// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"fmt"

	"cogentcore.org/glscript/marshal"
)

// genCount returns an error for a negative object count.
func genCount(n int) error {
	if n < 0 {
		return fmt.Errorf("cannot generate %d names", n)
	}
	return nil
}

// GenBuffers returns n new buffer names.
func (c *Context) GenBuffers(n int) ([]uint32, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := genCount(n); err != nil {
		return nil, err
	}
	return c.gl.GenBuffers(n), nil
}

// GenTextures returns n new texture names.
func (c *Context) GenTextures(n int) ([]uint32, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := genCount(n); err != nil {
		return nil, err
	}
	return c.gl.GenTextures(n), nil
}

// GenFramebuffers returns n new framebuffer names.
func (c *Context) GenFramebuffers(n int) ([]uint32, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := genCount(n); err != nil {
		return nil, err
	}
	return c.gl.GenFramebuffers(n), nil
}

// GenRenderbuffers returns n new renderbuffer names.
func (c *Context) GenRenderbuffers(n int) ([]uint32, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := genCount(n); err != nil {
		return nil, err
	}
	return c.gl.GenRenderbuffers(n), nil
}

// GenVertexArrays returns n new vertex array names.
func (c *Context) GenVertexArrays(n int) ([]uint32, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := genCount(n); err != nil {
		return nil, err
	}
	return c.gl.GenVertexArrays(n), nil
}

// DeleteBuffers deletes the first n of the given buffers.
func (c *Context) DeleteBuffers(n int, buffers []uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := marshal.Check("buffers", buffers, n); err != nil {
		return err
	}
	c.gl.DeleteBuffers(buffers[:max(n, 0)])
	return nil
}

// DeleteTextures deletes the first n of the given textures.
func (c *Context) DeleteTextures(n int, textures []uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := marshal.Check("textures", textures, n); err != nil {
		return err
	}
	c.gl.DeleteTextures(textures[:max(n, 0)])
	return nil
}

// DeleteFramebuffers deletes the first n of the given framebuffers.
func (c *Context) DeleteFramebuffers(n int, framebuffers []uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := marshal.Check("framebuffers", framebuffers, n); err != nil {
		return err
	}
	c.gl.DeleteFramebuffers(framebuffers[:max(n, 0)])
	return nil
}

// DeleteRenderbuffers deletes the first n of the given renderbuffers.
func (c *Context) DeleteRenderbuffers(n int, renderbuffers []uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := marshal.Check("renderbuffers", renderbuffers, n); err != nil {
		return err
	}
	c.gl.DeleteRenderbuffers(renderbuffers[:max(n, 0)])
	return nil
}

// DeleteVertexArrays deletes the first n of the given vertex arrays.
func (c *Context) DeleteVertexArrays(n int, arrays []uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := marshal.Check("vertex arrays", arrays, n); err != nil {
		return err
	}
	c.gl.DeleteVertexArrays(arrays[:max(n, 0)])
	return nil
}

func (c *Context) BindBuffer(target, buffer uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BindBuffer(target, buffer)
	return nil
}

func (c *Context) BindFramebuffer(target, framebuffer uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BindFramebuffer(target, framebuffer)
	return nil
}

func (c *Context) BindRenderbuffer(target, renderbuffer uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BindRenderbuffer(target, renderbuffer)
	return nil
}

func (c *Context) BindTexture(target, texture uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BindTexture(target, texture)
	return nil
}

func (c *Context) BindVertexArray(array uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.BindVertexArray(array)
	return nil
}

func (c *Context) CheckFramebufferStatus(target uint32) (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return c.gl.CheckFramebufferStatus(target), nil
}

func (c *Context) FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer)
	return nil
}

func (c *Context) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
	return nil
}

func (c *Context) GenerateMipmap(target uint32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.GenerateMipmap(target)
	return nil
}

func (c *Context) RenderbufferStorage(target, internalformat uint32, width, height int32) error {
	if err := c.check(); err != nil {
		return err
	}
	c.gl.RenderbufferStorage(target, internalformat, width, height)
	return nil
}

func (c *Context) IsBuffer(buffer uint32) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.gl.IsBuffer(buffer), nil
}

func (c *Context) IsEnabled(cap uint32) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.gl.IsEnabled(cap), nil
}

func (c *Context) IsFramebuffer(framebuffer uint32) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.gl.IsFramebuffer(framebuffer), nil
}

func (c *Context) IsProgram(program uint32) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.gl.IsProgram(program), nil
}

func (c *Context) IsRenderbuffer(renderbuffer uint32) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.gl.IsRenderbuffer(renderbuffer), nil
}

func (c *Context) IsShader(shader uint32) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.gl.IsShader(shader), nil
}

func (c *Context) IsTexture(texture uint32) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.gl.IsTexture(texture), nil
}
