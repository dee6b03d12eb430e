// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// AsRGBA returns the image as an [*image.RGBA] with its bounds moved to
// the origin, converting it if needed.
func AsRGBA(im image.Image) *image.RGBA {
	if rgba, ok := im.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := im.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), im, b.Min, draw.Src)
	return rgba
}

// RGB returns the pixels of the image as tightly packed 8-bit RGB rows,
// top row first, dropping alpha.
func RGB(im image.Image) (pix []byte, width, height int) {
	rgba := AsRGBA(im)
	width, height = rgba.Bounds().Dx(), rgba.Bounds().Dy()
	pix = make([]byte, 0, width*height*3)
	for y := range height {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		for x := 0; x < len(row); x += 4 {
			pix = append(pix, row[x], row[x+1], row[x+2])
		}
	}
	return
}

// DecodeRGB opens the image file and returns its pixels as tightly
// packed 8-bit RGB rows, top row first.
func DecodeRGB(filename string) (pix []byte, width, height int, err error) {
	im, _, err := Open(filename)
	if err != nil {
		return nil, 0, 0, err
	}
	pix, width, height = RGB(im)
	return
}

// FromPixels returns an image of the given size from 8-bit RGBA rows
// that are stride bytes apart, as read back from a framebuffer. When
// bottomUp is set the first row is the bottom of the image.
func FromPixels(pix []byte, width, height, stride int, bottomUp bool) (*image.RGBA, error) {
	if width < 0 || height < 0 || stride < width*4 {
		return nil, fmt.Errorf("imagex.FromPixels: invalid size %dx%d with stride %d", width, height, stride)
	}
	if height > 0 && len(pix) < (height-1)*stride+width*4 {
		return nil, fmt.Errorf("imagex.FromPixels: need %d bytes, got %d", (height-1)*stride+width*4, len(pix))
	}
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		src := y
		if bottomUp {
			src = height - 1 - y
		}
		copy(im.Pix[y*im.Stride:y*im.Stride+width*4], pix[src*stride:src*stride+width*4])
	}
	return im, nil
}
