// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	im.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	im.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	im.Set(2, 0, color.NRGBA{0, 0, 255, 255})
	im.Set(0, 1, color.NRGBA{10, 20, 30, 255})
	im.Set(1, 1, color.NRGBA{40, 50, 60, 255})
	im.Set(2, 1, color.NRGBA{70, 80, 90, 255})
	return im
}

var testRGB = []byte{
	255, 0, 0, 0, 255, 0, 0, 0, 255,
	10, 20, 30, 40, 50, 60, 70, 80, 90,
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff"}, SaveExts())
	for _, name := range []string{"a.PNG", "a.jpg", "a.gif"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(testImage(), fn))
		im, _, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 3, 2), im.Bounds())
	}
	_, format, err := Open(filepath.Join(dir, "a.PNG"))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	err = Save(testImage(), filepath.Join(dir, "a.xcf"))
	assert.ErrorContains(t, err, "cannot encode")
	assert.NoFileExists(t, filepath.Join(dir, "a.xcf"))
}

func TestDecodeRGB(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "a.bmp", "a.tiff"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(dir, name)
			require.NoError(t, Save(testImage(), fn))
			pix, w, h, err := DecodeRGB(fn)
			require.NoError(t, err)
			assert.Equal(t, 3, w)
			assert.Equal(t, 2, h)
			assert.Equal(t, testRGB, pix)
		})
	}
}

func TestDecodeRGBErrors(t *testing.T) {
	dir := t.TempDir()
	_, _, _, err := DecodeRGB(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fn := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(fn, []byte("not an image"), 0666))
	_, _, _, err = DecodeRGB(fn)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestRGBOffsetBounds(t *testing.T) {
	im := testImage().SubImage(image.Rect(1, 1, 3, 2))
	pix, w, h := RGB(im)
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, []byte{40, 50, 60, 70, 80, 90}, pix)
}

func TestFromPixels(t *testing.T) {
	// two rows of one pixel, padded to a stride of 8
	pix := []byte{1, 2, 3, 4, 0, 0, 0, 0, 5, 6, 7, 8}
	im, err := FromPixels(pix, 1, 2, 8, true)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{5, 6, 7, 8}, im.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, im.RGBAAt(0, 1))

	im, err = FromPixels(pix, 1, 2, 8, false)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, im.RGBAAt(0, 0))

	_, err = FromPixels(pix[:8], 1, 2, 8, false)
	assert.Error(t, err)
	_, err = FromPixels(pix, 2, 1, 4, false)
	assert.Error(t, err)
}
