// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex loads texture image files, saves framebuffer captures,
// and converts images to and from the tightly packed pixel rows that
// texture uploads and pixel reads use.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// encoders are the writers [Save] picks from by file extension.
// webp decodes through [Open] but has no encoder.
var encoders = map[string]func(w io.Writer, im image.Image) error{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".bmp":  bmp.Encode,
}

func encodeJPEG(w io.Writer, im image.Image) error {
	return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
}

func encodeGIF(w io.Writer, im image.Image) error {
	return gif.Encode(w, im, nil)
}

func encodeTIFF(w io.Writer, im image.Image) error {
	return tiff.Encode(w, im, nil)
}

// SaveExts returns the file extensions that [Save] accepts, sorted.
func SaveExts() []string {
	exts := make([]string, 0, len(encoders))
	for ext := range encoders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Open decodes an image file, whatever its format. It returns the
// format name the decoder registered, such as "png" or "webp".
func Open(filename string) (image.Image, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(bufio.NewReader(f))
}

// Save writes im to filename in the format that the file extension
// names, case-insensitively.
func Save(im image.Image, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("imagex.Save %s: cannot encode %q images, use one of %s", filename, ext, strings.Join(SaveExts(), " "))
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := enc(bw, im); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
