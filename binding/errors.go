// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by graphics and input calls made
	// before CreateWindow or after CloseWindow.
	ErrNotInitialized = errors.New("no open window")

	// ErrContextBusy is returned by CreateWindow when another Context
	// already has an open window in this process.
	ErrContextBusy = errors.New("another context has an open window")

	// ErrWindowCreationFailed is returned by CreateWindow, wrapping the
	// toolkit error.
	ErrWindowCreationFailed = errors.New("window creation failed")

	// ErrImageDecodeFailed is returned by TexImage2DFile, wrapping the
	// decoder error.
	ErrImageDecodeFailed = errors.New("image decode failed")
)

// FileError is returned by [ReadFile] when a file cannot be opened.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
