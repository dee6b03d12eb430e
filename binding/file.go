// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"bufio"
	"os"
	"strings"
)

// FileNotOpened is returned by [ReadFileCompat] when the file cannot
// be opened.
const FileNotOpened = "FILE COULD NOT BE OPENED"

// ReadFile returns the lines of a text file concatenated without their
// line terminators, as used to load shader sources.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	defer f.Close()
	var sb strings.Builder
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		sb.WriteString(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return sb.String(), &FileError{Path: path, Err: err}
	}
	return sb.String(), nil
}

// ReadFileCompat is [ReadFile] returning [FileNotOpened] in place of an
// error, for scripts that compare against it.
func ReadFileCompat(path string) string {
	s, err := ReadFile(path)
	if err != nil {
		return FileNotOpened
	}
	return s
}
