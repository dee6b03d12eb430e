// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jshost

import (
	"fmt"
	"io"

	"cogentcore.org/glscript/base/errors"
	"github.com/dop251/goja"
	"github.com/fatih/color"
)

// ErrorColor formats script errors.
var ErrorColor = color.New(color.FgHiRed).SprintfFunc()

// PrintError writes err to w in [ErrorColor]. JavaScript exceptions
// are written with their stack trace.
func PrintError(w io.Writer, err error) {
	failure := err.Error()
	var ex *goja.Exception
	if errors.As(err, &ex) {
		failure = ex.String()
	}
	fmt.Fprintln(w, ErrorColor("%s", failure))
}
