// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"slices"

	"cogentcore.org/glscript/driver"
	"cogentcore.org/glscript/glenum"
	"cogentcore.org/glscript/keys"
	"github.com/urfave/cli/v2"
)

var commandFlags = &cli.Command{
	Name:      "flags",
	Usage:     "Prints the GL enum names and values",
	ArgsUsage: "[prefix]",
	Action:    printFlags,
}

var commandKeys = &cli.Command{
	Name:   "keys",
	Usage:  "Prints the key names of the current keyboard layout",
	Action: printKeys,
}

func printFlags(c *cli.Context) error {
	for _, name := range glenum.Default.Names(c.Args().First()) {
		fmt.Fprintf(c.App.Writer, "%-48s 0x%04X\n", name, glenum.Default.Lookup(name))
	}
	return nil
}

func printKeys(c *cli.Context) error {
	tk, _ := driver.Default()
	if err := tk.Init(); err != nil {
		return err
	}
	defer tk.Terminate()

	var table keys.Table
	table.Register(keys.NamerFunc(tk.KeyName))
	type key struct {
		name string
		code int
	}
	var all []key
	table.Each(func(name string, code int) {
		all = append(all, key{name, code})
	})
	slices.SortFunc(all, func(a, b key) int {
		return cmp.Compare(a.code, b.code)
	})
	for _, k := range all {
		fmt.Fprintf(c.App.Writer, "%-12s %d\n", k.name, k.code)
	}
	return nil
}
