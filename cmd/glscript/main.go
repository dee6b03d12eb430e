// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glscript runs graphics scripts written in JavaScript or Go.
package main

import (
	"os"

	"cogentcore.org/glscript/logx"
	"cogentcore.org/glscript/script/jshost"
	"github.com/urfave/cli/v2"
)

var (
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log informational messages",
	}
	veryVerboseFlag = &cli.BoolFlag{
		Name:  "vv",
		Usage: "log debugging messages",
	}
	quietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "only log errors",
	}
	logFlags = []cli.Flag{verboseFlag, veryVerboseFlag, quietFlag}
)

func newApp() *cli.App {
	return &cli.App{
		Name:   "glscript",
		Usage:  "run OpenGL scripts written in JavaScript or Go",
		Flags:  logFlags,
		Before: setLevel,
		Commands: []*cli.Command{
			commandRun,
			commandDemo,
			commandFlags,
			commandKeys,
		},
	}
}

// setLevel sets [logx.UserLevel] from the verbosity flags.
func setLevel(c *cli.Context) error {
	logx.UserLevel = logx.LevelFromFlags(c.Bool(veryVerboseFlag.Name), c.Bool(verboseFlag.Name), c.Bool(quietFlag.Name))
	return nil
}

func main() {
	logx.SetDefaultLogger()
	if err := newApp().Run(os.Args); err != nil {
		jshost.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
