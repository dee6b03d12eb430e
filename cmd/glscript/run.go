// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/glscript/base/errors"
	"cogentcore.org/glscript/binding"
	"cogentcore.org/glscript/driver"
	"cogentcore.org/glscript/script/gohost"
	"cogentcore.org/glscript/script/jshost"
	"github.com/cogentcore/yaegi/interp"
	"github.com/dop251/goja"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "window and context settings (.toml or .yaml)",
	}
	watchFlag = &cli.BoolFlag{
		Name:  "watch",
		Usage: "rerun the script when it changes",
	}
)

var commandRun = &cli.Command{
	Name:      "run",
	Usage:     "Runs a JavaScript (.js) or Go (.go) script",
	ArgsUsage: "<script>",
	Flags:     append([]cli.Flag{configFlag, watchFlag}, logFlags...),
	Before:    setLevel,
	Action:    run,
}

var commandDemo = &cli.Command{
	Name:   "demo",
	Usage:  "Runs the spinning triangle demo",
	Flags:  []cli.Flag{configFlag},
	Action: demo,
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("run: missing script file")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool(watchFlag.Name) {
		return watch(c, cfg, path)
	}
	return runFile(c, cfg, path)
}

func demo(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	bc := newContext(cfg)
	defer closeWindow(bc)
	return jshost.New(bc, c.App.Writer).RunDemo(c.Context)
}

func loadConfig(c *cli.Context) (binding.Config, error) {
	if f := c.String(configFlag.Name); f != "" {
		return binding.OpenConfig(f)
	}
	return binding.DefaultConfig(), nil
}

// newContext returns a context on the platform driver.
func newContext(cfg binding.Config) *binding.Context {
	bc := binding.New(driver.Default())
	bc.Config = cfg
	return bc
}

// closeWindow closes a window that a script left open.
func closeWindow(bc *binding.Context) {
	if bc.State() == binding.Windowed {
		errors.Log(bc.CloseWindow())
	}
}

// runFile runs a script on the host for its file extension.
func runFile(c *cli.Context, cfg binding.Config, path string) error {
	bc := newContext(cfg)
	defer closeWindow(bc)
	slog.Info("running script", "path", path)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".js":
		return jshost.New(bc, c.App.Writer).RunFile(c.Context, path)
	case ".go":
		h := gohost.New(bc, interp.Options{Stdout: c.App.Writer, Stderr: c.App.ErrWriter})
		return h.RunFile(c.Context, path)
	default:
		return fmt.Errorf("run %s: unknown script type %q", path, ext)
	}
}

// watch runs the script, and runs it again each time the file is
// written, stopping a run that is still going.
func watch(c *cli.Context, cfg binding.Config, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	abs := errors.Log1(filepath.Abs(path))
	parent := c.Context
	for {
		ctx, cancel := context.WithCancel(parent)
		changed := make(chan struct{})
		go func() {
			defer close(changed)
			defer cancel()
			waitForChange(ctx, w, abs)
		}()
		c.Context = ctx
		err := runFile(c, cfg, path)
		c.Context = parent
		if err != nil && !stopped(err) {
			jshost.PrintError(c.App.ErrWriter, err)
		}
		<-changed
		if parent.Err() != nil {
			return nil
		}
		slog.Info("script changed, rerunning", "path", path)
	}
}

// waitForChange returns when the file at path is written or created,
// or when ctx is done.
func waitForChange(ctx context.Context, w *fsnotify.Watcher, path string) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			name, _ := filepath.Abs(ev.Name)
			if name == path && ev.Has(fsnotify.Write|fsnotify.Create) {
				return
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			slog.Warn("watching script", "err", err)
		}
	}
}

// stopped returns whether err reports a run cancelled by [watch].
func stopped(err error) bool {
	var ie *goja.InterruptedError
	return errors.Is(err, context.Canceled) || errors.As(err, &ie)
}
