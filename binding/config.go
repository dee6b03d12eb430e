// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/glscript/base/iox"
	"cogentcore.org/glscript/system"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a [Context] uses to create its window.
type Config struct {

	// Width, Height and Title are the defaults scripts get when they
	// create a window with a zero size or an empty title.
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`

	// Context are the requested graphics context properties.
	Context system.ContextHints `toml:"context" yaml:"context"`

	// SwapInterval is the number of screen updates to wait for before
	// swapping buffers; 1 locks Flip to vsync.
	SwapInterval int `toml:"swap-interval" yaml:"swap-interval"`

	// EscapeCloses requests a close when the escape key is pressed.
	EscapeCloses bool `toml:"escape-closes" yaml:"escape-closes"`
}

// DefaultConfig returns the default settings: a 640x480 window with an
// OpenGL 4.1 core context, locked to vsync, that closes on escape.
func DefaultConfig() Config {
	return Config{
		Width:  640,
		Height: 480,
		Title:  "glscript",
		Context: system.ContextHints{
			Major: 4,
			Minor: 1,
			Core:  true,
		},
		SwapInterval: 1,
		EscapeCloses: true,
	}
}

var (
	tomlDecoder = iox.NewDecoderFunc(toml.NewDecoder)
	yamlDecoder = iox.NewDecoderFunc(yaml.NewDecoder)
)

// OpenConfig reads a config file over the defaults, choosing TOML or
// YAML by the file extension.
func OpenConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	var dec iox.DecoderFunc
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		dec = tomlDecoder
	case ".yaml", ".yml":
		dec = yamlDecoder
	default:
		return cfg, fmt.Errorf("config file %q: unknown format", filename)
	}
	if err := iox.Open(&cfg, filename, dec); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", filename, err)
	}
	return cfg, nil
}
