// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the genthruput configuration.
//
// Values come from, in increasing precedence, built-in defaults, an
// optional TOML file and THRUPUT_* environment variables, so that
// THRUPUT_SEARCH_ITERATIONS=200 overrides search_iterations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dx8gles11/perf/harness"
	"github.com/dx8gles11/perf/report"
	"github.com/dx8gles11/perf/tune"
	"github.com/spf13/viper"
)

const (
	// FileName is the configuration file looked up in the root
	// directory when no file is given.
	FileName = "thruput.toml"
	// EnvPrefix prefixes the environment variables that override
	// file values.
	EnvPrefix = "THRUPUT"
)

// Config is the genthruput configuration.
type Config struct {
	// Root is the project root. Relative BuildDir and Report paths
	// are resolved against it.
	Root string `mapstructure:"root"`
	// BuildDir is the working directory of the harness.
	BuildDir string `mapstructure:"build_dir"`
	// Harness is the harness command, relative to BuildDir unless
	// absolute.
	Harness string `mapstructure:"harness"`
	// Fixtures is the fixture directory passed to the harness.
	Fixtures string `mapstructure:"fixtures"`

	SearchIterations  int `mapstructure:"search_iterations"`
	ConfirmIterations int `mapstructure:"confirm_iterations"`

	Modes Modes `mapstructure:"modes"`

	// Report is the markdown performance report path.
	Report string `mapstructure:"report"`
	// Chart is an optional image of the search; empty for none.
	Chart string `mapstructure:"chart"`
}

// Modes lists the modes to search for each pipeline stage.
type Modes struct {
	Decode   []int `mapstructure:"decode"`
	Prepare  []int `mapstructure:"prepare"`
	Dispatch []int `mapstructure:"dispatch"`
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// File is an explicit configuration file. It must exist.
	File string
	// Root overrides the default project root. The root may still be
	// changed by the file or the environment.
	Root string
}

// DefaultRoot returns the parent of the directory holding the running
// executable, which is the project root when genthruput is installed
// in <root>/bin. It falls back to the current directory.
func DefaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// Load reads the configuration. It returns the configuration and the
// path of the file it read, or "" if it used no file.
func Load(opts LoadOptions) (*Config, string, error) {
	root := opts.Root
	if root == "" {
		root = DefaultRoot()
	}

	v := viper.New()
	v.SetDefault("root", root)
	v.SetDefault("build_dir", "")
	v.SetDefault("harness", harness.DefaultPath)
	v.SetDefault("fixtures", harness.DefaultFixtures)
	v.SetDefault("search_iterations", tune.DefaultIters)
	v.SetDefault("confirm_iterations", report.DefaultIters)
	v.SetDefault("modes.decode", slices.Clone(tune.DefaultSpace.Decode))
	v.SetDefault("modes.prepare", slices.Clone(tune.DefaultSpace.Prepare))
	v.SetDefault("modes.dispatch", slices.Clone(tune.DefaultSpace.Dispatch))
	v.SetDefault("report", "")
	v.SetDefault("chart", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := opts.File
	if path == "" {
		if p := filepath.Join(root, FileName); fileExists(p) {
			path = p
		}
	} else if !fileExists(path) {
		return nil, "", fmt.Errorf("config file not found: %s", path)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parsing config: %w", err)
	}
	cfg.resolve()
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, path, nil
}

// resolve fills in paths derived from Root.
func (c *Config) resolve() {
	if c.BuildDir == "" {
		c.BuildDir = "build"
	}
	if c.Report == "" {
		c.Report = "THRUPUT.md"
	}
	if !filepath.IsAbs(c.BuildDir) {
		c.BuildDir = filepath.Join(c.Root, c.BuildDir)
	}
	if !filepath.IsAbs(c.Report) {
		c.Report = filepath.Join(c.Root, c.Report)
	}
}

// Validate reports the first invalid value in c.
func (c *Config) Validate() error {
	if c.Harness == "" {
		return errors.New("invalid config: harness: empty command")
	}
	if c.SearchIterations <= 0 {
		return fmt.Errorf("invalid config: search_iterations: %d is not positive", c.SearchIterations)
	}
	if c.ConfirmIterations <= 0 {
		return fmt.Errorf("invalid config: confirm_iterations: %d is not positive", c.ConfirmIterations)
	}
	if c.Chart != "" && !tune.IsChartPath(c.Chart) {
		return fmt.Errorf("invalid config: chart: unsupported image format %q", filepath.Ext(c.Chart))
	}
	for _, m := range []struct {
		key   string
		modes []int
	}{
		{"modes.decode", c.Modes.Decode},
		{"modes.prepare", c.Modes.Prepare},
		{"modes.dispatch", c.Modes.Dispatch},
	} {
		if len(m.modes) == 0 {
			return fmt.Errorf("invalid config: %s: no modes", m.key)
		}
		for _, mode := range m.modes {
			if mode <= 0 {
				return fmt.Errorf("invalid config: %s: mode %d is not positive", m.key, mode)
			}
		}
	}
	return nil
}

// Space returns the configuration space to search.
func (c *Config) Space() tune.Space {
	return tune.Space{
		Decode:   c.Modes.Decode,
		Prepare:  c.Modes.Prepare,
		Dispatch: c.Modes.Dispatch,
	}
}

// Runner returns a harness runner for c.
func (c *Config) Runner() *harness.Cmd {
	return &harness.Cmd{Path: c.Harness, Dir: c.BuildDir, Fixtures: c.Fixtures}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
