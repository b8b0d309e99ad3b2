// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"bytes"
	"errors"
	"os/exec"
)

// Default locations of the harness, relative to the build directory.
const (
	DefaultPath     = "./bench_tests"
	DefaultFixtures = "../tests/fixtures"
)

// Cmd runs the harness as a subprocess.
type Cmd struct {
	// Path is the harness executable. A relative Path is resolved
	// against Dir. If empty, DefaultPath is used.
	Path string

	// Dir is the working directory of the harness, normally the
	// build output directory.
	Dir string

	// Fixtures is the fixture directory passed as the first
	// argument. If empty, DefaultFixtures is used.
	Fixtures string
}

var _ Runner = (*Cmd)(nil)

// Run runs the harness and collects its output. It never returns an
// error; see Result.
func (c *Cmd) Run(cfg Config, iters int) Result {
	path, fixtures := c.Path, c.Fixtures
	if path == "" {
		path = DefaultPath
	}
	if fixtures == "" {
		fixtures = DefaultFixtures
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, Args(fixtures, cfg, iters)...)
	cmd.Dir = c.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{ExitCode: -1}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.Err = err
	}
	res.Stdout = stdout.Bytes()
	res.Stderr = stderr.Bytes()
	return res
}
