// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness runs the pipeline benchmark harness.
//
// The harness is an external program invoked as
//
//	<harness> <fixture-dir> <iterations> -stage1 <d> -stage2 <p> -stage3 <t>
//
// where d, p and t select the decode, prepare and dispatch modes of the
// three pipeline stages. It prints throughput lines in the format read
// by package thruput.
package harness

import (
	"fmt"
	"strconv"
)

// A Config selects the operating mode of each pipeline stage.
type Config struct {
	Decode, Prepare, Dispatch int
}

func (c Config) String() string {
	return fmt.Sprintf("decode=%d prepare=%d dispatch=%d", c.Decode, c.Prepare, c.Dispatch)
}

// A Result is the outcome of one harness invocation.
//
// A failed invocation is not an error for the caller: Stdout holds
// whatever the harness printed before failing, and a missing aggregate
// line is how failure shows up downstream.
type Result struct {
	Stdout []byte
	Stderr []byte

	// ExitCode is the exit status of the harness, or -1 if it did
	// not start or was killed by a signal.
	ExitCode int

	// Err is set if the harness could not be started or waited for.
	Err error
}

// Failed reports whether the run did not exit cleanly.
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// A Runner runs the harness under a configuration for the given number
// of iterations. Run blocks until the harness exits.
type Runner interface {
	Run(cfg Config, iters int) Result
}

// RunnerFunc adapts an ordinary function to a Runner.
type RunnerFunc func(cfg Config, iters int) Result

func (f RunnerFunc) Run(cfg Config, iters int) Result {
	return f(cfg, iters)
}

// Args returns the harness argument vector, excluding the program
// name.
func Args(fixtures string, cfg Config, iters int) []string {
	return []string{
		fixtures,
		strconv.Itoa(iters),
		"-stage1", strconv.Itoa(cfg.Decode),
		"-stage2", strconv.Itoa(cfg.Prepare),
		"-stage3", strconv.Itoa(cfg.Dispatch),
	}
}
