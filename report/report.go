// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report produces the throughput report for the best pipeline
// configuration.
//
// The report comes from one confirmatory harness run at a much higher
// iteration count than the search used. It lists the throughput of
// every shader and the aggregate, and is written as markdown:
//
//	**Host**: AMD EPYC 7B13 (x86_64, 8 CPUs)
//	**Best configuration**: decode=2 prepare=1 dispatch=3
//
//	| Shader | Cmds/s |
//	|-------|-------:|
//	| mov_tex | 1523400.12 |
//	| **Overall** | 1203311.07 |
package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dx8gles11/perf/harness"
	"github.com/dx8gles11/perf/thruput"
)

// DefaultIters is the iteration count of the confirmatory run, 1000
// times the search iteration count.
const DefaultIters = 1000000

// A Thruput is the result of a confirmatory run.
type Thruput struct {
	Host   string
	Config harness.Config
	Iters  int

	// Rows are the per-shader results in harness output order.
	Rows []thruput.Row

	// Overall is the aggregate result, or nil if the harness did
	// not print one.
	Overall *thruput.Row

	// Run is the raw harness result, kept for diagnostics. It is
	// not part of the rendered report.
	Run harness.Result
}

// Confirm runs the harness once under cfg with iters iterations and
// collects the per-shader and aggregate throughput.
func Confirm(r harness.Runner, cfg harness.Config, iters int, host string) *Thruput {
	res := r.Run(cfg, iters)
	t := &Thruput{
		Host:   host,
		Config: cfg,
		Iters:  iters,
		Rows:   thruput.Rows(res.Stdout),
		Run:    res,
	}
	if row, ok := thruput.FindOverall(res.Stdout); ok {
		t.Overall = &row
	}
	return t
}

// Markdown renders t. The output depends only on the fields of t other
// than Run, so identical harness output renders identically.
func (t *Thruput) Markdown() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "**Host**: %s\n", t.Host)
	fmt.Fprintf(&buf, "**Best configuration**: %s\n", t.Config)
	buf.WriteString("\n")
	buf.WriteString("| Shader | Cmds/s |\n")
	buf.WriteString("|-------|-------:|\n")
	for _, row := range t.Rows {
		fmt.Fprintf(&buf, "| %s | %s |\n", row.Name, row.Text)
	}
	if t.Overall != nil {
		fmt.Fprintf(&buf, "| **Overall** | %s |\n", t.Overall.Text)
	}
	return buf.Bytes()
}

// WriteFile writes the markdown report to path, replacing any existing
// file.
func (t *Thruput) WriteFile(path string) error {
	if err := os.WriteFile(path, t.Markdown(), 0o666); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
