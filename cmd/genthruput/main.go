// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Genthruput finds the fastest pipeline configuration of the benchmark
// harness and writes a throughput report for it.
//
// Usage:
//
//	genthruput [--config file] [--chart image] [-v]
//
// Genthruput runs the harness once for every configuration of the
// decode, prepare and dispatch stages at a low iteration count and
// keeps the one with the highest aggregate throughput. It then runs
// that configuration again at a high iteration count and writes the
// per-shader results to THRUPUT.md in the project root.
//
// The project root defaults to the parent of the directory holding
// genthruput. Settings are read from <root>/thruput.toml, or from the
// file given by --config, and may be overridden by THRUPUT_*
// environment variables:
//
//	root = "/src/engine"
//	build_dir = "build"            # harness working directory
//	harness = "./bench_tests"
//	fixtures = "../tests/fixtures"
//	search_iterations = 1000
//	confirm_iterations = 1000000
//	report = "THRUPUT.md"
//	chart = ""                     # optional image of the search
//
//	[modes]
//	decode = [1, 2, 3]
//	prepare = [1, 2, 3]
//	dispatch = [1, 2, 3]
//
// A harness run that fails counts as zero throughput. If every run
// fails, the report is written for decode=1 prepare=1 dispatch=1.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dx8gles11/perf/benchunit"
	"github.com/dx8gles11/perf/harness"
	"github.com/dx8gles11/perf/hostinfo"
	"github.com/dx8gles11/perf/internal/config"
	"github.com/dx8gles11/perf/internal/texttab"
	"github.com/dx8gles11/perf/report"
	"github.com/dx8gles11/perf/tune"
	"github.com/spf13/cobra"
)

// describeHost is replaced in tests.
var describeHost = hostinfo.Describe

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "genthruput: %v\n", err)
		return 2
	}
	return 0
}

// exitError carries a process exit status out of RunE. The failure
// has already been reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type options struct {
	configFile string
	chart      string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "genthruput",
		Short:         "Search pipeline configurations and report the fastest",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(stderr, log.Options{Prefix: "genthruput"})
			if opts.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			return generate(opts, stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "read settings from TOML `file`")
	f.StringVar(&opts.chart, "chart", "", "save a chart of the search to `image` (.png, .svg, .pdf)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log harness diagnostics")
	return cmd
}

func generate(opts options, stdout io.Writer, logger *log.Logger) error {
	cfg, file, err := config.Load(config.LoadOptions{File: opts.configFile})
	if err != nil {
		logger.Error("loading configuration", "err", err)
		return &exitError{1}
	}
	if file != "" {
		logger.Debug("loaded configuration", "file", file)
	}
	if opts.chart != "" {
		cfg.Chart = opts.chart
		if err := cfg.Validate(); err != nil {
			logger.Error("checking --chart", "err", err)
			return &exitError{1}
		}
	}

	runner := cfg.Runner()
	space := cfg.Space()
	logger.Info("searching", "configs", space.Size(), "iterations", cfg.SearchIterations, "dir", cfg.BuildDir)

	var trace []tune.Measurement
	best := tune.Search(runner, space, cfg.SearchIterations, func(m tune.Measurement, res harness.Result) {
		trace = append(trace, m)
		logger.Info("measured", "run", fmt.Sprintf("%d/%d", len(trace), space.Size()), "config", m.Config, "cmds/s", m.Throughput)
		logFailure(logger, m.Config, res)
	})

	logger.Info("confirming", "config", best.Config, "iterations", cfg.ConfirmIterations)
	rep := report.Confirm(runner, best.Config, cfg.ConfirmIterations, describeHost())
	logFailure(logger, best.Config, rep.Run)
	if err := rep.WriteFile(cfg.Report); err != nil {
		logger.Error("saving report", "err", err)
		return &exitError{1}
	}
	logger.Debug("saved report", "path", cfg.Report)

	fmt.Fprintf(stdout, "Best combo: %s\n", best.Config)
	if err := writeSummary(stdout, tune.Summarize(trace), cfg.SearchIterations); err != nil {
		return err
	}
	if cfg.Chart != "" {
		if err := tune.Chart(trace, best, cfg.Chart); err != nil {
			logger.Error("saving chart", "err", err)
		} else {
			logger.Info("saved chart", "path", cfg.Chart)
		}
	}
	return report.Echo(stdout, rep.Markdown(), 0)
}

func logFailure(logger *log.Logger, cfg harness.Config, res harness.Result) {
	if !res.Failed() {
		return
	}
	kv := []any{"config", cfg, "exit", res.ExitCode}
	if res.Err != nil {
		kv = append(kv, "err", res.Err)
	}
	if stderr := strings.TrimSpace(string(res.Stderr)); stderr != "" {
		kv = append(kv, "stderr", stderr)
	}
	logger.Debug("harness failed", kv...)
}

// writeSummary prints the spread of search throughputs, e.g.
//
//	searched 27 configurations at 1000 iterations, 2 failed
//	          min median    max
//	cmds/s 1.200M 1.350M 1.520M
func writeSummary(w io.Writer, s tune.Summary, iters int) error {
	fmt.Fprintf(w, "searched %d configurations at %d iterations, %d failed\n", s.N, iters, s.Failed)
	if s.Failed == s.N {
		return nil
	}
	vals := []float64{s.Min, s.Median, s.Max}
	scale := benchunit.CommonScale(vals)
	var tab texttab.Table
	tab.Row().Cell("").Cell("min", texttab.Right).Cell("median", texttab.Right).Cell("max", texttab.Right)
	tab.Row().Cell("cmds/s")
	for _, v := range vals {
		tab.Cell(scale.Format(v), texttab.Right)
	}
	return tab.Format(w)
}
