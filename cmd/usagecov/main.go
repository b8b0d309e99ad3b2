// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Usagecov reports which opcodes of a usage report the interpreter
// implements.
//
// Usage:
//
//	usagecov [flags] REPORT [SRC_DIR]
//
// REPORT lists one opcode per line, optionally followed by a usage
// count:
//
//	# usage from the level 3 replay
//	mov 10
//	dp4: 3
//	rsq
//
// Usagecov searches the .c and .h files under SRC_DIR (default "src")
// for each opcode as a double-quoted string literal, prints a table of
// the results and saves it as markdown to COVERAGE.md.
// Arguments after SRC_DIR are ignored.
//
// The flags are:
//
//	--out file
//		Save the markdown table to file instead of COVERAGE.md.
//	--html file
//		Also save the table as an HTML page.
//	--ext .c,.h
//		Extensions of the source files to search.
//	-v
//		Log which sources were read.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dx8gles11/perf/coverage"
	"github.com/spf13/cobra"
)

const usageLine = "usage: usagecov REPORT [SRC_DIR]"

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
		fmt.Fprintf(stderr, "usagecov: %v\n", err)
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
	out     string
	html    string
	exts    []string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "usagecov REPORT [SRC_DIR]",
		Short:         "Report which opcodes of a usage report are implemented",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(stderr, usageLine)
				return &exitError{1}
			}
			logger := log.NewWithOptions(stderr, log.Options{Prefix: "usagecov"})
			if opts.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			srcDir := "src"
			if len(args) == 2 {
				srcDir = args[1]
			}
			return analyze(opts, args[0], srcDir, stdout, stderr, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	f := cmd.Flags()
	f.StringVar(&opts.out, "out", "COVERAGE.md", "save the markdown table to `file`")
	f.StringVar(&opts.html, "html", "", "also save an HTML page to `file`")
	f.StringSliceVar(&opts.exts, "ext", coverage.DefaultExts, "source file `extensions` to search")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log which sources were read")
	return cmd
}

func analyze(opts options, reportPath, srcDir string, stdout, stderr io.Writer, logger *log.Logger) error {
	if fi, err := os.Stat(reportPath); err != nil || !fi.Mode().IsRegular() {
		fmt.Fprintf(stderr, "report not found: %s\n", reportPath)
		return &exitError{1}
	}
	usage, err := coverage.ReadReport(reportPath)
	if err != nil {
		logger.Error("reading report", "err", err)
		return &exitError{1}
	}

	if fi, err := os.Stat(srcDir); err != nil || !fi.IsDir() {
		logger.Warn("source directory not found; no opcode is implemented", "dir", srcDir)
	}
	corpus := coverage.LoadSources(srcDir, opts.exts)
	logger.Debug("read sources", "dir", srcDir, "exts", opts.exts, "bytes", len(corpus))
	res := coverage.Analyze(usage, corpus)

	fmt.Fprintf(stdout, "Coverage for report: %s\n", reportPath)
	if err := res.WriteText(stdout); err != nil {
		return err
	}

	if err := res.WriteMarkdown(opts.out); err != nil {
		logger.Error("saving coverage table", "err", err)
		return &exitError{1}
	}
	if opts.html != "" {
		if err := res.WriteHTMLFile(opts.html); err != nil {
			logger.Error("saving coverage page", "err", err)
			return &exitError{1}
		}
		logger.Debug("saved coverage page", "path", opts.html)
	}
	fmt.Fprintf(stdout, "Saved coverage table to %s\n", opts.out)
	return nil
}
