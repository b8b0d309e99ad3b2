// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hostinfo describes the CPU of the machine running a
// benchmark, for report headers.
//
// The description is best effort. Each source of information is a
// Prober, and probers are tried in order until one produces a value.
// No prober ever fails the caller.
package hostinfo

import (
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

// A Prober returns a host description, or ok == false if it has none.
type Prober func() (desc string, ok bool)

// Default is the probe order used by Describe.
var Default = []Prober{Lscpu, Uname, Runtime}

// Describe returns a one-line description of the host CPU, such as
// "AMD EPYC 7B13 (x86_64, 8 CPUs)".
func Describe() string {
	return First(Default...)
}

// First returns the description from the first prober that has one. If
// none do, it returns the Runtime description.
func First(probes ...Prober) string {
	for _, p := range probes {
		if desc, ok := p(); ok {
			return desc
		}
	}
	desc, _ := Runtime()
	return desc
}

// lscpuCommand is replaced during testing.
var lscpuCommand = func() ([]byte, error) {
	return exec.Command("lscpu").Output()
}

// Lscpu describes the host from the output of the lscpu utility.
func Lscpu() (string, bool) {
	out, err := lscpuCommand()
	if err != nil {
		return "", false
	}
	return ParseLscpu(string(out))
}

var (
	lscpuModel = regexp.MustCompile(`Model name:\s+(.+)`)
	lscpuArch  = regexp.MustCompile(`Architecture:\s+(.+)`)
	lscpuCPUs  = regexp.MustCompile(`CPU\(s\):\s+(\d+)`)
)

// ParseLscpu extracts the model name, architecture and logical CPU
// count from lscpu output and formats them as
// "<model> (<arch>, <n> CPUs)". It reports false unless all three
// fields are present. The first occurrence of each field is used.
func ParseLscpu(out string) (string, bool) {
	model := lscpuModel.FindStringSubmatch(out)
	arch := lscpuArch.FindStringSubmatch(out)
	cpus := lscpuCPUs.FindStringSubmatch(out)
	if model == nil || arch == nil || cpus == nil {
		return "", false
	}
	return strings.TrimSpace(model[1]) + " (" + strings.TrimSpace(arch[1]) + ", " + cpus[1] + " CPUs)", true
}

// Runtime describes the host using only what the Go runtime knows. It
// always succeeds.
func Runtime() (string, bool) {
	return runtime.GOOS + " " + runtime.GOARCH, true
}
