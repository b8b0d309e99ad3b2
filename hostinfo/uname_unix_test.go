// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd

package hostinfo

import (
	"strings"
	"testing"
)

func TestUnameProcessor(t *testing.T) {
	defer func(f func() string) { unameProcessor = f }(unameProcessor)

	unameProcessor = func() string { return "" }
	base, ok := Uname()
	if !ok {
		t.Skip("uname unavailable")
	}
	if strings.HasSuffix(base, " ") {
		t.Errorf("Uname() = %q has trailing space", base)
	}

	unameProcessor = func() string { return "test-cpu" }
	if got, want := First(Uname), base+" test-cpu"; got != want {
		t.Errorf("Uname() = %q, want %q", got, want)
	}
}

func TestParseProcessor(t *testing.T) {
	for out, want := range map[string]string{
		"x86_64\n":  "x86_64",
		"arm\n":     "arm",
		"unknown\n": "",
		"":          "",
	} {
		if got := parseProcessor(out); got != want {
			t.Errorf("parseProcessor(%q) = %q, want %q", out, got, want)
		}
	}
}
