// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff describes differences between rendered reports in
// tests.
package diff

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Diff returns a human-readable description of the differences between
// want and got, or "" if they are equal. It uses "diff -u" when the
// command is available and a line-wise cmp.Diff otherwise.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if d, ok := unified(want, got); ok {
		return d
	}
	return cmp.Diff(strings.SplitAfter(want, "\n"), strings.SplitAfter(got, "\n"))
}

func unified(want, got string) (string, bool) {
	if _, err := exec.LookPath("diff"); err != nil {
		return "", false
	}
	dir, err := os.MkdirTemp("", "perfdiff")
	if err != nil {
		return "", false
	}
	defer os.RemoveAll(dir)

	wantPath, gotPath := filepath.Join(dir, "want"), filepath.Join(dir, "got")
	if err := os.WriteFile(wantPath, []byte(want), 0o666); err != nil {
		return "", false
	}
	if err := os.WriteFile(gotPath, []byte(got), 0o666); err != nil {
		return "", false
	}

	// diff exits with status 1 when the files differ. Any output is
	// the answer; no output means the command itself failed.
	data, _ := exec.Command("diff", "-u", wantPath, gotPath).CombinedOutput()
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}
