// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coverage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseReport(t *testing.T) {
	for _, test := range []struct {
		name string
		in   string
		want Usage
	}{
		{"empty", "", Usage{}},
		{"comments", "# mov 3\n  # dp4\n\n   \n", Usage{}},
		{"space", "mov 10\n", Usage{"mov": 10}},
		{"colon", "dp4: 3\n", Usage{"dp4": 3}},
		{"colonNoSpace", "dp4:3\n", Usage{"dp4": 3}},
		{"tab", "mad\t\t7\n", Usage{"mad": 7}},
		{"noCount", "rsq\n", Usage{"rsq": 1}},
		{"trailingColon", "rsq:\n", Usage{"rsq": 1}},
		{"badCount", "mad x\n", Usage{"mad": 1}},
		{"extraFields", "mad 3 4\n", Usage{"mad": 1}},
		{"negative", "mad -2\n", Usage{"mad": -2}},
		{"indented", "   mov 2   \n", Usage{"mov": 2}},
		{"accumulate", "mov 10\nmov 5\nmov\n", Usage{"mov": 16}},
		{"mixed", "mov 10\ndp4 3\nmov 2\n# comment\n", Usage{"mov": 12, "dp4": 3}},
		{"noNewline", "mov 4", Usage{"mov": 4}},
		{"crlf", "mov 4\r\ndp4 1\r\n", Usage{"mov": 4, "dp4": 1}},
		{"underscores", "mov 1_000\ndp4 +2_5\n", Usage{"mov": 1000, "dp4": 25}},
		{"badUnderscores", "mov 1__0\ndp4 _1\nmad 1_\n", Usage{"mov": 1, "dp4": 1, "mad": 1}},
		{"doubleSign", "mov --3\n", Usage{"mov": 1}},
		{"overflow", "mov 99999999999999999999\n", Usage{"mov": 1}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseReport(strings.NewReader(test.in))
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want, got); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestParseReportLongLine(t *testing.T) {
	long := strings.Repeat("y", 2<<20)
	got, err := ParseReport(strings.NewReader("mov 10\n" + long + "\ndp4 3\n" + long + ": 4"))
	if err != nil {
		t.Fatal(err)
	}
	want := Usage{"mov": 10, long: 5, "dp4": 3}
	if len(got) != len(want) || got["mov"] != 10 || got[long] != 5 || got["dp4"] != 3 {
		t.Errorf("got %d opcodes (mov %d, dp4 %d, long %d), want mov 10, dp4 3, long 5",
			len(got), got["mov"], got["dp4"], got[long])
	}
}

func TestReadReport(t *testing.T) {
	got, err := ReadReport("testdata/usage.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := Usage{"mov": 15, "dp4": 3, "rsq": 1, "mad": 1, "texld": 2}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	if _, err := ReadReport(filepath.Join(t.TempDir(), "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("missing report: got %v, want not-exist error", err)
	}
}
