// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thruput

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestOverall(t *testing.T) {
	for _, test := range []struct {
		out  string
		want float64
	}{
		{"Overall: 1234.5 cmds/s\n", 1234.5},
		{"add: 3 cmds/s\nOverall: 200.00 cmds/s\n", 200},
		{"pipeline init failed\n", 0},
		{"", 0},
		{"Overall: cmds/s\n", 0},
		{"Overall: 1.2.3 cmds/s\n", 0},
		// The aggregate is found anywhere, not only at the start
		// of a line, and the first well-formed match wins.
		{"note Overall: 7 cmds/s", 7},
		{"Overall: n/a\nOverall: 9.5 cmds/s\nOverall: 10 cmds/s\n", 9.5},
	} {
		if got := Overall([]byte(test.out)); got != test.want {
			t.Errorf("Overall(%q) = %v, want %v", test.out, got, test.want)
		}
	}
}

func TestFindOverallKeepsText(t *testing.T) {
	row, ok := FindOverall([]byte("Overall: 0200.50 cmds/s\n"))
	if !ok {
		t.Fatal("no aggregate found")
	}
	if row.Text != "0200.50" || row.Value != 200.5 || !row.IsOverall() {
		t.Errorf("got %+v", row)
	}
}

func TestRows(t *testing.T) {
	out := "vertex_shader: 50.0 cmds/s\nOverall: 200.0 cmds/s\n"
	want := []Row{{Name: "vertex_shader", Value: 50, Text: "50.0"}}
	got := Rows([]byte(out))
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Row{})); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsLongLine(t *testing.T) {
	out := "warning: " + strings.Repeat("x", 70000) + "\nvertex_shader: 50.0 cmds/s\nOverall: 200.0 cmds/s\n"
	want := []Row{{Name: "vertex_shader", Value: 50, Text: "50.0"}}
	got := Rows([]byte(out))
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Row{})); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if got := Overall([]byte(out)); got != 200 {
		t.Errorf("Overall = %v, want 200", got)
	}
}

func TestRowsPos(t *testing.T) {
	rows := Rows([]byte("noise\nadd: 1 cmds/s\r\n"))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if file, line := rows[0].Pos(); file != "<harness>" || line != 2 {
		t.Errorf("Pos() = %s:%d, want <harness>:2", file, line)
	}
}

func TestRowsOrder(t *testing.T) {
	out := "tex_ops: 3 cmds/s\nadd: 1 cmds/s\nbroken: 1..2 cmds/s x\nOverall: 2 cmds/s\ncnd: 2 cmds/s\n"
	var names []string
	for _, row := range Rows([]byte(out)) {
		names = append(names, row.Name)
	}
	want := []string{"tex_ops", "add", "cnd"}
	if !cmp.Equal(want, names) {
		t.Errorf("want %v, got %v", want, names)
	}
}

func TestRowsEmpty(t *testing.T) {
	if rows := Rows(nil); len(rows) != 0 {
		t.Errorf("want no rows, got %v", rows)
	}
}
