// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thruput

import (
	"bytes"
	"strconv"
)

var overallPrefix = []byte(OverallName + ": ")

// FindOverall finds the first "Overall: <number> cmds/s" in out. Unlike
// Reader, the match is not anchored to a line. It reports false if out
// has no such text or the number does not parse.
func FindOverall(out []byte) (Row, bool) {
	for rest := out; ; {
		i := bytes.Index(rest, overallPrefix)
		if i < 0 {
			return Row{}, false
		}
		rest = rest[i+len(overallPrefix):]
		num, tail := splitNumber(rest)
		if num == nil || !bytes.HasPrefix(tail, unitSuffix) {
			continue
		}
		v, err := strconv.ParseFloat(string(num), 64)
		if err != nil {
			return Row{}, false
		}
		return Row{Name: OverallName, Value: v, Text: string(num)}, true
	}
}

// Overall returns the aggregate throughput in out, or 0 if the harness
// did not print one. A failed or crashed harness run therefore
// measures as 0.
func Overall(out []byte) float64 {
	row, ok := FindOverall(out)
	if !ok {
		return 0
	}
	return row.Value
}

// Rows returns the per-shader rows of out in output order. The
// aggregate row and unparsable lines are omitted. Like FindOverall, it
// has no limit on line length.
func Rows(out []byte) []Row {
	var rows []Row
	r := &Reader{fileName: defaultFileName}
	for line := range bytes.Lines(out) {
		r.line++
		if !r.parse(line) {
			continue
		}
		row, ok := r.cur.(*Row)
		if !ok || row.IsOverall() {
			continue
		}
		rows = append(rows, *row)
	}
	return rows
}
