// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thruput reads and writes the throughput lines printed by the
// pipeline benchmark harness.
//
// The harness prints one line per measured shader followed by an
// aggregate line:
//
//	mov_tex: 1523400.12 cmds/s
//	dp3_matrix: 988112.50 cmds/s
//	Overall: 1203311.07 cmds/s
//
// Each line has the form "<name>: <number> cmds/s", where name is one
// or more ASCII word characters ([0-9A-Za-z_]) and number is one or
// more digits and dots. Every other line (warnings, compile errors,
// blank lines) is not part of the protocol and is ignored.
package thruput

// Unit is the unit suffix of every harness measurement.
const Unit = "cmds/s"

// OverallName is the name of the aggregate line. It is reserved and
// never appears as a per-shader Row.
const OverallName = "Overall"

// A Row is a single named throughput measurement.
type Row struct {
	// Name is the shader name, or OverallName for the aggregate.
	Name string

	// Value is the measured throughput in commands per second.
	Value float64

	// Text is the number exactly as the harness printed it. Reports
	// print Text rather than reformatting Value so that identical
	// harness output gives identical reports.
	Text string

	fileName string
	line     int
}

// Pos returns the name and 1-based line number of the input a Row was
// read from. For Rows that were not read by a Reader, it returns "", 0.
func (r *Row) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// IsOverall reports whether r is the aggregate row.
func (r *Row) IsOverall() bool {
	return r.Name == OverallName
}
