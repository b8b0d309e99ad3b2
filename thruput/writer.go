// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thruput

import (
	"bytes"
	"io"
	"strconv"
)

// A Writer writes throughput lines in the harness format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a Writer that writes harness lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes row as "<name>: <number> cmds/s". It prints row.Text if
// set, and otherwise Value with two decimal places as the harness does.
func (w *Writer) Write(row Row) error {
	text := row.Text
	if text == "" {
		text = strconv.FormatFloat(row.Value, 'f', 2, 64)
	}
	w.buf.WriteString(row.Name)
	w.buf.WriteString(": ")
	w.buf.WriteString(text)
	w.buf.Write(unitSuffix)
	w.buf.WriteByte('\n')

	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// WriteOverall writes the aggregate line.
func (w *Writer) WriteOverall(v float64) error {
	return w.Write(Row{Name: OverallName, Value: v})
}
