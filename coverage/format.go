// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coverage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dx8gles11/perf/internal/texttab"
)

// WriteText writes a console table of r followed by a summary line.
func (r *Result) WriteText(w io.Writer) error {
	var tab texttab.Table
	for _, row := range r.Rows {
		tab.Row().
			Cell(row.Token).
			Cell(strconv.Itoa(row.Count), texttab.Right).
			Cell("implemented: " + yesNo(row.Implemented))
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nCovered %d/%d tokens (%.1f%%)\n", r.Covered, r.Total(), r.Ratio())
	return err
}

// Markdown renders r as a markdown table with a summary line.
func (r *Result) Markdown() []byte {
	var buf bytes.Buffer
	buf.WriteString("# Opcode coverage\n")
	buf.WriteString("\n")
	buf.WriteString("| Opcode | Count | Implemented |\n")
	buf.WriteString("| ------ | ----: | :--------- |\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&buf, "| %s | %d | %s |\n", row.Token, row.Count, yesNo(row.Implemented))
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Covered %d/%d opcodes (%.1f%%)", r.Covered, r.Total(), r.Ratio())
	return buf.Bytes()
}

// WriteMarkdown writes the markdown rendering of r to path, replacing
// any existing file.
func (r *Result) WriteMarkdown(path string) error {
	if err := os.WriteFile(path, r.Markdown(), 0o666); err != nil {
		return fmt.Errorf("writing coverage table: %w", err)
	}
	return nil
}
