// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thruput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// A Reader reads throughput rows from harness output.
//
// Its API is modeled on bufio.Scanner, but lines may be of any length.
// The *Row returned by Result is owned by the Reader and overwritten by
// the next call to Scan, so a caller should copy anything it needs to
// retain.
type Reader struct {
	r   *bufio.Reader
	err error
	eof bool

	row      Row
	synErr   SyntaxError
	cur      Record
	fileName string
	line     int
}

// A SyntaxError reports a line that has the shape of a throughput line
// but whose number cannot be parsed, such as "add: 1.2.3 cmds/s".
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Record is a single record read from harness output. It is either a
// *Row or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number.
	Pos() (fileName string, line int)
}

var _ Record = (*Row)(nil)
var _ Record = (*SyntaxError)(nil)

// NewReader returns a Reader that parses harness output from r.
// fileName is used in positions and error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = defaultFileName
	}
	return &Reader{r: bufio.NewReader(r), fileName: fileName}
}

const defaultFileName = "<harness>"

// Scan advances to the next throughput line and reports whether one
// was found. Lines outside the protocol are skipped. When Scan returns
// false, Err reports any I/O error.
func (r *Reader) Scan() bool {
	for r.err == nil && !r.eof {
		line, err := r.r.ReadBytes('\n')
		switch {
		case err == io.EOF:
			r.eof = true
		case err != nil:
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		}
		if len(line) == 0 {
			continue
		}
		r.line++
		if r.parse(line) {
			return true
		}
	}
	r.cur = nil
	return false
}

// parse parses one line of output, including any line terminator, and
// reports whether it is a throughput line. If so, it sets r.cur.
func (r *Reader) parse(line []byte) bool {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	name, num, ok := splitLine(line)
	if !ok {
		return false
	}
	v, err := strconv.ParseFloat(string(num), 64)
	if err != nil {
		r.synErr = SyntaxError{r.fileName, r.line, fmt.Sprintf("parsing %s throughput %q: not a number", name, num)}
		r.cur = &r.synErr
		return true
	}
	r.row = Row{
		Name:     string(name),
		Value:    v,
		Text:     string(num),
		fileName: r.fileName,
		line:     r.line,
	}
	r.cur = &r.row
	return true
}

// Result returns the record read by the last call to Scan: a *Row or a
// *SyntaxError. Syntax errors are not fatal; the caller may keep
// calling Scan.
func (r *Reader) Result() Record {
	return r.cur
}

// Err returns the first I/O error encountered by Scan.
func (r *Reader) Err() error {
	return r.err
}

var unitSuffix = []byte(" " + Unit)

// splitLine matches line against the whole-line grammar
// `^(\w+): ([0-9.]+) cmds/s$` and returns the two groups.
func splitLine(line []byte) (name, num []byte, ok bool) {
	i := 0
	for i < len(line) && isWord(line[i]) {
		i++
	}
	if i == 0 || !bytes.HasPrefix(line[i:], []byte(": ")) {
		return nil, nil, false
	}
	name, rest := line[:i], line[i+2:]
	num, rest = splitNumber(rest)
	if num == nil || !bytes.Equal(rest, unitSuffix) {
		return nil, nil, false
	}
	return name, num, true
}

// splitNumber returns the leading run of digits and dots in b and the
// remainder. num is nil if b does not start with a digit or a dot.
func splitNumber(b []byte) (num, rest []byte) {
	i := 0
	for i < len(b) && (b[i] == '.' || '0' <= b[i] && b[i] <= '9') {
		i++
	}
	if i == 0 {
		return nil, b
	}
	return b[:i], b[i:]
}

func isWord(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
