// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coverage estimates how many of the opcodes in a usage report
// are implemented by a source tree.
//
// A usage report is plain text with one opcode per line, optionally
// followed by a usage count separated by whitespace or a colon:
//
//	# from the replay of level 3
//	mov 10
//	dp4: 3
//	rsq
//
// Counts are decimal integers and may use underscores between digits
// ("1_000"). A count that does not fit in an int is treated like any
// other malformed count and counts as 1.
//
// An opcode counts as implemented if it appears in the sources as a
// double-quoted string literal, such as "dp4". This is a text search,
// not an analysis of the code: a mnemonic quoted in a comment counts,
// and one spelled differently in the sources does not.
package coverage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Usage maps each opcode of a usage report to its total count.
type Usage map[string]int

// ParseReport parses a usage report. Blank lines and lines starting
// with "#" are skipped. A count that is missing or not an integer
// counts as 1. Counts of repeated opcodes add up. Lines may be of any
// length.
func ParseReport(r io.Reader) (Usage, error) {
	u := make(Usage)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading usage report: %w", err)
		}
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			token, count := splitUsage(line)
			u[token] += count
		}
		if err == io.EOF {
			return u, nil
		}
	}
}

// ReadReport parses the usage report in the named file.
func ReadReport(path string) (Usage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	u, err := ParseReport(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

// splitUsage splits line at the first run of colons and white space
// into an opcode and its count.
func splitUsage(line string) (token string, count int) {
	i := strings.IndexFunc(line, isSep)
	if i < 0 {
		return line, 1
	}
	token = line[:i]
	rest := strings.TrimLeftFunc(line[i:], isSep)
	if n, ok := parseCount(rest); ok {
		return token, n
	}
	return token, 1
}

// parseCount parses a decimal count with an optional sign. Single
// underscores may separate digits, as in "1_000". Counts that overflow
// an int are rejected.
func parseCount(s string) (int, bool) {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return 0, false
	}
	if strings.Contains(digits, "_") {
		if digits[0] == '_' || digits[len(digits)-1] == '_' || strings.Contains(digits, "__") {
			return 0, false
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func isSep(r rune) bool {
	return r == ':' || unicode.IsSpace(r)
}
