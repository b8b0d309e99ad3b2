// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coverage

import (
	"sort"
	"strings"
)

// A Row is the coverage of one opcode.
type Row struct {
	Token       string
	Count       int
	Implemented bool
}

// A Result is the coverage of a usage report.
type Result struct {
	Rows    []Row // sorted by Token
	Covered int   // rows with Implemented set
}

// Analyze checks each opcode of u against the source corpus.
func Analyze(u Usage, corpus string) *Result {
	tokens := make([]string, 0, len(u))
	for tok := range u {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	res := &Result{Rows: make([]Row, 0, len(tokens))}
	for _, tok := range tokens {
		impl := strings.Contains(corpus, `"`+tok+`"`)
		if impl {
			res.Covered++
		}
		res.Rows = append(res.Rows, Row{tok, u[tok], impl})
	}
	return res
}

// Total returns the number of distinct opcodes.
func (r *Result) Total() int {
	return len(r.Rows)
}

// Ratio returns the percentage of opcodes implemented, or 0 if there
// are none.
func (r *Result) Ratio() float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	return float64(r.Covered) / float64(len(r.Rows)) * 100
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
