// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import (
	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the spread of throughputs seen by a search.
type Summary struct {
	N      int // measurements
	Failed int // measurements with zero throughput

	// Min, Median and Max are over the successful measurements
	// only, and are 0 if there were none.
	Min, Median, Max float64
}

// Summarize summarizes a search trace.
func Summarize(trace []Measurement) Summary {
	s := Summary{N: len(trace)}
	var xs []float64
	for _, m := range trace {
		if m.Throughput == 0 {
			s.Failed++
			continue
		}
		xs = append(xs, m.Throughput)
	}
	if len(xs) == 0 {
		return s
	}
	sample := stats.Sample{Xs: xs}
	sample.Sort()
	s.Min, s.Max = sample.Bounds()
	s.Median = sample.Quantile(0.5)
	return s
}
