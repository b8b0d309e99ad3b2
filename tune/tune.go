// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tune searches the pipeline configuration space for the
// configuration with the highest aggregate throughput.
//
// The search is exhaustive: every point of the space is measured once,
// at a low iteration count, in lexicographic order. This is only
// practical because the space is tiny (27 points by default); there is
// no interpolation or gradient guidance.
package tune

import (
	"github.com/dx8gles11/perf/harness"
	"github.com/dx8gles11/perf/thruput"
)

// DefaultIters is the iteration count of each search measurement.
const DefaultIters = 1000

// A Space is the set of modes to try for each pipeline stage.
type Space struct {
	Decode, Prepare, Dispatch []int
}

// DefaultSpace tries modes 1, 2 and 3 for every stage.
var DefaultSpace = Space{
	Decode:   []int{1, 2, 3},
	Prepare:  []int{1, 2, 3},
	Dispatch: []int{1, 2, 3},
}

// Size returns the number of configurations in s.
func (s Space) Size() int {
	return len(s.Decode) * len(s.Prepare) * len(s.Dispatch)
}

// Configs returns every configuration in s in lexicographic order:
// decode varies slowest and dispatch fastest.
func (s Space) Configs() []harness.Config {
	cfgs := make([]harness.Config, 0, s.Size())
	for _, d := range s.Decode {
		for _, p := range s.Prepare {
			for _, t := range s.Dispatch {
				cfgs = append(cfgs, harness.Config{Decode: d, Prepare: p, Dispatch: t})
			}
		}
	}
	return cfgs
}

// A Measurement is the aggregate throughput of one harness run.
type Measurement struct {
	Config     harness.Config
	Iters      int
	Throughput float64 // cmds/s; 0 if the run failed
}

// Sentinel returns the starting point of a search. Any real
// measurement with positive throughput beats it.
func Sentinel() Measurement {
	return Measurement{Config: harness.Config{Decode: 1, Prepare: 1, Dispatch: 1}}
}

// Better returns the better of best and m. m wins only if its
// throughput is strictly greater, so on a tie the earlier measurement
// is kept.
func Better(best, m Measurement) Measurement {
	if m.Throughput > best.Throughput {
		return m
	}
	return best
}

// Measure runs the harness once and extracts its aggregate throughput.
func Measure(r harness.Runner, cfg harness.Config, iters int) (Measurement, harness.Result) {
	res := r.Run(cfg, iters)
	return Measurement{Config: cfg, Iters: iters, Throughput: thruput.Overall(res.Stdout)}, res
}

// A Visit is called with each measurement as the search makes it,
// along with the raw harness result.
type Visit func(m Measurement, res harness.Result)

// Search measures every configuration of space with iters iterations
// and returns the best measurement. visit, if non-nil, observes every
// measurement in visit order.
//
// If every run fails, Search returns Sentinel.
func Search(r harness.Runner, space Space, iters int, visit Visit) Measurement {
	best := Sentinel()
	for _, cfg := range space.Configs() {
		m, res := Measure(r, cfg, iters)
		if visit != nil {
			visit(m, res)
		}
		best = Better(best, m)
	}
	return best
}
