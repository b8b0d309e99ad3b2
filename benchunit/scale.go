// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats throughput figures with SI prefixes for
// console tables, e.g. 1523400.12 cmds/s as "1.523M".
//
// Reports written to disk never use this package: they keep the
// harness's own digits.
package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler is a scaling factor for a number and the prefix that
// represents it.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", ...)
}

// Format formats val according to s, e.g. "123.4M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

type factor struct {
	factor float64
	prefix string
	// Thresholds for printing 100.0, 10.00 and 1.000.
	t100, t10, t1 float64
}

var factors = mkFactors()

// mkFactors builds the SI factors from tera down to one. The
// thresholds are parsed from their printed forms so they match the
// rounding of Format exactly.
func mkFactors() []factor {
	var fs []factor
	exp := 12
	for _, p := range []string{"T", "G", "M", "k", ""} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.995e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".99995e%d", exp), 64)
		fs = append(fs, factor{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return fs
}

// Scale formats val with at least three significant digits and an SI
// prefix.
func Scale(val float64) string {
	return CommonScale([]float64{val}).Format(val)
}

// CommonScale returns a Scaler that shows every value in vals with at
// least three significant digits. The scale is chosen by the non-zero
// value closest to zero, so a column of figures shares one prefix.
func CommonScale(vals []float64) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	for _, f := range factors {
		switch {
		case min >= f.t100:
			return Scaler{1, f.factor, f.prefix}
		case min >= f.t10:
			return Scaler{2, f.factor, f.prefix}
		case min >= f.t1:
			return Scaler{3, f.factor, f.prefix}
		}
	}

	// Below 1. Throughputs this small only come from broken runs, so
	// a few more digits are enough.
	return Scaler{4, 1, ""}
}
