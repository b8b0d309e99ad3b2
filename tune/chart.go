// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Chart draws a bar chart of the throughput of every measurement in
// trace and saves it to path. The image format is chosen from the
// extension of path (".png", ".svg", ".pdf", ...).
func Chart(trace []Measurement, best Measurement, path string) error {
	if len(trace) == 0 {
		return fmt.Errorf("chart %s: no measurements", path)
	}

	p := plot.New()
	p.Title.Text = "Pipeline throughput by configuration"
	p.Y.Label.Text = "cmds/s"
	p.X.Label.Text = "decode.prepare.dispatch"

	vals := make(plotter.Values, len(trace))
	names := make([]string, len(trace))
	bestIdx := -1
	for i, m := range trace {
		vals[i] = m.Throughput
		names[i] = fmt.Sprintf("%d.%d.%d", m.Config.Decode, m.Config.Prepare, m.Config.Dispatch)
		if bestIdx < 0 && m == best {
			bestIdx = i
		}
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(12))
	if err != nil {
		return fmt.Errorf("chart %s: %w", path, err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.Gray{Y: 160}
	p.Add(bars)

	// Overlay the winner in a distinct color.
	if bestIdx >= 0 {
		hi := make(plotter.Values, len(trace))
		hi[bestIdx] = trace[bestIdx].Throughput
		win, err := plotter.NewBarChart(hi, vg.Points(12))
		if err != nil {
			return fmt.Errorf("chart %s: %w", path, err)
		}
		win.LineStyle.Width = vg.Length(0)
		win.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
		p.Add(win)
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = -math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YTop
	p.X.Tick.Label.XAlign = draw.XLeft

	width := vg.Points(float64(40 + 18*len(trace)))
	if err := p.Save(width, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("chart %s: %w", path, err)
	}
	return nil
}

// ChartFormats lists the file extensions Chart accepts.
var ChartFormats = []string{".eps", ".jpg", ".jpeg", ".pdf", ".png", ".svg", ".tex", ".tif", ".tiff"}

// IsChartPath reports whether path has an extension Chart can render.
func IsChartPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range ChartFormats {
		if ext == f {
			return true
		}
	}
	return false
}
