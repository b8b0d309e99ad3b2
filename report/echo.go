// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// Echo writes the markdown report md to w. If w is a terminal, the
// markdown is rendered for display, wrapped at width columns if width
// is positive. Otherwise, or if rendering fails, md is written as is.
func Echo(w io.Writer, md []byte, width int) error {
	if isTerminal(w) {
		if out, err := render(md, width); err == nil {
			_, err = io.WriteString(w, out)
			return err
		}
	}
	_, err := w.Write(md)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(md []byte, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(string(md))
}
