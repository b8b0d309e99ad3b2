// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coverage

import (
	"fmt"
	"io"
	"os"

	"github.com/google/safehtml/template"
)

const htmlPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Opcode coverage</title>
</head>
<body>
<h1>Opcode coverage</h1>
<table class="coverage">
<tr><th>Opcode<th>Count<th>Implemented
{{range .Rows -}}
<tr class="{{if .Implemented}}yes{{else}}no{{end}}"><td>{{.Token}}<td>{{.Count}}<td>{{if .Implemented}}yes{{else}}no{{end}}
{{end -}}
</table>
<p>Covered {{.Covered}}/{{.Total}} opcodes ({{.Ratio}}%)</p>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("coverage").Parse(htmlPage))

type htmlData struct {
	Rows    []Row
	Covered int
	Total   int
	Ratio   string
}

// WriteHTML writes r as an HTML page to w. Opcodes come from an
// untrusted report, so they are escaped.
func (r *Result) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, htmlData{
		Rows:    r.Rows,
		Covered: r.Covered,
		Total:   r.Total(),
		Ratio:   fmt.Sprintf("%.1f", r.Ratio()),
	})
}

// WriteHTMLFile writes the HTML page for r to path.
func (r *Result) WriteHTMLFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing coverage page: %w", err)
	}
	if err := r.WriteHTML(f); err != nil {
		f.Close()
		return fmt.Errorf("writing coverage page: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing coverage page: %w", err)
	}
	return nil
}
