// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coverage

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExts are the file extensions of interpreter sources.
var DefaultExts = []string{".c", ".h"}

// LoadSources reads every file under root whose name ends in one of
// exts and returns their contents joined by newlines, in lexical path
// order. Files and directories that cannot be read are skipped, and a
// missing root gives an empty corpus.
func LoadSources(root string, exts []string) string {
	var parts []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !hasExt(d.Name(), exts) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		parts = append(parts, string(data))
		return nil
	})
	return strings.Join(parts, "\n")
}

func hasExt(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
