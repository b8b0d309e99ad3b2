// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package hostinfo

// Uname has no information on this platform.
func Uname() (string, bool) {
	return "", false
}
