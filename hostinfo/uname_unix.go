// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd

package hostinfo

import (
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// Uname describes the host by its kernel name, machine hardware name
// and processor type, such as "Linux x86_64 x86_64". The processor is
// left out where uname does not know it.
func Uname() (string, bool) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", false
	}
	desc := strings.Join([]string{
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Machine[:]),
		unameProcessor(),
	}, " ")
	desc = strings.TrimSpace(desc)
	return desc, desc != ""
}

// unameProcessor is replaced during testing.
var unameProcessor = func() string {
	out, err := exec.Command("uname", "-p").Output()
	if err != nil {
		return ""
	}
	return parseProcessor(string(out))
}

// parseProcessor cleans up the output of "uname -p", which prints
// "unknown" on many Linux systems.
func parseProcessor(out string) string {
	p := strings.TrimSpace(out)
	if p == "unknown" {
		return ""
	}
	return p
}
