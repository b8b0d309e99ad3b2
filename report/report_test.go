// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dx8gles11/perf/harness"
	"github.com/dx8gles11/perf/internal/diff"
	"github.com/dx8gles11/perf/thruput"
)

// replay returns a Runner that always prints out and records the
// configuration and iteration count of the last call.
func replay(out []byte, lastCfg *harness.Config, lastIters *int) harness.Runner {
	return harness.RunnerFunc(func(cfg harness.Config, iters int) harness.Result {
		*lastCfg, *lastIters = cfg, iters
		return harness.Result{Stdout: out}
	})
}

// harnessOutput formats rows as the harness prints them, followed by
// the aggregate line if overall is positive.
func harnessOutput(t *testing.T, rows []thruput.Row, overall float64) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := thruput.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatal(err)
		}
	}
	if overall > 0 {
		if err := w.WriteOverall(overall); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

var firstConfig = harness.Config{Decode: 1, Prepare: 1, Dispatch: 1}

func golden(t *testing.T, name string, got []byte) {
	t.Helper()
	want, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	if d := diff.Diff(string(want), string(got)); d != "" {
		t.Errorf("%s mismatch:\n%s", name, d)
	}
}

func TestConfirm(t *testing.T) {
	out, err := os.ReadFile("testdata/harness.txt")
	if err != nil {
		t.Fatal(err)
	}
	var cfg harness.Config
	var iters int
	best := harness.Config{Decode: 2, Prepare: 1, Dispatch: 3}
	rep := Confirm(replay(out, &cfg, &iters), best, DefaultIters, "AMD EPYC 7B13 (x86_64, 8 CPUs)")

	if cfg != best || iters != DefaultIters {
		t.Errorf("harness ran with %v, %d iterations; want %v, %d", cfg, iters, best, DefaultIters)
	}
	if len(rep.Rows) != 3 {
		t.Errorf("got %d rows, want 3", len(rep.Rows))
	}
	if rep.Overall == nil || rep.Overall.Value != 1203311.07 {
		t.Errorf("overall = %+v", rep.Overall)
	}
	golden(t, "thruput.md", rep.Markdown())
}

func TestMarkdownNoOverall(t *testing.T) {
	var cfg harness.Config
	var iters int
	out := harnessOutput(t, []thruput.Row{{Name: "add", Value: 12}}, 0)
	out = append(out, "pipeline init failed\n"...)
	rep := Confirm(replay(out, &cfg, &iters), firstConfig, 10, "linux amd64")
	if rep.Overall != nil {
		t.Fatalf("unexpected overall %+v", rep.Overall)
	}
	golden(t, "nooverall.md", rep.Markdown())
}

func TestConfirmHarnessDigits(t *testing.T) {
	var cfg harness.Config
	var iters int
	out := harnessOutput(t, []thruput.Row{
		{Name: "mov_tex", Value: 1523400.123},
		{Name: "nop", Value: 7},
	}, 9.5)
	rep := Confirm(replay(out, &cfg, &iters), firstConfig, 10, "h")

	var texts []string
	for _, row := range rep.Rows {
		texts = append(texts, row.Name+"="+row.Text)
	}
	if got, want := strings.Join(texts, " "), "mov_tex=1523400.12 nop=7.00"; got != want {
		t.Errorf("rows %s, want %s", got, want)
	}
	if rep.Overall == nil || rep.Overall.Text != "9.50" {
		t.Fatalf("overall = %+v, want text 9.50", rep.Overall)
	}
	if md := string(rep.Markdown()); !strings.HasSuffix(md, "| nop | 7.00 |\n| **Overall** | 9.50 |\n") {
		t.Errorf("markdown:\n%s", md)
	}
}

func TestMarkdownEmptyRun(t *testing.T) {
	rep := Confirm(harness.RunnerFunc(func(harness.Config, int) harness.Result {
		return harness.Result{ExitCode: -1}
	}), firstConfig, 10, "h")
	const want = "**Host**: h\n**Best configuration**: decode=1 prepare=1 dispatch=1\n\n| Shader | Cmds/s |\n|-------|-------:|\n"
	if got := string(rep.Markdown()); got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
}

func TestWriteFileIdempotent(t *testing.T) {
	out, err := os.ReadFile("testdata/harness.txt")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "THRUPUT.md")

	var runs [][]byte
	for i := 0; i < 2; i++ {
		var cfg harness.Config
		var iters int
		rep := Confirm(replay(out, &cfg, &iters), harness.Config{Decode: 2, Prepare: 1, Dispatch: 3}, DefaultIters, "host")
		if err := rep.WriteFile(path); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, data)
	}
	if !bytes.Equal(runs[0], runs[1]) {
		t.Errorf("reports differ:\n%s", diff.Diff(string(runs[0]), string(runs[1])))
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "THRUPUT.md")
	if err := os.WriteFile(path, bytes.Repeat([]byte("stale\n"), 100), 0o666); err != nil {
		t.Fatal(err)
	}
	rep := &Thruput{Host: "h", Config: firstConfig}
	if err := rep.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, rep.Markdown()) {
		t.Errorf("file not replaced:\n%s", data)
	}
}

func TestWriteFileError(t *testing.T) {
	rep := &Thruput{Host: "h", Config: firstConfig}
	if err := rep.WriteFile(filepath.Join(t.TempDir(), "missing", "THRUPUT.md")); err == nil {
		t.Error("want error writing into a missing directory")
	}
}

func TestEchoPlain(t *testing.T) {
	var buf bytes.Buffer
	md := []byte("| Shader | Cmds/s |\n")
	if err := Echo(&buf, md, 80); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), md) {
		t.Errorf("non-terminal writer got rendered output %q", buf.Bytes())
	}
}
