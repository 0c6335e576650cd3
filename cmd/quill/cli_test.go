package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"quill/internal/diagfmt"
	"quill/internal/driver"
)

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Errorf("expected error for invalid mode")
	}
}

func TestCheckUI(t *testing.T) {
	tests := []struct {
		name   string
		mode   uiMode
		format diagFormat
		files  int
		tty    bool
		want   bool
	}{
		{"forced on", uiModeOn, diagFormatPretty, 1, false, true},
		{"forced off", uiModeOff, diagFormatPretty, 5, true, false},
		{"json never", uiModeOn, diagFormatJSON, 5, true, false},
		{"auto on tty", uiModeAuto, diagFormatShort, 3, true, true},
		{"auto single file", uiModeAuto, diagFormatPretty, 1, true, false},
		{"auto piped", uiModeAuto, diagFormatPretty, 3, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkUI(tt.mode, tt.format, tt.files, tt.tty); got != tt.want {
				t.Fatalf("checkUI = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadDiagFormat(t *testing.T) {
	for in, want := range map[string]diagFormat{"": diagFormatPretty, "short": diagFormatShort, "JSON": diagFormatJSON} {
		got, err := readDiagFormat(in)
		if err != nil || got != want {
			t.Errorf("readDiagFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readDiagFormat("xml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func testOptions() globalOptions {
	return globalOptions{maxDiagnostics: 16, pathMode: diagfmt.PathModeBasename}
}

func TestRenderFailureSemanticError(t *testing.T) {
	res, err := driver.RunSource(context.Background(), "bad.ql", []byte("let x : string = 5;\n"), driver.Options{})
	if err == nil {
		t.Fatalf("expected semantic error")
	}
	var buf bytes.Buffer
	if rerr := renderFailure(&buf, diagFormatShort, err, res.Bag, res.FileSet, testOptions()); !errors.Is(rerr, errReported) {
		t.Fatalf("renderFailure = %v, want errReported", rerr)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "error SEM3010 bad.ql:1:18 ") ||
		!strings.HasPrefix(lines[1], "note SEM3010 bad.ql:1:9 ") {
		t.Fatalf("short output = %q", buf.String())
	}

	buf.Reset()
	if rerr := renderFailure(&buf, diagFormatPretty, err, res.Bag, res.FileSet, testOptions()); !errors.Is(rerr, errReported) {
		t.Fatalf("renderFailure = %v", rerr)
	}
	out := buf.String()
	for _, want := range []string{"bad.ql:1:18: ERROR SEM3010:", "1 | let x : string = 5;", "^", "note:"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFailureRuntimePanic(t *testing.T) {
	var stdout bytes.Buffer
	res, err := driver.RunSource(context.Background(), "div.ql", []byte("print 1;\nprint 1 // 0;\n"), driver.Options{Stdout: &stdout})
	if err == nil {
		t.Fatalf("expected runtime error")
	}
	if stdout.String() != "1\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}

	var buf bytes.Buffer
	if rerr := renderFailure(&buf, diagFormatShort, err, res.Bag, res.FileSet, testOptions()); !errors.Is(rerr, errReported) {
		t.Fatalf("renderFailure = %v", rerr)
	}
	if !strings.HasPrefix(buf.String(), "panic VM1001 div.ql:2:7 ") {
		t.Fatalf("short output = %q", buf.String())
	}

	buf.Reset()
	if rerr := renderFailure(&buf, diagFormatJSON, err, res.Bag, res.FileSet, testOptions()); !errors.Is(rerr, errReported) {
		t.Fatalf("renderFailure = %v", rerr)
	}
	var doc diagfmt.DiagnosticsOutput
	if jerr := json.Unmarshal(buf.Bytes(), &doc); jerr != nil {
		t.Fatalf("bad json: %v\n%s", jerr, buf.String())
	}
	if doc.Count != 1 || doc.Diagnostics[0].Code != "VM1001" {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestRenderFailurePassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("disk on fire")
	if got := renderFailure(&bytes.Buffer{}, diagFormatPretty, plain, nil, nil, testOptions()); got != plain {
		t.Fatalf("renderFailure = %v, want original error", got)
	}
}

func TestWriteCheckReport(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ql")
	bad := filepath.Join(dir, "bad.ql")
	writeFile(t, good, "print 1;\n")
	writeFile(t, bad, "print y;\n")

	results, err := driver.CheckFiles(context.Background(), []string{bad, good}, driver.CheckOptions{Jobs: 2})
	if err != nil {
		t.Fatalf("CheckFiles: %v", err)
	}
	var buf bytes.Buffer
	failed, err := writeCheckReport(&buf, diagFormatShort, results, testOptions())
	if err != nil {
		t.Fatalf("writeCheckReport: %v", err)
	}
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	out := buf.String()
	if !strings.Contains(out, "SEM3005") || !strings.HasSuffix(out, "checked 2 file(s): 1 failed\n") {
		t.Fatalf("report = %q", out)
	}

	buf.Reset()
	failed, err = writeCheckJSON(&buf, results, globalOptions{baseDir: dir})
	if err != nil || failed != 1 {
		t.Fatalf("writeCheckJSON: failed=%d err=%v", failed, err)
	}
	var entries []checkFileJSON
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(entries) != 2 || entries[0].Path != "bad.ql" || entries[0].Diagnostics.Count != 1 || entries[1].Diagnostics.Count != 0 {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestDisplayPath(t *testing.T) {
	base := t.TempDir()
	if got := displayPath(filepath.Join(base, "a", "b.ql"), base); got != "a/b.ql" {
		t.Fatalf("displayPath = %q", got)
	}
	if got := displayPath("x.ql", ""); got != "x.ql" {
		t.Fatalf("displayPath without base = %q", got)
	}
}
