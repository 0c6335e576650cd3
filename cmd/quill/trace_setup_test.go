package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quill/internal/trace"
)

func TestDumpRingWritesToOutputPath(t *testing.T) {
	ring := trace.NewRingTracer(4, trace.LevelDetail)
	trace.Point(ring, trace.ScopeFile, "file:main.ql", "", 0)
	trace.Point(ring, trace.ScopePass, "panic", "VM1001", 0)

	path := filepath.Join(t.TempDir(), "crash.ndjson")
	if err := dumpRing(ring, trace.Config{OutputPath: path}); err != nil {
		t.Fatalf("dumpRing: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("dump has %d lines, want 2:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "{") || !strings.Contains(lines[1], "VM1001") {
		t.Fatalf("unexpected ndjson dump:\n%s", data)
	}
}
