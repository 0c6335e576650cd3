package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLevelScopes(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeStmt, false},
		{LevelDebug, ScopeStmt, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v", tt.level, tt.scope, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("DETAIL"); err != nil || lvl != LevelDetail {
		t.Fatalf("ParseLevel(DETAIL) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	root := Begin(tr, ScopeDriver, "run", 0)
	child := Begin(tr, ScopePass, "parse", root.ID())
	Begin(tr, ScopeStmt, "stmt:1", child.ID()).End("")
	child.WithExtra("stmts", "3").End("ok")
	root.End("")

	out := buf.String()
	if strings.Contains(out, "stmt:1") {
		t.Errorf("statement span leaked at phase level:\n%s", out)
	}
	for _, want := range []string{"→ run", "→ parse", "← parse (ok) {stmts=3}"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRingTracerSnapshotWraps(t *testing.T) {
	tr := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(tr, ScopeStmt, name, "", 0)
	}
	snap := tr.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context must yield Nop")
	}
	tr := NewRingTracer(4, LevelPhase)
	ctx := WithParent(WithTracer(context.Background(), tr), 7)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatal("tracer lost")
	}
	if ParentFromContext(ctx) != 7 {
		t.Fatal("parent lost")
	}
}

func TestNDJSONFormat(t *testing.T) {
	data := FormatEvent(&Event{Kind: KindPoint, Scope: ScopeFile, Name: "file:a.ql"}, FormatNDJSON)
	s := string(data)
	if !strings.HasSuffix(s, "\n") || !strings.Contains(s, `"scope":"file"`) {
		t.Fatalf("unexpected ndjson: %s", s)
	}
}

func TestNewPicksImplementation(t *testing.T) {
	if tr, err := New(Config{Level: LevelOff, RingSize: 8}); err != nil || tr != Nop {
		t.Fatalf("LevelOff = %T, %v; want Nop", tr, err)
	}
	tr, err := New(Config{Level: LevelDetail, RingSize: 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ring, ok := tr.(*RingTracer)
	if !ok {
		t.Fatalf("ring config gave %T", tr)
	}
	Point(ring, ScopeFile, "file:a.ql", "", 0)
	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(buf.String(), "file:a.ql") {
		t.Fatalf("dump lacks event:\n%s", buf.String())
	}

	buf.Reset()
	tr, err = New(Config{Level: LevelPhase, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := tr.(*StreamTracer); !ok {
		t.Fatalf("stream config gave %T", tr)
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format Format
		path   string
		want   Format
	}{
		{FormatAuto, "", FormatText},
		{FormatAuto, "out.ndjson", FormatNDJSON},
		{FormatAuto, "out.jsonl", FormatNDJSON},
		{FormatText, "out.ndjson", FormatText},
		{FormatNDJSON, "-", FormatNDJSON},
	}
	for _, tt := range tests {
		if got := ResolveFormat(tt.format, tt.path); got != tt.want {
			t.Errorf("ResolveFormat(%v, %q) = %v, want %v", tt.format, tt.path, got, tt.want)
		}
	}
}
