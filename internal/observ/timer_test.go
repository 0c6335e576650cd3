package observ

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		t := base.Add(time.Duration(n) * step)
		n++
		return t
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	parse := tm.Begin("parse")
	tm.End(parse, "stmts=3")
	check := tm.Begin("check")
	tm.End(check, "")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d", len(rep.Phases))
	}
	if rep.TotalMS != 4 {
		t.Errorf("total = %v", rep.TotalMS)
	}
	p, ok := rep.Phase("parse")
	if !ok || p.DurationMS != 2 || p.Note != "stmts=3" {
		t.Errorf("parse phase = %+v,%v", p, ok)
	}
	if _, ok := rep.Phase("eval"); ok {
		t.Error("missing phase resolved")
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("x")
	tm.End(idx, "")
	if idx != -1 || len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer must be inert")
	}
}

func TestWriteSummary(t *testing.T) {
	rep := Report{TotalMS: 1.5, Phases: []PhaseReport{{Name: "eval", DurationMS: 1.5, Note: "printed=2"}}}
	var buf bytes.Buffer
	if err := rep.WriteSummary(&buf, "main.ql"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"main.ql:\n", "eval", "1.500 ms  // printed=2", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
