package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("dir/test.ql", []byte("let s = \"abc\";\nprint s.shout();\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SemaUnknownMethod, source.Span{File: fileID, Start: 23, End: 28}, "unknown method 'shout' on string").
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "'s' declared here"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("count = %d, len = %d", output.Count, len(output.Diagnostics))
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SEM3030" || d.Phase != "sema" {
		t.Errorf("header = %s %s %s", d.Severity, d.Code, d.Phase)
	}
	if d.Location.File != "test.ql" {
		t.Errorf("file = %q", d.Location.File)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 9 || d.Location.EndCol != 14 {
		t.Errorf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.StartCol != 5 {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestJSONWithoutPositionsAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("x.ql", []byte("print 1\n"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SynExpectSemicolon, source.Span{File: fileID, Start: 7, End: 7}, "expected ';'").
		WithNote(source.Span{File: fileID, Start: 0, End: 5}, "statement starts here"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	d := out.Diagnostics[0]
	if d.Location.StartLine != 0 || d.Location.StartCol != 0 {
		t.Errorf("positions leaked: %+v", d.Location)
	}
	if d.Location.StartByte != 7 {
		t.Errorf("start byte = %d", d.Location.StartByte)
	}
	if d.Notes != nil {
		t.Errorf("notes leaked: %+v", d.Notes)
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.ql", []byte("print a; print b; print c;"))
	bag := diag.NewBag(10)
	for _, off := range []uint32{6, 15, 24} {
		bag.Add(diag.NewError(diag.SemaUnresolvedSymbol, source.Span{File: fileID, Start: off, End: off + 1}, "undeclared identifier"))
	}
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("Max not applied: %d", out.Count)
	}
	if bag.Len() != 3 {
		t.Fatalf("bag must stay intact, len=%d", bag.Len())
	}
}

func TestJSONEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diag.NewBag(1), source.NewFileSet(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n  \"diagnostics\": [],\n  \"count\": 0\n}\n" {
		t.Errorf("empty output = %q", got)
	}
}

func TestJSONRuntime(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.ql", []byte("print 1 // 0;\n"))

	var buf bytes.Buffer
	if err := JSONRuntime(&buf, "VM1001", "division by zero", source.Span{File: fileID, Start: 6, End: 12}, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSONRuntime() error: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 {
		t.Fatalf("count = %d", output.Count)
	}
	d := output.Diagnostics[0]
	if d.Code != "VM1001" || d.Phase != "run" || d.Severity != "PANIC" {
		t.Errorf("header = %s %s %s", d.Severity, d.Code, d.Phase)
	}
	if d.Location.File != "main.ql" || d.Location.StartLine != 1 || d.Location.StartCol != 7 {
		t.Errorf("location = %+v", d.Location)
	}
}
