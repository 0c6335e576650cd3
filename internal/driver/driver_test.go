package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/pipeline"
	"quill/internal/vm"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"variable", "let x = 5; print x;", "5\n"},
		{"slice", "let s = \"Hello\"; print s[1:3];", "el\n"},
		{"repeat", "print \"Hi\" * 3;", "HiHiHi\n"},
		{"list", "print [1, 2, 3];", "[1, 2, 3]\n"},
		{"promotion", "print 1 + 2.5;", "3.5\n"},
		{"methods", "let s = \"abc\"; print s.upper(); print s.len();", "ABC\n3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "main.ql", tt.src)
			var out bytes.Buffer
			if _, err := Run(context.Background(), path, Options{Stdout: &out}); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunSemanticErrorPrintsNothing(t *testing.T) {
	var out bytes.Buffer
	res, err := RunSource(context.Background(), "bad.ql", []byte("print 1;\nlet x : string = 5;\n"), Options{Stdout: &out})
	de, ok := diag.AsError(err)
	if !ok {
		t.Fatalf("expected *diag.Error, got %v", err)
	}
	if de.Code() != diag.SemaTypeMismatch {
		t.Errorf("code = %s", de.Code().ID())
	}
	if out.Len() != 0 {
		t.Errorf("nothing may be printed before a semantic error, got %q", out.String())
	}
	if res == nil || res.Bag.Len() != 1 {
		t.Fatalf("result must carry exactly one diagnostic")
	}
	if got := diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, false); !strings.HasPrefix(got, "error SEM3010 bad.ql:2:18 ") {
		t.Errorf("short diagnostics = %q", got)
	}
}

func TestRunRuntimeErrorKeepsOutput(t *testing.T) {
	var out bytes.Buffer
	_, err := RunSource(context.Background(), "div.ql", []byte("print \"before\";\nprint 1 // 0;\nprint \"after\";\n"), Options{Stdout: &out})
	var vmErr *vm.VMError
	if !errors.As(err, &vmErr) {
		t.Fatalf("expected *vm.VMError, got %v", err)
	}
	if vmErr.Code != vm.PanicDivisionByZero {
		t.Errorf("code = %s", vmErr.Code)
	}
	if out.String() != "before\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSyntaxAndLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing semicolon", "print 1", diag.SynExpectSemicolon},
		{"unknown char", "print @;", diag.LexUnknownChar},
		{"unterminated", "print \"abc;", diag.LexUnterminatedString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DiagnoseSource(context.Background(), "e.ql", []byte(tt.src), Options{})
			de, ok := diag.AsError(err)
			if !ok || de.Code() != tt.code {
				t.Fatalf("err = %v, want %s", err, tt.code.ID())
			}
			if res.Sema != nil {
				t.Error("sema must not run after a syntax error")
			}
			if res.Bag.Len() != 1 {
				t.Errorf("bag holds %d diagnostics", res.Bag.Len())
			}
		})
	}
}

func TestBadExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.txt", "print 1;")
	for name, call := range map[string]func() error{
		"run":      func() error { _, err := Run(context.Background(), path, Options{}); return err },
		"diagnose": func() error { _, err := Diagnose(context.Background(), path, Options{}); return err },
		"parse":    func() error { _, err := Parse(context.Background(), path, 0); return err },
		"tokenize": func() error { _, err := Tokenize(path, 0); return err },
	} {
		if err := call(); !errors.Is(err, ErrBadExtension) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Run(context.Background(), filepath.Join(t.TempDir(), "nope.ql"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestTokenizeCollectsLexErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "t.ql", "let a = 1 @ 2;")
	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("bag = %+v", res.Bag.Items())
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind.String() != "EOF" {
		t.Errorf("token stream must end with EOF, got %s", last.Kind)
	}
}

func TestTimingsAndProgress(t *testing.T) {
	var rec pipeline.Recorder
	var out bytes.Buffer
	res, err := RunSource(context.Background(), "p.ql", []byte("let a = 2; print a * a;"), Options{
		Stdout:   &out,
		Timings:  true,
		Progress: &rec,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, phase := range []string{"parse", "check", "eval"} {
		if _, ok := res.Timing.Phase(phase); !ok {
			t.Errorf("missing %s timing", phase)
		}
	}
	if p, _ := res.Timing.Phase("parse"); p.Note != "stmts=2" {
		t.Errorf("parse note = %q", p.Note)
	}
	last, ok := rec.Last("p.ql")
	if !ok || last.Stage != pipeline.StageRun || last.Status != pipeline.StatusDone {
		t.Errorf("last event = %+v", last)
	}
	file := res.Builder.Files.Get(res.FileID)
	pr, _ := res.Builder.Stmts.Print(file.Stmts[1])
	if got := res.TypeLabel(pr.Value); got != "i32" {
		t.Errorf("TypeLabel(a * a) = %q", got)
	}
}
