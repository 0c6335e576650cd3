package testkit

import (
	"context"
	"strings"
	"testing"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/source"
)

const goldenDir = "../../testdata/golden"

func TestGolden(t *testing.T) {
	cases, err := LoadCases(goldenDir)
	if err != nil {
		t.Fatalf("LoadCases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatalf("no golden cases in %s", goldenDir)
	}
	for _, c := range cases {
		t.Run(strings.TrimSuffix(c.File, ".yaml")+"/"+c.Name, func(t *testing.T) {
			if c.Skip != "" {
				t.Skip(c.Skip)
			}
			got, err := Run(context.Background(), c)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if err := c.Compare(got); err != nil {
				t.Errorf("%v\nsource:\n%s", err, c.Source)
			}
		})
	}
}

func TestDecodeCasesRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing name", "cases:\n  - source: \"print 1;\"\n", "missing name"},
		{"duplicate", "cases:\n  - name: a\n  - name: a\n", "duplicate"},
		{"bad position", "cases:\n  - name: a\n    error: SEM3010\n    at: \"1\"\n", "bad position"},
		{"position without error", "cases:\n  - name: a\n    at: \"1:2\"\n", "without error"},
		{"unknown key", "cases:\n  - name: a\n    stdot: \"x\"\n", "stdot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCases(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDecodeCasesEmpty(t *testing.T) {
	cases, err := DecodeCases(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 0 {
		t.Fatalf("got %d cases, want 0", len(cases))
	}
}

func TestCasePosition(t *testing.T) {
	c := Case{At: "12:7"}
	line, col, ok := c.Position()
	if !ok || line != 12 || col != 7 {
		t.Fatalf("Position() = %d, %d, %v", line, col, ok)
	}
	if _, _, ok := (Case{At: "x:1"}).Position(); ok {
		t.Fatalf("expected failure for non-numeric line")
	}
	if _, _, ok := (Case{}).Position(); ok {
		t.Fatalf("expected no position for empty At")
	}
}

func TestCompareReportsFirstDifference(t *testing.T) {
	c := Case{Name: "x", Stdout: "1\n", Error: "VM1001", At: "2:7"}
	if err := c.Compare(Outcome{Stdout: "1\n", Error: "VM1001", Line: 2, Col: 7}); err != nil {
		t.Fatalf("unexpected mismatch: %v", err)
	}
	if err := c.Compare(Outcome{Stdout: "", Error: "VM1001", Line: 2, Col: 7}); err == nil || !strings.Contains(err.Error(), "stdout") {
		t.Fatalf("expected stdout mismatch, got %v", err)
	}
	if err := c.Compare(Outcome{Stdout: "1\n", Error: "SEM3010", Line: 2, Col: 7}); err == nil || !strings.Contains(err.Error(), "error") {
		t.Fatalf("expected error mismatch, got %v", err)
	}
	if err := c.Compare(Outcome{Stdout: "1\n", Error: "VM1001", Line: 2, Col: 8}); err == nil || !strings.Contains(err.Error(), "2:8") {
		t.Fatalf("expected position mismatch, got %v", err)
	}
}

func parseSource(t *testing.T, src string) (*ast.Builder, ast.FileID, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("inv.ql", []byte(src))
	file := fs.Get(id)
	bag := diag.NewBag(8)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res, err := parser.ParseFile(context.Background(), fs, lx, builder, parser.Options{Reporter: reporter, MaxErrors: 8})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return builder, res.File, file
}

func TestSpanInvariantsHoldForParsedPrograms(t *testing.T) {
	programs := []string{
		"let x = 5;\nprint x;\n",
		"print (1 + 2) * -(3);",
		"let s = \"hello\";\nprint s[1:3] + s[0] + s[:-1];",
		"print [[1, 2], [3]];",
		"print \"a-b\".replace(\"-\" + \"+\").upper().len();",
	}
	for _, src := range programs {
		builder, fileID, file := parseSource(t, src)
		if err := CheckSpanInvariants(builder, fileID, file); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestSpanInvariantsDetectBrokenSpans(t *testing.T) {
	builder, fileID, file := parseSource(t, "print 1 + 2;")
	stmtID := builder.Files.Get(fileID).Stmts[0]
	pr, _ := builder.Stmts.Print(stmtID)
	bin, _ := builder.Exprs.Binary(pr.Value)
	// сдвигаем правый операнд за пределы родителя
	right := builder.Exprs.Get(bin.Right)
	right.Span.Start, right.Span.End = 20, 22
	if err := CheckSpanInvariants(builder, fileID, file); err == nil {
		t.Fatalf("expected violation for operand outside its parent")
	}
}

func TestSpanInvariantsNilInputs(t *testing.T) {
	if err := CheckSpanInvariants(nil, 0, nil); err == nil {
		t.Fatalf("expected error for nil inputs")
	}
}
