package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.Builder, ast.FileID, *diag.Bag, error) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ql", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	result, err := ParseFile(context.Background(), fs, lx, builder, Options{MaxErrors: 100, Reporter: reporter})
	if result.Bag == nil {
		result.Bag = bag
	}
	return builder, result.File, result.Bag, err
}

// mustParse parses input and renders every statement as an S-expression.
func mustParse(t *testing.T, input string) []string {
	t.Helper()
	builder, fileID, bag, err := parseSource(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v (%s)", err, diagnosticsSummary(bag))
	}
	file := builder.Files.Get(fileID)
	out := make([]string, len(file.Stmts))
	for i, id := range file.Stmts {
		out[i] = builder.StmtSExpr(id)
	}
	return out
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
