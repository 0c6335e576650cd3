package vm

import (
	"bytes"
	"context"
	"testing"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/sema"
	"quill/internal/source"
	"quill/internal/types"
)

// runProgram pushes src through parse, check and eval. Front-end failures
// fail the test; the VM error (if any) is returned with the output so far.
func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ql", []byte(src))
	bag := diag.NewBag(8)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	pr, err := parser.ParseFile(context.Background(), fs, lx, builder, parser.Options{Reporter: reporter})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := sema.Check(context.Background(), builder, pr.File, sema.Options{Reporter: reporter, Types: types.NewInterner()})
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	var out bytes.Buffer
	machine := New(builder, Options{Out: &out, Sema: &res})
	err = machine.Run(context.Background(), pr.File)
	return out.String(), err
}

func mustRun(t *testing.T, src string) string {
	t.Helper()
	out, err := runProgram(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return out
}

func expectPanic(t *testing.T, src string, code PanicCode) *VMError {
	t.Helper()
	_, err := runProgram(t, src)
	vmErr, ok := err.(*VMError)
	if !ok {
		t.Fatalf("expected *VMError %s, got %v", code, err)
	}
	if vmErr.Code != code {
		t.Fatalf("code = %s (%s), want %s", vmErr.Code, vmErr.Message, code)
	}
	return vmErr
}
