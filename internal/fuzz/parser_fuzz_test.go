package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/driver"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/source"
	"quill/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input. Longer means the
// parser is most likely looping.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang parses arbitrary input under a deadline; inputs that
// parse cleanly must satisfy the span invariants.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("let x = 1\nlet y = 2;"))
	f.Add([]byte("print [[[[[[[[1]]]]]]]];"))
	f.Add([]byte("print s[1:2:3];"))
	f.Add([]byte("print a.b.c.d(e + f + g);"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		type outcome struct {
			builder *ast.Builder
			file    *source.File
			fileID  ast.FileID
			err     error
		}
		done := make(chan outcome, 1)
		go func() {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.ql", input)
			file := fs.Get(fileID)

			reporter := &diag.BagReporter{Bag: diag.NewBag(128)}
			lx := lexer.New(file, lexer.Options{Reporter: reporter})
			builder := ast.NewBuilder(ast.Hints{}, nil)
			res, err := parser.ParseFile(ctx, fs, lx, builder, parser.Options{Reporter: reporter, MaxErrors: 128})
			done <- outcome{builder: builder, file: file, fileID: res.File, err: err}
		}()

		select {
		case out := <-done:
			if out.err != nil {
				if _, ok := diag.AsError(out.err); !ok && !errors.Is(out.err, context.DeadlineExceeded) {
					t.Fatalf("unexpected error type %T: %v", out.err, out.err)
				}
				return
			}
			if err := testkit.CheckSpanInvariants(out.builder, out.fileID, out.file); err != nil {
				t.Fatalf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
			}
		case <-time.After(parseTimeout + time.Second):
			t.Fatalf("parser hang detected after %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzCheckSource runs the whole front end. Failures must surface as
// diagnostics, never as panics or foreign errors.
func FuzzCheckSource(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		res, err := driver.DiagnoseSource(context.Background(), "fuzz.ql", input, driver.Options{MaxDiagnostics: 32})
		if err == nil {
			if res == nil || res.Sema == nil {
				t.Fatalf("successful check without sema result")
			}
			return
		}
		if _, ok := diag.AsError(err); !ok {
			t.Fatalf("unexpected error type %T: %v", err, err)
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
