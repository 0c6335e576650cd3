package driver

import (
	"context"

	"fortio.org/safecast"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse lexes and parses path. A syntax error is returned as *diag.Error
// together with the partial result so the caller can render Bag.
func Parse(ctx context.Context, filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs, fileID, err := loadFile(filePath)
	if err != nil {
		return nil, err
	}
	return parseFile(ctx, fs, fileID, Options{MaxDiagnostics: maxDiagnostics})
}

func parseFile(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := &diag.BagReporter{Bag: bag}

	maxErrors, err := safecast.Conv[uint](opts.maxDiagnostics())
	if err != nil {
		return nil, err
	}

	lx := lexer.New(file, lexer.Options{Reporter: reporter, Comments: opts.Comments})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	result, err := parser.ParseFile(ctx, fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, err
}
