// Package driver wires the lexer, parser, checker and evaluator together
// for files on disk and in-memory sources.
package driver

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"quill/internal/pipeline"
	"quill/internal/source"
)

// SourceExt is the only extension accepted for files on disk.
const SourceExt = ".ql"

const defaultMaxDiagnostics = 64

// ErrBadExtension is wrapped by every path-based entry point when the file
// does not end in SourceExt.
var ErrBadExtension = errors.New("unsupported file extension")

// Options control a single-file invocation.
type Options struct {
	MaxDiagnostics int
	// Stdout receives print output; nil discards it.
	Stdout io.Writer
	// Comments enables '#' line comments in the lexer.
	Comments bool
	// Timings records per-phase durations into the result.
	Timings bool
	// Progress receives stage events keyed by Display (or the file path).
	Progress pipeline.ProgressSink
	Display  string
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func checkExtension(path string) error {
	if filepath.Ext(path) != SourceExt {
		return fmt.Errorf("%w: %q (expected %s)", ErrBadExtension, path, SourceExt)
	}
	return nil
}

// loadFile validates the extension and reads path into a fresh FileSet.
func loadFile(path string) (*source.FileSet, source.FileID, error) {
	if err := checkExtension(path); err != nil {
		return nil, 0, err
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", path, err)
	}
	return fs, id, nil
}
