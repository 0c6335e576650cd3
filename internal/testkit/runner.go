package testkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"quill/internal/diag"
	"quill/internal/driver"
	"quill/internal/source"
	"quill/internal/vm"
)

// Outcome is what a program actually did.
type Outcome struct {
	Stdout string
	Error  string // diagnostic or runtime code, "" on success
	Line   uint32
	Col    uint32
	Err    error
}

// Run executes c through the full pipeline.
func Run(ctx context.Context, c Case) (Outcome, error) {
	var out bytes.Buffer
	res, err := driver.RunSource(ctx, c.Name+".ql", []byte(c.Source), driver.Options{Stdout: &out})
	got := Outcome{Stdout: out.String(), Err: err}
	if res != nil && res.Builder != nil && res.Sema != nil {
		if ierr := CheckSpanInvariants(res.Builder, res.FileID, res.File); ierr != nil {
			return got, fmt.Errorf("span invariants: %w", ierr)
		}
	}
	if err == nil {
		return got, nil
	}

	var span source.Span
	var vmErr *vm.VMError
	if de, ok := diag.AsError(err); ok {
		got.Error = de.Code().ID()
		span = de.Diag.Primary
	} else if errors.As(err, &vmErr) {
		got.Error = vmErr.Code.String()
		span = vmErr.Span
	} else {
		return got, err
	}
	if res != nil && res.FileSet != nil {
		start, _ := res.FileSet.Resolve(span)
		got.Line, got.Col = start.Line, start.Col
	}
	return got, nil
}

// Compare reports the first difference between c and got.
func (c Case) Compare(got Outcome) error {
	if got.Stdout != c.Stdout {
		return fmt.Errorf("stdout = %q, want %q", got.Stdout, c.Stdout)
	}
	if got.Error != c.Error {
		if got.Err != nil {
			return fmt.Errorf("error = %q (%v), want %q", got.Error, got.Err, c.Error)
		}
		return fmt.Errorf("error = %q, want %q", got.Error, c.Error)
	}
	if line, col, ok := c.Position(); ok && (line != got.Line || col != got.Col) {
		return fmt.Errorf("error at %d:%d, want %s", got.Line, got.Col, c.At)
	}
	return nil
}
