package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/source"
	"quill/internal/vm"
)

type diagFormat string

const (
	diagFormatPretty diagFormat = "pretty"
	diagFormatShort  diagFormat = "short"
	diagFormatJSON   diagFormat = "json"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "pretty":
		return diagFormatPretty, nil
	case "short":
		return diagFormatShort, nil
	case "json":
		return diagFormatJSON, nil
	default:
		return "", fmt.Errorf("unknown diagnostics format %q (expected pretty|short|json)", value)
	}
}

// renderDiagnostics prints bag in the requested format. Nothing is written
// for an empty bag except in JSON mode, which always emits a document.
func renderDiagnostics(w io.Writer, format diagFormat, bag *diag.Bag, fs *source.FileSet, g globalOptions) error {
	switch format {
	case diagFormatJSON:
		return diagfmt.JSON(w, bag, fs, g.jsonOpts())
	case diagFormatShort:
		if bag == nil || bag.Len() == 0 {
			return nil
		}
		_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, true))
		return err
	default:
		if bag == nil || bag.Len() == 0 {
			return nil
		}
		return diagfmt.Pretty(w, bag, fs, g.prettyOpts())
	}
}

// renderFailure reports the error returned by driver.Run or driver.Diagnose.
// It returns errReported when err was a program failure it could render.
func renderFailure(w io.Writer, format diagFormat, err error, bag *diag.Bag, fs *source.FileSet, g globalOptions) error {
	if _, ok := diag.AsError(err); ok {
		if bag == nil || bag.Len() == 0 {
			// ошибка без Bag: рендерим саму диагностику
			de, _ := diag.AsError(err)
			bag = diag.NewBag(1)
			bag.Add(de.Diag)
		}
		if rerr := renderDiagnostics(w, format, bag, fs, g); rerr != nil {
			return rerr
		}
		return errReported
	}
	var vmErr *vm.VMError
	if errors.As(err, &vmErr) {
		var rerr error
		switch format {
		case diagFormatShort:
			rerr = shortRuntime(w, vmErr, fs)
		case diagFormatJSON:
			rerr = diagfmt.JSONRuntime(w, vmErr.Code.String(), vmErr.Message, vmErr.Span, fs, g.jsonOpts())
		default:
			rerr = diagfmt.PrettyRuntime(w, vmErr.Code.String(), vmErr.Message, vmErr.Span, fs, g.prettyOpts())
		}
		if rerr != nil {
			return rerr
		}
		return errReported
	}
	return err
}

// shortRuntime mirrors the short diagnostic line: "panic VM1001 path:l:c msg".
func shortRuntime(w io.Writer, vmErr *vm.VMError, fs *source.FileSet) error {
	loc := "<no-span>"
	if fs != nil && int(vmErr.Span.File) < fs.Len() {
		start, _ := fs.Resolve(vmErr.Span)
		loc = fmt.Sprintf("%s:%d:%d", fs.Get(vmErr.Span.File).Path, start.Line, start.Col)
	}
	_, err := fmt.Fprintf(w, "panic %s %s %s\n", vmErr.Code, loc, vmErr.Message)
	return err
}
