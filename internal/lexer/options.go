package lexer

import (
	"quill/internal/diag"
	"quill/internal/source"
)

type Options struct {
	// Reporter receives lex errors; nil drops them (the Invalid token still flows).
	Reporter diag.Reporter
	// Comments enables '#' line comments.
	Comments bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.errs++
	d := diag.NewError(code, sp, msg)
	lx.last = &d
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// LastError returns the most recent lex diagnostic, if any.
func (lx *Lexer) LastError() (diag.Diagnostic, bool) {
	if lx.last == nil {
		return diag.Diagnostic{}, false
	}
	return *lx.last, true
}
