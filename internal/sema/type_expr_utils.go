package sema

import (
	"fmt"
	"strconv"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/types"
)

func (tc *typeChecker) report(code diag.Code, span source.Span, format string, args ...any) {
	tc.failWith(diag.ReportError(tc.reporter, code, span, fmt.Sprintf(format, args...)))
}

// failWith emits b and records it as the fatal error; later calls are ignored.
func (tc *typeChecker) failWith(b *diag.ReportBuilder) {
	if tc.failure != nil || b == nil {
		return
	}
	tc.failure = diag.Fail(b.Emit())
}

func (tc *typeChecker) exprSpan(id ast.ExprID) source.Span {
	if expr := tc.builder.Exprs.Get(id); expr != nil {
		return expr.Span
	}
	return source.Span{}
}

func (tc *typeChecker) typeLabel(id types.TypeID) string {
	return types.Label(tc.types, id)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
