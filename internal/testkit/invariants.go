package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"quill/internal/ast"
	"quill/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
//  1. file.Span lies within the content and covers every statement
//  2. statement spans are non-empty, ordered and do not overlap
//  3. every expression span is non-empty and nested inside its parent's,
//     except the synthetic end bound of s[i] which borrows the index span
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	var prevEnd uint32
	for i, id := range f.Stmts {
		stmt := b.Stmts.Get(id)
		if stmt == nil {
			return fmt.Errorf("nil stmt for id=%d", id)
		}
		sp := stmt.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty stmt span: %v", sp)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("stmt span %v is outside file span %v", sp, f.Span)
		}
		if i > 0 && sp.Start < prevEnd {
			return fmt.Errorf("stmt %d overlaps its predecessor: %v", i, sp)
		}
		prevEnd = sp.End

		var value ast.ExprID
		switch stmt.Kind {
		case ast.StmtLet:
			let, _ := b.Stmts.Let(id)
			value = let.Value
		case ast.StmtPrint:
			pr, _ := b.Stmts.Print(id)
			value = pr.Value
		}
		if err := checkExprSpan(b, value, sp); err != nil {
			return fmt.Errorf("stmt %d: %w", i, err)
		}
	}
	return nil
}

func checkExprSpan(b *ast.Builder, id ast.ExprID, parent source.Span) error {
	if !id.IsValid() {
		return nil
	}
	expr := b.Exprs.Get(id)
	if expr == nil {
		return fmt.Errorf("nil expr for id=%d", id)
	}
	sp := expr.Span
	if num, ok := b.Exprs.Number(id); ok && num.Synthetic {
		return nil
	}
	if sp.End <= sp.Start {
		return fmt.Errorf("empty %s span: %v", expr.Kind, sp)
	}
	if sp.Start < parent.Start || sp.End > parent.End {
		return fmt.Errorf("%s span %v escapes parent %v", expr.Kind, sp, parent)
	}

	var children []ast.ExprID
	switch expr.Kind {
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		children = []ast.ExprID{bin.Left, bin.Right}
	case ast.ExprUnary:
		un, _ := b.Exprs.Unary(id)
		children = []ast.ExprID{un.Operand}
	case ast.ExprSlice:
		sl, _ := b.Exprs.Slice(id)
		children = []ast.ExprID{sl.Subject, sl.Start, sl.End}
	case ast.ExprMethodCall:
		call, _ := b.Exprs.MethodCall(id)
		children = append([]ast.ExprID{call.Subject}, call.Args...)
	case ast.ExprList:
		list, _ := b.Exprs.List(id)
		children = list.Elems
	}
	for _, child := range children {
		if err := checkExprSpan(b, child, sp); err != nil {
			return err
		}
	}
	return nil
}
