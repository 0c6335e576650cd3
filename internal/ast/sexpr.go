package ast

import (
	"strconv"
	"strings"
)

// SExpr renders an expression as a compact S-expression:
//
//	1 + 2 * 3        => (+ 1 (* 2 3))
//	s[1:]            => (slice s 1 _)
//	s[0]             => (index s 0)
//	s.replace(a + b) => (call s replace a b)
func (b *Builder) SExpr(id ExprID) string {
	var sb strings.Builder
	b.writeSExpr(&sb, id)
	return sb.String()
}

// StmtSExpr renders a statement: (let x i32 1), (print x).
func (b *Builder) StmtSExpr(id StmtID) string {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return "<nil>"
	}
	var sb strings.Builder
	switch stmt.Kind {
	case StmtLet:
		let, _ := b.Stmts.Let(id)
		sb.WriteString("(let ")
		sb.WriteString(b.Name(let.Name))
		if let.Type.IsValid() {
			sb.WriteByte(' ')
			sb.WriteString(b.TypeString(let.Type))
		}
		sb.WriteByte(' ')
		b.writeSExpr(&sb, let.Value)
		sb.WriteByte(')')
	case StmtPrint:
		pr, _ := b.Stmts.Print(id)
		sb.WriteString("(print ")
		b.writeSExpr(&sb, pr.Value)
		sb.WriteByte(')')
	}
	return sb.String()
}

// TypeString spells a type annotation back: list[list[i32]].
func (b *Builder) TypeString(id TypeID) string {
	te := b.Types.Get(id)
	if te == nil {
		return "?"
	}
	if te.Kind == TypeExprList {
		return "list[" + b.TypeString(te.Elem) + "]"
	}
	return te.Kind.String()
}

func (b *Builder) writeSExpr(sb *strings.Builder, id ExprID) {
	if !id.IsValid() {
		sb.WriteByte('_')
		return
	}
	expr := b.Exprs.Get(id)
	if expr == nil {
		sb.WriteString("<nil>")
		return
	}
	switch expr.Kind {
	case ExprNumber:
		num, _ := b.Exprs.Number(id)
		sb.WriteString(num.Raw)
	case ExprString:
		lit, _ := b.Exprs.StringLit(id)
		sb.WriteString(strconv.Quote(lit.Value))
	case ExprIdent:
		ident, _ := b.Exprs.Ident(id)
		sb.WriteString(b.Name(ident.Name))
	case ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		sb.WriteString("(" + bin.Op.String() + " ")
		b.writeSExpr(sb, bin.Left)
		sb.WriteByte(' ')
		b.writeSExpr(sb, bin.Right)
		sb.WriteByte(')')
	case ExprUnary:
		un, _ := b.Exprs.Unary(id)
		sb.WriteString("(" + un.Op.String() + " ")
		b.writeSExpr(sb, un.Operand)
		sb.WriteByte(')')
	case ExprSlice:
		sl, _ := b.Exprs.Slice(id)
		if sl.Index {
			sb.WriteString("(index ")
			b.writeSExpr(sb, sl.Subject)
			sb.WriteByte(' ')
			b.writeSExpr(sb, sl.Start)
			sb.WriteByte(')')
			return
		}
		sb.WriteString("(slice ")
		b.writeSExpr(sb, sl.Subject)
		sb.WriteByte(' ')
		b.writeSExpr(sb, sl.Start)
		sb.WriteByte(' ')
		b.writeSExpr(sb, sl.End)
		sb.WriteByte(')')
	case ExprMethodCall:
		call, _ := b.Exprs.MethodCall(id)
		sb.WriteString("(call ")
		b.writeSExpr(sb, call.Subject)
		sb.WriteByte(' ')
		sb.WriteString(b.Name(call.Name))
		for _, arg := range call.Args {
			sb.WriteByte(' ')
			b.writeSExpr(sb, arg)
		}
		sb.WriteByte(')')
	case ExprList:
		list, _ := b.Exprs.List(id)
		sb.WriteString("[")
		for i, elem := range list.Elems {
			if i > 0 {
				sb.WriteByte(' ')
			}
			b.writeSExpr(sb, elem)
		}
		sb.WriteString("]")
	}
}
