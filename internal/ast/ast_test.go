package ast

import (
	"testing"

	"quill/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](2)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must be empty")
	}
	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 || a.Len() != 2 {
		t.Fatalf("ids = %d, %d, len = %d", first, second, a.Len())
	}
	*a.Get(first) = 11
	if got := *a.Get(1); got != 11 {
		t.Fatalf("Get(1) = %d after write", got)
	}
	if a.Get(3) != nil {
		t.Fatalf("out of range id must be nil")
	}
}

func TestPayloadKindIsChecked(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	num := b.Exprs.NewInt(sp(0, 1), "1", 1)
	if _, ok := b.Exprs.StringLit(num); ok {
		t.Fatalf("number must not decode as string literal")
	}
	if _, ok := b.Exprs.Binary(NoExprID); ok {
		t.Fatalf("NoExprID must not decode")
	}
	data, ok := b.Exprs.Number(num)
	if !ok || data.Int != 1 || data.Synthetic {
		t.Fatalf("Number() = %+v, %v", data, ok)
	}
}

func TestSExpr(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	s := b.Strings.Intern("s")
	subject := func() ExprID { return b.Exprs.NewIdent(sp(0, 1), s) }

	sum := b.Exprs.NewBinary(sp(0, 9), ExprBinaryAdd,
		b.Exprs.NewInt(sp(0, 1), "1", 1),
		b.Exprs.NewBinary(sp(4, 9), ExprBinaryMul, b.Exprs.NewInt(sp(4, 5), "2", 2), b.Exprs.NewInt(sp(8, 9), "3", 3)))
	slice := b.Exprs.NewSlice(sp(0, 5), subject(), b.Exprs.NewInt(sp(2, 3), "1", 1), NoExprID, false)
	index := b.Exprs.NewSlice(sp(0, 4), subject(), b.Exprs.NewInt(sp(2, 3), "0", 0), b.Exprs.NewIndexEnd(sp(3, 4)), true)
	call := b.Exprs.NewMethodCall(sp(0, 20), subject(), b.Strings.Intern("replace"), sp(2, 9),
		[]ExprID{b.Exprs.NewString(sp(10, 13), "a"), b.Exprs.NewString(sp(16, 19), "b")})
	neg := b.Exprs.NewUnary(sp(0, 4), ExprUnaryMinus, b.Exprs.NewFloat(sp(1, 4), "2.5", 2.5))
	list := b.Exprs.NewList(sp(0, 6), []ExprID{b.Exprs.NewInt(sp(1, 2), "1", 1), b.Exprs.NewList(sp(4, 6), nil)})

	tests := []struct {
		id   ExprID
		want string
	}{
		{sum, "(+ 1 (* 2 3))"},
		{slice, "(slice s 1 _)"},
		{index, "(index s 0)"},
		{call, `(call s replace "a" "b")`},
		{neg, "(- 2.5)"},
		{list, "[1 []]"},
		{NoExprID, "_"},
	}
	for _, tt := range tests {
		if got := b.SExpr(tt.id); got != tt.want {
			t.Errorf("SExpr = %s, want %s", got, tt.want)
		}
	}
}

func TestStmtSExprAndTypeString(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	file := b.NewFile(sp(0, 40))
	inner := b.Types.New(TypeExprString, sp(12, 18), NoTypeID)
	listType := b.Types.New(TypeExprList, sp(7, 19), inner)
	let := b.Stmts.NewLet(sp(0, 25), b.Strings.Intern("x"), sp(4, 5), listType, b.Exprs.NewList(sp(22, 24), nil))
	pr := b.Stmts.NewPrint(sp(26, 34), b.Exprs.NewIdent(sp(32, 33), b.Strings.Intern("x")))
	b.PushStmt(file, let)
	b.PushStmt(file, pr)

	if got := b.TypeString(listType); got != "list[string]" {
		t.Fatalf("TypeString = %s", got)
	}
	if got := b.StmtSExpr(let); got != "(let x list[string] [])" {
		t.Fatalf("let = %s", got)
	}
	if got := b.StmtSExpr(pr); got != "(print x)" {
		t.Fatalf("print = %s", got)
	}
	if got := len(b.Files.Get(file).Stmts); got != 2 {
		t.Fatalf("file has %d stmts", got)
	}
	if _, ok := b.Stmts.Print(let); ok {
		t.Fatalf("let must not decode as print")
	}
}

func TestOperatorStrings(t *testing.T) {
	if ExprBinaryFloorDiv.String() != "//" || ExprBinaryLogicalOr.String() != "||" || ExprUnaryNot.String() != "!" {
		t.Fatalf("unexpected operator spelling")
	}
	if ExprBinaryOp(200).String() != "?" {
		t.Fatalf("unknown operator must print ?")
	}
}
