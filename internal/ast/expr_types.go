package ast

import (
	"quill/internal/source"
)

// ExprKind enumerates the expression variants. Consumers switch over it
// exhaustively; adding a kind means updating sema, vm and diagfmt.
type ExprKind uint8

const (
	ExprNumber ExprKind = iota
	ExprString
	ExprIdent
	ExprBinary
	ExprUnary
	ExprSlice
	ExprMethodCall
	ExprList
)

func (k ExprKind) String() string {
	switch k {
	case ExprNumber:
		return "Number"
	case ExprString:
		return "String"
	case ExprIdent:
		return "Ident"
	case ExprBinary:
		return "Binary"
	case ExprUnary:
		return "Unary"
	case ExprSlice:
		return "Slice"
	case ExprMethodCall:
		return "MethodCall"
	case ExprList:
		return "List"
	default:
		return "?"
	}
}

// Expr is a node header; per-kind data lives in a payload arena.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// Арифметические
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryFloorDiv
	ExprBinaryMod

	// Логические
	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	// Сравнения
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

// String returns the source spelling of the operator.
func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryFloorDiv:
		return "//"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryLogicalAnd:
		return "&&"
	case ExprBinaryLogicalOr:
		return "||"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	default:
		return "?"
	}
}

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	ExprUnaryMinus ExprUnaryOp = iota
	ExprUnaryNot
)

func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryMinus:
		return "-"
	case ExprUnaryNot:
		return "!"
	default:
		return "?"
	}
}

// ExprLitKind is the provisional type the parser attaches to a number literal.
type ExprLitKind uint8

const (
	ExprLitInt   ExprLitKind = iota // i32
	ExprLitFloat                    // f64
)

// ExprNumberData holds a parsed numeric literal.
type ExprNumberData struct {
	Kind  ExprLitKind
	Int   int64
	Float float64
	Raw   string
	// Synthetic marks the -1 end bound produced by desugaring s[i].
	Synthetic bool
}

// ExprStringData holds a decoded string literal.
type ExprStringData struct {
	Value string
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprSliceData describes subject[start:end]; absent bounds are NoExprID.
type ExprSliceData struct {
	Subject ExprID
	Start   ExprID
	End     ExprID
	// Index is set for the single-index form subject[start].
	Index bool
}

type ExprMethodCallData struct {
	Subject  ExprID
	Name     source.StringID
	NameSpan source.Span
	Args     []ExprID
}

type ExprListData struct {
	Elems []ExprID
}
