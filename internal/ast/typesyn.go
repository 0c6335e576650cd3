package ast

import (
	"quill/internal/source"
)

// TypeExprKind is the written form of a type annotation.
type TypeExprKind uint8

const (
	TypeExprI8 TypeExprKind = iota
	TypeExprI16
	TypeExprI32
	TypeExprI64
	TypeExprF32
	TypeExprF64
	TypeExprString
	TypeExprList
)

var typeExprNames = [...]string{
	TypeExprI8:     "i8",
	TypeExprI16:    "i16",
	TypeExprI32:    "i32",
	TypeExprI64:    "i64",
	TypeExprF32:    "f32",
	TypeExprF64:    "f64",
	TypeExprString: "string",
	TypeExprList:   "list",
}

func (k TypeExprKind) String() string {
	if int(k) < len(typeExprNames) {
		return typeExprNames[k]
	}
	return "?"
}

// TypeExpr is a type annotation node. Elem is set only for TypeExprList.
type TypeExpr struct {
	Kind TypeExprKind
	Span source.Span
	Elem TypeID
}

type TypeExprs struct {
	Arena *Arena[TypeExpr]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	return &TypeExprs{
		Arena: NewArena[TypeExpr](capHint),
	}
}

func (t *TypeExprs) New(kind TypeExprKind, span source.Span, elem TypeID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: kind, Span: span, Elem: elem}))
}

func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}
