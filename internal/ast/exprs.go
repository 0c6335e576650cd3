package ast

import (
	"quill/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Numbers  *Arena[ExprNumberData]
	Literals *Arena[ExprStringData]
	Idents   *Arena[ExprIdentData]
	Binaries *Arena[ExprBinaryData]
	Unaries  *Arena[ExprUnaryData]
	Slices   *Arena[ExprSliceData]
	Methods  *Arena[ExprMethodCallData]
	Lists    *Arena[ExprListData]
}

// NewExprs creates per-kind arenas; capHint 0 means 1<<8.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Numbers:  NewArena[ExprNumberData](capHint),
		Literals: NewArena[ExprStringData](small),
		Idents:   NewArena[ExprIdentData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Unaries:  NewArena[ExprUnaryData](small),
		Slices:   NewArena[ExprSliceData](small),
		Methods:  NewArena[ExprMethodCallData](small),
		Lists:    NewArena[ExprListData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression header or nil.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Len reports the number of allocated expressions.
func (e *Exprs) Len() uint32 {
	return e.Arena.Len()
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

func (e *Exprs) NewInt(span source.Span, raw string, v int64) ExprID {
	p := e.Numbers.Allocate(ExprNumberData{Kind: ExprLitInt, Int: v, Raw: raw})
	return e.new(ExprNumber, span, p)
}

func (e *Exprs) NewFloat(span source.Span, raw string, v float64) ExprID {
	p := e.Numbers.Allocate(ExprNumberData{Kind: ExprLitFloat, Float: v, Raw: raw})
	return e.new(ExprNumber, span, p)
}

// NewIndexEnd creates the synthetic -1 end bound of a single-index slice.
func (e *Exprs) NewIndexEnd(span source.Span) ExprID {
	p := e.Numbers.Allocate(ExprNumberData{Kind: ExprLitInt, Int: -1, Raw: "-1", Synthetic: true})
	return e.new(ExprNumber, span, p)
}

func (e *Exprs) Number(id ExprID) (*ExprNumberData, bool) {
	p, ok := e.payload(id, ExprNumber)
	if !ok {
		return nil, false
	}
	return e.Numbers.Get(p), true
}

func (e *Exprs) NewString(span source.Span, value string) ExprID {
	return e.new(ExprString, span, e.Literals.Allocate(ExprStringData{Value: value}))
}

func (e *Exprs) StringLit(id ExprID) (*ExprStringData, bool) {
	p, ok := e.payload(id, ExprString)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	p := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, p)
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	p := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, p)
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewSlice(span source.Span, subject, start, end ExprID, index bool) ExprID {
	p := e.Slices.Allocate(ExprSliceData{Subject: subject, Start: start, End: end, Index: index})
	return e.new(ExprSlice, span, p)
}

func (e *Exprs) Slice(id ExprID) (*ExprSliceData, bool) {
	p, ok := e.payload(id, ExprSlice)
	if !ok {
		return nil, false
	}
	return e.Slices.Get(p), true
}

func (e *Exprs) NewMethodCall(span source.Span, subject ExprID, name source.StringID, nameSpan source.Span, args []ExprID) ExprID {
	p := e.Methods.Allocate(ExprMethodCallData{Subject: subject, Name: name, NameSpan: nameSpan, Args: args})
	return e.new(ExprMethodCall, span, p)
}

func (e *Exprs) MethodCall(id ExprID) (*ExprMethodCallData, bool) {
	p, ok := e.payload(id, ExprMethodCall)
	if !ok {
		return nil, false
	}
	return e.Methods.Get(p), true
}

func (e *Exprs) NewList(span source.Span, elems []ExprID) ExprID {
	return e.new(ExprList, span, e.Lists.Allocate(ExprListData{Elems: elems}))
}

func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	p, ok := e.payload(id, ExprList)
	if !ok {
		return nil, false
	}
	return e.Lists.Get(p), true
}
