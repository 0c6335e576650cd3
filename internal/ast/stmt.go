package ast

import (
	"quill/internal/source"
)

type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtPrint
)

func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "Let"
	case StmtPrint:
		return "Print"
	default:
		return "?"
	}
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// LetStmt binds Name to Value; Type is NoTypeID when inferred.
type LetStmt struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Value    ExprID
}

type PrintStmt struct {
	Value ExprID
}

type Stmts struct {
	Arena  *Arena[Stmt]
	Lets   *Arena[LetStmt]
	Prints *Arena[PrintStmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:  NewArena[Stmt](capHint),
		Lets:   NewArena[LetStmt](capHint),
		Prints: NewArena[PrintStmt](capHint),
	}
}

func (s *Stmts) NewLet(span source.Span, name source.StringID, nameSpan source.Span, typ TypeID, value ExprID) StmtID {
	p := s.Lets.Allocate(LetStmt{Name: name, NameSpan: nameSpan, Type: typ, Value: value})
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtLet, Span: span, Payload: PayloadID(p)}))
}

func (s *Stmts) NewPrint(span source.Span, value ExprID) StmtID {
	p := s.Prints.Allocate(PrintStmt{Value: value})
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtPrint, Span: span, Payload: PayloadID(p)}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) Let(id StmtID) (*LetStmt, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(st.Payload)), true
}

func (s *Stmts) Print(id StmtID) (*PrintStmt, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtPrint {
		return nil, false
	}
	return s.Prints.Get(uint32(st.Payload)), true
}
