package parser

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/token"
)

var scalarTypes = map[token.Kind]ast.TypeExprKind{
	token.KwI8:     ast.TypeExprI8,
	token.KwI16:    ast.TypeExprI16,
	token.KwI32:    ast.TypeExprI32,
	token.KwI64:    ast.TypeExprI64,
	token.KwF32:    ast.TypeExprF32,
	token.KwF64:    ast.TypeExprF64,
	token.KwString: ast.TypeExprString,
}

// parseType: скаляр или list[Type], рекурсивно.
func (p *Parser) parseType() (ast.TypeID, bool) {
	tok := p.lx.Peek()
	if kind, ok := scalarTypes[tok.Kind]; ok {
		p.advance()
		return p.arenas.Types.New(kind, tok.Span, ast.NoTypeID), true
	}
	if !p.at(token.KwList) {
		p.err(diag.SynExpectType, p.unexpected("type"))
		return ast.NoTypeID, false
	}

	listTok := p.advance()
	if _, ok := p.expect(token.LBracket, diag.SynExpectType, p.unexpected("'[' after 'list'")); !ok {
		return ast.NoTypeID, false
	}
	elem, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, p.unexpected("']' to close list type"))
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.New(ast.TypeExprList, listTok.Span.Cover(closeTok.Span), elem), true
}
