package parser

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/token"
)

// parseStmt выбирает распознаватель по первому токену.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwPrint:
		return p.parsePrintStmt()
	default:
		p.err(diag.SynUnexpectedToken, p.unexpected("'let' or 'print'"))
		return ast.NoStmtID, false
	}
}

// parseLetStmt: let name (: Type)? = Expr ;
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance()

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, p.unexpected("identifier after 'let'"))
	if !ok {
		return ast.NoStmtID, false
	}

	typeID := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		if typeID, ok = p.parseType(); !ok {
			return ast.NoStmtID, false
		}
	}

	if _, ok = p.expect(token.Assign, diag.SynExpectAssign, p.unexpected("'=' in let statement")); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, p.unexpected("';' after let statement"))
	if !ok {
		return ast.NoStmtID, false
	}

	name := p.arenas.Strings.Intern(nameTok.Text)
	return p.arenas.Stmts.NewLet(letTok.Span.Cover(semi.Span), name, nameTok.Span, typeID, value), true
}

// parsePrintStmt: print Expr ;
func (p *Parser) parsePrintStmt() (ast.StmtID, bool) {
	printTok := p.advance()
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, p.unexpected("';' after print statement"))
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewPrint(printTok.Span.Cover(semi.Span), value), true
}
