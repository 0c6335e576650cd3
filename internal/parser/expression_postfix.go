package parser

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/token"
)

// parsePostfixExpr: primary, затем цепочка из [..] и .name(...) слева направо.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LBracket:
			expr, ok = p.parseSliceSuffix(expr)
		case token.Dot:
			expr, ok = p.parseMethodSuffix(expr)
		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

// parseSliceSuffix разбирает s[a:b], s[:b], s[a:], s[:] и s[a].
// s[a] сворачивается в срез с синтетической правой границей.
func (p *Parser) parseSliceSuffix(subject ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '['

	start := ast.NoExprID
	if !p.at(token.Colon) {
		var ok bool
		if start, ok = p.parseExpr(); !ok {
			return ast.NoExprID, false
		}
		if !p.at(token.Colon) {
			closeTok, ok := p.expect(token.RBracket, diag.SynExpectSliceCloser, p.unexpected("':' or ']' in slice"))
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(subject).Span.Cover(closeTok.Span)
			end := p.arenas.Exprs.NewIndexEnd(closeTok.Span)
			return p.arenas.Exprs.NewSlice(span, subject, start, end, true), true
		}
	}
	p.advance() // ':'

	end := ast.NoExprID
	if !p.at(token.RBracket) {
		var ok bool
		if end, ok = p.parseExpr(); !ok {
			return ast.NoExprID, false
		}
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, p.unexpected("']' to close slice"))
	if !ok {
		return ast.NoExprID, false
	}
	span := p.arenas.Exprs.Get(subject).Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewSlice(span, subject, start, end, false), true
}

// parseMethodSuffix разбирает .name(arg + arg ...).
// Аргументы разделяются '+', поэтому каждый парсится выше аддитивного уровня:
// s.replace("a" + "b"): два аргумента, а не конкатенация.
func (p *Parser) parseMethodSuffix(subject ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '.'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectMethodName, p.unexpected("method name after '.'"))
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok = p.expect(token.LParen, diag.SynExpectLParen, p.unexpected("'(' after method name")); !ok {
		return ast.NoExprID, false
	}

	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseBinaryExpr(precMultiplicative)
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Plus) {
				break
			}
			p.advance()
		}
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, p.unexpected("'+' or ')' in method arguments"))
	if !ok {
		return ast.NoExprID, false
	}

	name := p.arenas.Strings.Intern(nameTok.Text)
	span := p.arenas.Exprs.Get(subject).Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewMethodCall(span, subject, name, nameTok.Span, args), true
}
