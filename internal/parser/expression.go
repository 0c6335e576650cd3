package parser

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precLogicalOr)
}

// parseBinaryExpr: precedence climbing. Все уровни левоассоциативны,
// поэтому правая часть парсится с prec+1.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()
		prec := getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec {
			break
		}
		opTok := p.advance()

		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}

		op, _ := tokenKindToBinaryOp(opTok.Kind)
		finalSpan := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(finalSpan, op, left, right)
	}

	return left, true
}

// parseUnaryExpr: '-' и '!' правоассоциативны, затем postfix.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}

	var prefixes []prefixOp
	for {
		op, ok := getUnaryOperator(p.lx.Peek().Kind)
		if !ok {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// применяем префиксы справа налево
	for i := len(prefixes) - 1; i >= 0; i-- {
		finalSpan := prefixes[i].span.Cover(p.arenas.Exprs.Get(expr).Span)
		expr = p.arenas.Exprs.NewUnary(finalSpan, prefixes[i].op, expr)
	}
	return expr, true
}

// parsePrimaryExpr: число, строка, идентификатор, (expr), [list].
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Number:
		return p.parseNumberLit()

	case token.String:
		p.advance()
		return p.arenas.Exprs.NewString(tok.Span, tok.Text), true

	case token.Ident:
		p.advance()
		name := p.arenas.Strings.Intern(tok.Text)
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, p.unexpected("')' to close '('")); !ok {
			return ast.NoExprID, false
		}
		// скобки не создают узла, только расширяют span
		p.arenas.Exprs.Get(inner).Span = open.Span.Cover(p.lastSpan)
		return inner, true

	case token.LBracket:
		return p.parseListLit()

	default:
		p.err(diag.SynExpectExpression, p.unexpected("expression"))
		return ast.NoExprID, false
	}
}

// parseListLit: '[' (expr (',' expr)*)? ']'
func (p *Parser) parseListLit() (ast.ExprID, bool) {
	open := p.advance()
	var elems []ast.ExprID
	if !p.at(token.RBracket) {
		for {
			elem, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			elems = append(elems, elem)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, p.unexpected("',' or ']' in list literal"))
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewList(open.Span.Cover(closeTok.Span), elems), true
}
