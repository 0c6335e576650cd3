package parser

import (
	"errors"
	"strconv"
	"strings"

	"quill/internal/ast"
	"quill/internal/diag"
)

// parseNumberLit: точка в тексте => f64, иначе i32.
func (p *Parser) parseNumberLit() (ast.ExprID, bool) {
	tok := p.advance()
	text := tok.Text

	if strings.Contains(text, ".") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.fail(diag.SynBadNumber, tok.Span, "malformed number literal "+strconv.Quote(text))
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewFloat(tok.Span, text, v), true
	}

	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			p.fail(diag.SynNumberOutOfRange, tok.Span, "integer literal "+text+" does not fit in i32")
		} else {
			p.fail(diag.SynBadNumber, tok.Span, "malformed number literal "+strconv.Quote(text))
		}
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewInt(tok.Span, text, v), true
}
