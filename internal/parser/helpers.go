package parser

import (
	"strconv"

	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan: лучший span для диагностики.
// На EOF указываем сразу после последнего съеденного токена.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect: ожидаем конкретный токен; иначе фатальная ошибка.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg)
	return token.Token{Kind: token.Invalid, Span: p.getDiagnosticSpan()}, false
}

// err репортит ошибку на текущем токене.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.fail(code, p.getDiagnosticSpan(), msg)
}

// fail фиксирует первую ошибку. Если лексер уже выдал Invalid токен,
// его диагностика и есть причина: повторно не репортим.
func (p *Parser) fail(code diag.Code, sp source.Span, msg string) bool {
	if p.failure != nil {
		return false
	}
	if p.at(token.Invalid) {
		if d, ok := p.lx.LastError(); ok {
			p.failure = diag.Fail(d)
			return false
		}
	}
	d := diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	p.failure = diag.Fail(d)
	return true
}

// unexpected строит "expected X, got Y" по текущему токену.
func (p *Parser) unexpected(what string) string {
	return "expected " + what + ", got " + p.lx.Peek().Kind.Describe()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
