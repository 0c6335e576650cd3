package lexer

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"quill/internal/diag"
	"quill/internal/token"
)

// scanString reads a "..." literal. Text holds the decoded value.
// Escapes: \n \t \r \\ \"; any other escaped byte is kept as is.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var sb strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		switch b {
		case '"':
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: norm.NFC.String(sb.String())}
		case '\\':
			if lx.cursor.EOF() {
				continue
			}
			sb.WriteByte(unescape(lx.cursor.Bump()))
		default:
			sb.WriteByte(b)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func unescape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		// \\ и \" тоже сюда
		return b
	}
}
