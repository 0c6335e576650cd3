package lexer

import (
	"quill/internal/token"
)

// scanNumber takes a digit-led run of digits and dots. Validation of the
// shape ("1.2.3", "4.") is the parser's job.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if !isDec(b) && b != '.' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
