package token

import (
	"quill/internal/source"
)

// Token is a single lexeme with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Pos  source.LineCol // position of the first byte
}

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number || t.Kind == String
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwLet && t.Kind <= KwList
}

// IsTypeKeyword reports whether the token starts a type annotation.
func (t Token) IsTypeKeyword() bool {
	return t.Kind >= KwI8 && t.Kind <= KwList
}

// IsPunctOrOp reports whether the token is an operator or punctuation.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= RBracket
}
