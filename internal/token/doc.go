// Package token defines lexical token kinds for Quill sources.
// Invariants:
//   - Token.Span covers the raw lexeme, quotes included for strings.
//   - Token.Text is the raw lexeme except for String tokens, where it holds
//     the decoded (unescaped, NFC) value.
//   - Scalar type names (i8 … f64, string, list) are keywords, not identifiers.
package token
