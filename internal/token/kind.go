package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks an erroneous token; a lex diagnostic accompanies it.
	Invalid Kind = iota
	// EOF marks the end of input. The lexer keeps returning it.
	EOF

	Ident  // name
	Number // 12, 3.5
	String // "text"

	KwLet    // let
	KwPrint  // print
	KwI8     // i8
	KwI16    // i16
	KwI32    // i32
	KwI64    // i64
	KwF32    // f32
	KwF64    // f64
	KwString // string
	KwList   // list

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	SlashSlash // //
	Percent    // %
	Assign     // =
	EqEq       // ==
	Bang       // !
	BangEq     // !=
	Lt         // <
	LtEq       // <=
	Gt         // >
	GtEq       // >=
	Amp        // &
	AndAnd     // &&
	Pipe       // |
	OrOr       // ||

	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	Number:     "Number",
	String:     "String",
	KwLet:      "KwLet",
	KwPrint:    "KwPrint",
	KwI8:       "KwI8",
	KwI16:      "KwI16",
	KwI32:      "KwI32",
	KwI64:      "KwI64",
	KwF32:      "KwF32",
	KwF64:      "KwF64",
	KwString:   "KwString",
	KwList:     "KwList",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	SlashSlash: "SlashSlash",
	Percent:    "Percent",
	Assign:     "Assign",
	EqEq:       "EqEq",
	Bang:       "Bang",
	BangEq:     "BangEq",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Gt:         "Gt",
	GtEq:       "GtEq",
	Amp:        "Amp",
	AndAnd:     "AndAnd",
	Pipe:       "Pipe",
	OrOr:       "OrOr",
	Colon:      "Colon",
	Semicolon:  "Semicolon",
	Comma:      "Comma",
	Dot:        "Dot",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
}

var kindLexemes = map[Kind]string{
	KwLet: "let", KwPrint: "print",
	KwI8: "i8", KwI16: "i16", KwI32: "i32", KwI64: "i64",
	KwF32: "f32", KwF64: "f64", KwString: "string", KwList: "list",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", SlashSlash: "//", Percent: "%",
	Assign: "=", EqEq: "==", Bang: "!", BangEq: "!=",
	Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	Amp: "&", AndAnd: "&&", Pipe: "|", OrOr: "||",
	Colon: ":", Semicolon: ";", Comma: ",", Dot: ".",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe renders the kind for diagnostics: the fixed lexeme when there is
// one, otherwise a lowercase category name.
func (k Kind) Describe() string {
	if lex, ok := kindLexemes[k]; ok {
		return "'" + lex + "'"
	}
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string literal"
	default:
		return "invalid token"
	}
}
