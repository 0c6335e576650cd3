package token

var keywords = map[string]Kind{
	"let":    KwLet,
	"print":  KwPrint,
	"i8":     KwI8,
	"i16":    KwI16,
	"i32":    KwI32,
	"i64":    KwI64,
	"f32":    KwF32,
	"f64":    KwF64,
	"string": KwString,
	"list":   KwList,
}

// LookupKeyword reports whether ident is a keyword.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
