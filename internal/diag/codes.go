package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedParen     Code = 2006
	SynUnclosedBracket   Code = 2008
	SynExpectSemicolon   Code = 2012
	SynExpectIdentifier  Code = 2102
	SynExpectType        Code = 2202
	SynExpectExpression  Code = 2203
	SynExpectAssign      Code = 2210
	SynExpectLParen      Code = 2211
	SynBadNumber         Code = 2220
	SynNumberOutOfRange  Code = 2221
	SynExpectMethodName  Code = 2230
	SynExpectSliceCloser Code = 2231

	// Семантические
	SemaInfo                  Code = 3000
	SemaError                 Code = 3001
	SemaUnresolvedSymbol      Code = 3005
	SemaTypeMismatch          Code = 3010
	SemaInvalidBinaryOperands Code = 3011
	SemaInvalidUnaryOperand   Code = 3012
	SemaListElementMismatch   Code = 3013
	SemaSliceSubject          Code = 3020
	SemaSliceBound            Code = 3021
	SemaUnknownMethod         Code = 3030
	SemaMethodArity           Code = 3031
	SemaMethodArgType         Code = 3032
	SemaMethodSubject         Code = 3033

	// IO / driver
	IOLoadFileError Code = 4001
	IOBadExtension  Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	LexInfo:                   "Lexical information",
	LexUnknownChar:            "Unknown character",
	LexUnterminatedString:     "Unterminated string literal",
	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynUnclosedParen:          "Unclosed parenthesis",
	SynUnclosedBracket:        "Unclosed bracket",
	SynExpectSemicolon:        "Expected semicolon",
	SynExpectIdentifier:       "Expected identifier",
	SynExpectType:             "Expected type",
	SynExpectExpression:       "Expected expression",
	SynExpectAssign:           "Expected '='",
	SynExpectLParen:           "Expected '('",
	SynBadNumber:              "Malformed number literal",
	SynNumberOutOfRange:       "Number literal out of range",
	SynExpectMethodName:       "Expected method name",
	SynExpectSliceCloser:      "Expected ']' or ':' in slice",
	SemaInfo:                  "Semantic information",
	SemaError:                 "Semantic error",
	SemaUnresolvedSymbol:      "Undeclared identifier",
	SemaTypeMismatch:          "Type mismatch",
	SemaInvalidBinaryOperands: "Invalid operands for binary operator",
	SemaInvalidUnaryOperand:   "Invalid operand for unary operator",
	SemaListElementMismatch:   "Incompatible list element",
	SemaSliceSubject:          "Slice of a non-string value",
	SemaSliceBound:            "Slice bound must be an integer",
	SemaUnknownMethod:         "Unknown method",
	SemaMethodArity:           "Wrong number of method arguments",
	SemaMethodArgType:         "Invalid method argument type",
	SemaMethodSubject:         "Method not defined for this type",
	IOLoadFileError:           "Failed to load file",
	IOBadExtension:            "Unsupported file extension",
}

// ID renders the stable textual code, e.g. SEM3005.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Phase names the pipeline stage a code belongs to.
func (c Code) Phase() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return "lex"
	case ic >= 2000 && ic < 3000:
		return "parse"
	case ic >= 3000 && ic < 4000:
		return "sema"
	case ic >= 4000 && ic < 5000:
		return "io"
	}
	return "unknown"
}
