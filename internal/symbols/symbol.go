package symbols

import (
	"quill/internal/source"
	"quill/internal/types"
)

// Binding is the checker-side symbol: a name with its static type.
type Binding struct {
	Name string
	Type types.TypeID
	Decl source.Span // name span of the latest let
	// Declared is set when the type came from an annotation.
	Declared bool
}

// Bindings is the checker's symbol table.
type Bindings = Table[Binding]

// NewBindings creates an empty checker table.
func NewBindings() *Bindings {
	return NewTable[Binding](16)
}
