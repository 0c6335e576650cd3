package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates the closed set of type kinds.
type Kind uint8

const (
	// KindUnknown means "not resolved yet"; it never survives a successful check.
	KindUnknown Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsInteger reports i8, i16, i32 and i64.
func (k Kind) IsInteger() bool {
	return k >= KindI8 && k <= KindI64
}

// IsFloat reports f32 and f64.
func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}

// Width captures the precision of numeric kinds in bits.
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)

// Width returns the bit width of numeric kinds, WidthAny otherwise.
func (k Kind) Width() Width {
	switch k {
	case KindI8:
		return Width8
	case KindI16:
		return Width16
	case KindI32, KindF32:
		return Width32
	case KindI64, KindF64:
		return Width64
	default:
		return WidthAny
	}
}

// Type is a compact structural descriptor. Elem is set only for KindList and
// refers to another interned type, so element types are owned by id.
type Type struct {
	Kind Kind
	Elem TypeID
}

// Descriptor helpers ---------------------------------------------------------

// MakeInt describes a signed integer of the given width.
func MakeInt(width Width) Type {
	switch width {
	case Width8:
		return Type{Kind: KindI8}
	case Width16:
		return Type{Kind: KindI16}
	case Width64:
		return Type{Kind: KindI64}
	default:
		return Type{Kind: KindI32}
	}
}

// MakeFloat describes f32 or f64.
func MakeFloat(width Width) Type {
	if width == Width32 {
		return Type{Kind: KindF32}
	}
	return Type{Kind: KindF64}
}

// MakeList describes list[elem].
func MakeList(elem TypeID) Type {
	return Type{Kind: KindList, Elem: elem}
}
