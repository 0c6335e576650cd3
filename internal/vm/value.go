package vm

import (
	"quill/internal/types"
)

// ValueKind identifies the runtime representation of a Value.
type ValueKind uint8

const (
	VKInvalid ValueKind = iota
	VKInt               // i8..i64, kept inside the range of Type
	VKFloat             // f32 values are stored rounded to float32
	VKString
	VKList
)

func (k ValueKind) String() string {
	switch k {
	case VKInt:
		return "int"
	case VKFloat:
		return "float"
	case VKString:
		return "string"
	case VKList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is a runtime value tagged with its static type.
type Value struct {
	Kind  ValueKind
	Type  types.TypeID
	Int   int64
	Float float64
	Str   string
	List  []Value
}

// Symbol is a runtime binding.
type Symbol struct {
	Name  string
	Type  types.TypeID
	Value Value
}

func MakeInt(t types.TypeID, v int64) Value {
	return Value{Kind: VKInt, Type: t, Int: v}
}

func MakeFloat(t types.TypeID, v float64) Value {
	return Value{Kind: VKFloat, Type: t, Float: v}
}

func MakeString(t types.TypeID, s string) Value {
	return Value{Kind: VKString, Type: t, Str: s}
}

func MakeList(t types.TypeID, elems []Value) Value {
	return Value{Kind: VKList, Type: t, List: elems}
}

// IsNumeric reports whether v is an int or a float.
func (v Value) IsNumeric() bool {
	return v.Kind == VKInt || v.Kind == VKFloat
}

// AsFloat widens a numeric value to float64.
func (v Value) AsFloat() float64 {
	if v.Kind == VKFloat {
		return v.Float
	}
	return float64(v.Int)
}

// Truthy: zero is false, everything else is true.
func (v Value) Truthy() bool {
	switch v.Kind {
	case VKInt:
		return v.Int != 0
	case VKFloat:
		return v.Float != 0
	case VKString:
		return v.Str != ""
	case VKList:
		return len(v.List) != 0
	default:
		return false
	}
}
