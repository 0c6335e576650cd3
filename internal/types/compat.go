package types

// Compatible is the symmetric relation that allows an operation or binding
// between two types without an explicit cast:
//   - equal kinds (lists: element types compatible),
//   - any two integers, any two floats, integer with float,
//   - string only with string.
func (in *Interner) Compatible(a, b TypeID) bool {
	ta, okA := in.Lookup(a)
	tb, okB := in.Lookup(b)
	if !okA || !okB {
		return false
	}
	if ta.Kind == KindUnknown || tb.Kind == KindUnknown {
		return false
	}
	if ta.Kind.IsNumeric() && tb.Kind.IsNumeric() {
		return true
	}
	if ta.Kind != tb.Kind {
		return false
	}
	if ta.Kind == KindList {
		return in.Compatible(ta.Elem, tb.Elem)
	}
	return true
}

// Promote selects the arithmetic result type: f64 wins over f32, f32 over
// integers, and every integer pair widens to i32.
func (in *Interner) Promote(a, b TypeID) TypeID {
	ka, kb := in.Kind(a), in.Kind(b)
	switch {
	case ka == KindF64 || kb == KindF64:
		return in.builtins.F64
	case ka == KindF32 || kb == KindF32:
		return in.builtins.F32
	default:
		return in.builtins.I32
	}
}

// Common returns the element type that holds values of both a and b without
// loss: the wider integer, the wider float when floats are involved, and the
// same rule per element for lists. Incompatible pairs yield NoTypeID.
func (in *Interner) Common(a, b TypeID) TypeID {
	if a == b {
		return a
	}
	if !in.Compatible(a, b) {
		return NoTypeID
	}
	ka, kb := in.Kind(a), in.Kind(b)
	switch {
	case ka == KindList:
		ea, _ := in.Elem(a)
		eb, _ := in.Elem(b)
		elem := in.Common(ea, eb)
		if elem == NoTypeID {
			return NoTypeID
		}
		return in.List(elem)
	case ka.IsFloat() || kb.IsFloat():
		if ka == KindF64 || kb == KindF64 {
			return in.builtins.F64
		}
		return in.builtins.F32
	case ka.Width() >= kb.Width():
		return a
	default:
		return b
	}
}
