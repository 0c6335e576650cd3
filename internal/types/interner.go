package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the scalar kinds.
type Builtins struct {
	Unknown TypeID
	I8      TypeID
	I16     TypeID
	I32     TypeID
	I64     TypeID
	F32     TypeID
	F64     TypeID
	String  TypeID
}

// Interner provides stable TypeIDs for structural descriptors.
type Interner struct {
	types    []Type
	index    map[Type]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with the scalar types.
// Index 0 is reserved for NoTypeID.
func NewInterner() *Interner {
	in := &Interner{
		types: make([]Type, 1, 16),
		index: make(map[Type]TypeID, 16),
	}
	in.builtins = Builtins{
		Unknown: in.Intern(Type{Kind: KindUnknown}),
		I8:      in.Intern(MakeInt(Width8)),
		I16:     in.Intern(MakeInt(Width16)),
		I32:     in.Intern(MakeInt(Width32)),
		I64:     in.Intern(MakeInt(Width64)),
		F32:     in.Intern(MakeFloat(Width32)),
		F64:     in.Intern(MakeFloat(Width64)),
		String:  in.Intern(Type{Kind: KindString}),
	}
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern returns the id of t, registering it on first use.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind != KindList {
		t.Elem = NoTypeID
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

// List interns list[elem]. elem must be a valid id.
func (in *Interner) List(elem TypeID) TypeID {
	if elem == NoTypeID {
		panic("types: list element type is required")
	}
	return in.Intern(MakeList(elem))
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// Kind returns the kind of id, KindUnknown for invalid ids.
func (in *Interner) Kind(id TypeID) Kind {
	t, ok := in.Lookup(id)
	if !ok {
		return KindUnknown
	}
	return t.Kind
}

// Elem returns the element type of a list.
func (in *Interner) Elem(id TypeID) (TypeID, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindList {
		return NoTypeID, false
	}
	return t.Elem, true
}

// Scalar returns the builtin id for a scalar kind.
func (in *Interner) Scalar(k Kind) (TypeID, bool) {
	switch k {
	case KindUnknown:
		return in.builtins.Unknown, true
	case KindI8:
		return in.builtins.I8, true
	case KindI16:
		return in.builtins.I16, true
	case KindI32:
		return in.builtins.I32, true
	case KindI64:
		return in.builtins.I64, true
	case KindF32:
		return in.builtins.F32, true
	case KindF64:
		return in.builtins.F64, true
	case KindString:
		return in.builtins.String, true
	default:
		return NoTypeID, false
	}
}
