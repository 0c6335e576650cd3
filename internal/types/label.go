package types

// Label returns the user-facing spelling of a type, matching the
// annotation syntax: i32, string, list[list[f64]].
func Label(typesIn *Interner, id TypeID) string {
	return labelDepth(typesIn, id, 0)
}

func labelDepth(typesIn *Interner, id TypeID, depth int) string {
	if typesIn == nil || id == NoTypeID {
		return "?"
	}
	if depth > 16 {
		return "..."
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	if tt.Kind == KindList {
		return "list[" + labelDepth(typesIn, tt.Elem, depth+1) + "]"
	}
	return tt.Kind.String()
}
