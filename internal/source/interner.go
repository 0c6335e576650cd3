package source

// StringID is a handle to an interned identifier.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier names so AST nodes only carry ids.
type Interner struct {
	byID  []string // byID[0] == "" for NoStringID
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the id of s, adding it when unseen.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	// own copy so the source buffer can be released
	owned := string([]byte(s))
	id := StringID(len(i.byID)) //nolint:gosec // bounded by source size
	i.byID = append(i.byID, owned)
	i.index[owned] = id
	return id
}

// Lookup returns the string for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

func (i *Interner) Len() int {
	return len(i.byID)
}
