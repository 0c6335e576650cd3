package symbols

import (
	"slices"
)

// Table is a flat, mutable name -> symbol mapping. The language has a single
// scope, so there is no parent chain; re-declaring a name replaces the entry.
//
// The type checker and the evaluator each own their own Table; instances are
// never shared between passes.
type Table[S any] struct {
	entries map[string]S
	order   []string // first-declaration order
}

// NewTable builds an empty table with an optional capacity hint.
func NewTable[S any](capHint int) *Table[S] {
	if capHint < 0 {
		capHint = 0
	}
	return &Table[S]{
		entries: make(map[string]S, capHint),
		order:   make([]string, 0, capHint),
	}
}

// Declare binds name to sym, overwriting any previous entry.
// It reports whether an entry was replaced.
func (t *Table[S]) Declare(name string, sym S) bool {
	_, existed := t.entries[name]
	if !existed {
		t.order = append(t.order, name)
	}
	t.entries[name] = sym
	return existed
}

// Lookup returns the symbol bound to name.
func (t *Table[S]) Lookup(name string) (S, bool) {
	sym, ok := t.entries[name]
	return sym, ok
}

// Exists reports whether name is bound.
func (t *Table[S]) Exists(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Len returns the number of distinct names.
func (t *Table[S]) Len() int {
	return len(t.entries)
}

// Names returns bound names sorted lexically.
func (t *Table[S]) Names() []string {
	out := slices.Clone(t.order)
	slices.Sort(out)
	return out
}

// DeclOrder returns names in the order they were first declared.
func (t *Table[S]) DeclOrder() []string {
	return slices.Clone(t.order)
}
