package symbols

import (
	"slices"
	"testing"

	"quill/internal/types"
)

func TestDeclareOverwrites(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()
	tbl := NewBindings()

	if tbl.Declare("x", Binding{Name: "x", Type: b.I32}) {
		t.Fatal("first Declare must not report a replacement")
	}
	if !tbl.Declare("x", Binding{Name: "x", Type: b.String, Declared: true}) {
		t.Fatal("second Declare must report a replacement")
	}
	got, ok := tbl.Lookup("x")
	if !ok || got.Type != b.String || !got.Declared {
		t.Fatalf("Lookup(x) = %+v,%v", got, ok)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestLookupMissing(t *testing.T) {
	tbl := NewTable[int](0)
	if _, ok := tbl.Lookup("nope"); ok {
		t.Fatal("missing names must not resolve")
	}
	if tbl.Exists("nope") {
		t.Fatal("Exists on empty table")
	}
}

func TestNamesOrdering(t *testing.T) {
	tbl := NewTable[int](4)
	tbl.Declare("zeta", 1)
	tbl.Declare("alpha", 2)
	tbl.Declare("mid", 3)
	tbl.Declare("zeta", 4)

	if got := tbl.Names(); !slices.Equal(got, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("Names = %v", got)
	}
	if got := tbl.DeclOrder(); !slices.Equal(got, []string{"zeta", "alpha", "mid"}) {
		t.Errorf("DeclOrder = %v", got)
	}
}

func TestTablesAreIndependent(t *testing.T) {
	a := NewTable[string](0)
	b := NewTable[string](0)
	a.Declare("x", "checker")
	if b.Exists("x") {
		t.Fatal("tables must not share entries")
	}
}
