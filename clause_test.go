package main

import "testing"

func TestClauseLengthPredicates(t *testing.T) {
	empty := NewClause(nil)
	if !empty.IsEmpty() || empty.IsUnit() || empty.Len() != 0 {
		t.Fatalf("empty clause predicates wrong: len=%d unit=%v empty=%v", empty.Len(), empty.IsUnit(), empty.IsEmpty())
	}

	unit := NewClause([]Lit{NewLit(1, false)})
	if !unit.IsUnit() || unit.IsEmpty() || unit.Len() != 1 {
		t.Fatalf("unit clause predicates wrong: len=%d unit=%v empty=%v", unit.Len(), unit.IsUnit(), unit.IsEmpty())
	}
}

func TestClauseFindVariable(t *testing.T) {
	c := NewClause([]Lit{NewLit(1, false), NewLit(2, true), NewLit(3, false)})

	lit, ok := c.FindVariable(2)
	if !ok || !lit.Equal(NewLit(2, true)) {
		t.Fatalf("FindVariable(2) = %v, %v; want (¬x2, true)", lit, ok)
	}
	if _, ok := c.FindVariable(99); ok {
		t.Fatalf("FindVariable(99) should report not-found")
	}
}

func TestClauseRemoveLiteralAt(t *testing.T) {
	c := NewClause([]Lit{NewLit(1, false), NewLit(2, false), NewLit(3, false)})
	c.RemoveLiteralAt(0)
	if c.Len() != 2 {
		t.Fatalf("expected length 2 after removal, got %d", c.Len())
	}
	// swap-remove brings the former last literal into slot 0.
	if !c.At(0).Equal(NewLit(3, false)) {
		t.Fatalf("expected swap-removed slot to hold the former last literal, got %v", c.At(0))
	}
}

func TestClauseClone(t *testing.T) {
	c := NewClause([]Lit{NewLit(1, false)})
	clone := c.Clone()
	clone.RemoveLiteralAt(0)
	if c.Len() != 1 {
		t.Fatalf("mutating the clone must not affect the original, got len=%d", c.Len())
	}
}
