package main

import "fmt"

// Clause is an unordered disjunction of literals. It is a mutable sequence:
// the simplifier removes literals and whole clauses in place. Invariants
// (I1) no duplicated literal and (I2) no literal and its negation co-occur
// are the caller's responsibility (the parser and the simplifier); Clause
// itself enforces neither.
//
// Length zero is the empty clause (false); length one is a unit clause that
// forces its one literal.
type Clause struct {
	lits []Lit
}

// NewClause takes ownership of lits; callers must not alias the slice
// afterwards.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the number of literals remaining in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// IsUnit reports whether the clause has exactly one literal.
func (c *Clause) IsUnit() bool {
	return len(c.lits) == 1
}

// IsEmpty reports whether the clause has no literals.
func (c *Clause) IsEmpty() bool {
	return len(c.lits) == 0
}

// At returns the i'th literal.
func (c *Clause) At(i int) Lit {
	return c.lits[i]
}

// FindVariable returns the literal on variable v, if the clause mentions
// it, scanning from index 0 (spec.md §9: the teacher's off-by-one "start at
// index 1" quirk is not replicated here).
func (c *Clause) FindVariable(v Var) (Lit, bool) {
	for _, l := range c.lits {
		if l.Var() == v {
			return l, true
		}
	}
	return Lit{}, false
}

// RemoveLiteralAt removes the literal at index k in O(1) by swapping in the
// last literal and shrinking, the teacher's swap-trim idiom from
// removeSatisfied (clause.go).
func (c *Clause) RemoveLiteralAt(k int) {
	n := len(c.lits)
	if k < 0 || k >= n {
		panic(fmt.Errorf("RemoveLiteralAt: index %d out of range [0,%d)", k, n))
	}
	c.lits[k] = c.lits[n-1]
	c.lits = c.lits[:n-1]
}

// Clone deep-copies the clause's literal storage; used by the branch
// constructor, which must not mutate its input sequent (spec.md §4.5).
func (c *Clause) Clone() *Clause {
	lits := make([]Lit, len(c.lits))
	copy(lits, c.lits)
	return &Clause{lits: lits}
}
