package main

import "fmt"

// Sequent is the current proof obligation: a mutable bag of clauses plus
// the bookkeeping the simplifier and cut selector need (spec.md §3).
//
// Ownership: a Sequent exclusively owns its clauses and their literal
// storage. Deep copy (see branch.go) is the only sharing mechanism; no
// clause is ever aliased across sequents.
type Sequent struct {
	clauses   []*Clause // clause handles; order is not semantically meaningful
	unitQueue []int     // indices flagged "candidate unit"; may contain stale entries
	occ       map[Var]int
}

// NewSequent builds a fresh Sequent owning clauses, computing occurrence
// counts and seeding the unit queue with every already-unit clause.
func NewSequent(clauses []*Clause) *Sequent {
	s := &Sequent{
		clauses: clauses,
		occ:     make(map[Var]int),
	}
	for i, c := range clauses {
		for j := 0; j < c.Len(); j++ {
			s.occ[c.At(j).Var()]++
		}
		if c.IsUnit() {
			s.pushUnit(i)
		}
	}
	return s
}

func (s *Sequent) pushUnit(i int) {
	s.unitQueue = append(s.unitQueue, i)
}

// removeClauseAt performs the unordered swap-remove of spec.md §3/§4.1:
// the clause at i is replaced by the current last clause and the slice
// shrinks by one. If the clause that slides into slot i is itself a unit,
// its new index is re-enqueued so a pending unit is never lost (spec.md
// §4.2's "the clause that takes its slot must be inspected").
func (s *Sequent) removeClauseAt(i int) {
	removed := s.clauses[i]
	for j := 0; j < removed.Len(); j++ {
		s.decOcc(removed.At(j).Var())
	}
	last := len(s.clauses) - 1
	s.clauses[i] = s.clauses[last]
	s.clauses = s.clauses[:last]
	if i < len(s.clauses) && s.clauses[i].IsUnit() {
		s.pushUnit(i)
	}
}

func (s *Sequent) incOcc(v Var) {
	s.occ[v]++
}

func (s *Sequent) decOcc(v Var) {
	n, ok := s.occ[v]
	if !ok {
		panic(fmt.Errorf("Sequent: occurrence count underflow for var %d", v))
	}
	if n <= 1 {
		delete(s.occ, v)
	} else {
		s.occ[v] = n - 1
	}
}

// rebuildOccurrences recomputes occurrence counts from scratch, the
// strategy spec.md §9 requires ("lazily rebuild before each cut-selector
// call"): SelectCutVariable calls this directly rather than trusting s.occ,
// so S3 holds regardless of how faithfully incremental maintenance kept
// s.occ in sync. Also used by tests as an internal-consistency check.
func (s *Sequent) rebuildOccurrences() map[Var]int {
	occ := make(map[Var]int)
	for _, c := range s.clauses {
		for j := 0; j < c.Len(); j++ {
			occ[c.At(j).Var()]++
		}
	}
	return occ
}

// NumClauses returns the number of clauses currently in the sequent.
func (s *Sequent) NumClauses() int {
	return len(s.clauses)
}
