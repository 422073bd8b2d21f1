package main

// Branch constructs the two children of the atomic cut on v (spec.md
// §4.5): S⁺ assumes v=true, S⁻ assumes v=false. Neither child mutates s;
// each is a fresh Sequent that shares no storage with s or its sibling.
func Branch(s *Sequent, v Var) (pos, neg *Sequent) {
	return buildBranch(s, v, false), buildBranch(s, v, true)
}

// buildBranch applies the equivalent-to-unit-propagation shortcut of
// spec.md §4.5 while deep-copying: for every clause in s, a clause
// containing the assumed literal is dropped (subsumed); a clause
// containing its negation is copied with that literal omitted (resolved
// away); any other clause is copied unchanged. The assumed unit clause is
// appended last.
func buildBranch(s *Sequent, v Var, negate bool) *Sequent {
	assumed := NewLit(v, negate)

	clauses := make([]*Clause, 0, len(s.clauses)+1)
	for _, c := range s.clauses {
		found, ok := c.FindVariable(v)
		if !ok {
			clauses = append(clauses, c.Clone())
			continue
		}
		if found.Equal(assumed) {
			continue // subsumed
		}
		// found is the negation of assumed: resolve it away.
		lits := make([]Lit, 0, c.Len()-1)
		for i := 0; i < c.Len(); i++ {
			if l := c.At(i); !l.Equal(found) {
				lits = append(lits, l)
			}
		}
		clauses = append(clauses, NewClause(lits))
	}
	clauses = append(clauses, NewClause([]Lit{assumed}))

	return NewSequent(clauses)
}
