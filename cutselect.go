package main

// SelectCutVariable picks the variable with the greatest occurrence count
// across s's current clauses, tie-breaking by the smaller variable id
// (spec.md §4.4). If the maximum occurrence count is <= 1, every
// remaining variable appears in at most one clause and the residual
// sequent is satisfiable by independent literal choices: SelectCutVariable
// reports VarUndef ("no cut possible").
//
// Backed by occHeap (heap.go), rebuilt fresh on every call from the clause
// set itself via rebuildOccurrences (sequent.go) per spec.md §9's
// lazy-rebuild policy, so S3 ("occurrence counts equal the true multiset
// sum... whenever the cut selector is invoked") holds regardless of how
// the caller maintained s.occ up to this point, rather than trusting it.
func SelectCutVariable(s *Sequent) Var {
	occ := s.rebuildOccurrences()
	if len(occ) == 0 {
		return VarUndef
	}
	h := newOccHeap()
	for v, n := range occ {
		h.push(v, n)
	}
	top := h.removeMax()
	if h.count[top] <= 1 {
		return VarUndef
	}
	return top
}
