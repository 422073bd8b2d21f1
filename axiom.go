package main

// IsAxiom reports whether s is trivially closed (spec.md §4.3): it
// contains the empty clause (A1), or two distinct unit clauses share a
// variable with opposing polarities (A2). Pure function over a sequent at
// fixpoint; O(U²) in the number of unit clauses U.
//
// Scans units from index 0 and skips only i==j, not the source variant
// that failed to skip it (spec.md §9's third called-out quirk).
func IsAxiom(s *Sequent) bool {
	for _, c := range s.clauses {
		if c.IsEmpty() {
			return true
		}
	}

	var units []Lit
	for _, c := range s.clauses {
		if c.IsUnit() {
			units = append(units, c.At(0))
		}
	}
	for i := 0; i < len(units); i++ {
		for j := 0; j < len(units); j++ {
			if i == j {
				continue
			}
			if units[i].Var() == units[j].Var() && !units[i].Equal(units[j]) {
				return true
			}
		}
	}
	return false
}
