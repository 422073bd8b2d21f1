package main

// ExtractWitness reads off a satisfying assignment from a sequent on which
// the cut selector found no useful branch (spec.md §4.7): every remaining
// clause is either a unit, forced directly, or longer with no variable
// shared with any other clause, any one of whose literals may be picked
// freely. Variables mentioned nowhere are left unassigned here; the
// printer (main.go) defaults them to positive per spec.md §4.7's stated
// convention.
func ExtractWitness(s *Sequent) map[Var]bool {
	model := make(map[Var]bool)
	for _, c := range s.clauses {
		if c.IsUnit() {
			l := c.At(0)
			model[l.Var()] = !l.Negative()
			continue
		}
		l := c.At(0)
		if _, ok := model[l.Var()]; !ok {
			model[l.Var()] = !l.Negative()
		}
	}
	return model
}
