package main

// propagateUnit sweeps the unit clause at index unitIdx against every other
// clause in the sequent, applying unit subsumption and unit resolution
// (spec.md §4.2) until no clause mentions that variable anymore save the
// unit itself. This is the granularity PropagateStep treats as "one
// observable simplification": the full discharge of one pending unit.
//
// Scans from index 0 and distinguishes the unit clause from its candidates
// by pointer identity rather than index, so the teacher's "starts its scan
// at index 1" quirk (spec.md §9) cannot resurface as an off-by-one here.
func (s *Sequent) propagateUnit(unitIdx int) {
	unit := s.clauses[unitIdx]
	lit := unit.At(0)

	i := 0
	for i < len(s.clauses) {
		c := s.clauses[i]
		if c == unit {
			i++
			continue
		}
		found, ok := c.FindVariable(lit.Var())
		if !ok {
			i++
			continue
		}
		if found.Equal(lit) {
			// Unit subsumption: the unit already forces c true.
			s.removeClauseAt(i)
			continue // slot i now holds a different clause (or the slice shrank)
		}
		// Unit resolution: ¬lit occurs in c; delete it.
		k := -1
		for j := 0; j < c.Len(); j++ {
			if c.At(j).Equal(found) {
				k = j
				break
			}
		}
		c.RemoveLiteralAt(k)
		s.decOcc(lit.Var())
		if c.IsUnit() {
			s.pushUnit(i)
		}
		i++
	}
}

// PropagateStep performs one observable simplification and returns true,
// or returns false once the unit queue has been drained without further
// work (spec.md §4.2). Stale queue entries — indices that have since been
// swap-removed out of range, or clauses that are no longer unit-length —
// are discarded silently; this is the "i >= n" inclusive bound the spec
// requires (spec.md §9), not the source's off-by-one "i > n".
func (s *Sequent) PropagateStep() bool {
	for len(s.unitQueue) > 0 {
		idx := s.unitQueue[0]
		s.unitQueue = s.unitQueue[1:]
		if idx < 0 || idx >= len(s.clauses) {
			continue
		}
		if !s.clauses[idx].IsUnit() {
			continue
		}
		s.propagateUnit(idx)
		return true
	}
	return false
}

// PropagateToFixpoint iterates PropagateStep until it reports no further
// work, and returns the number of steps performed. Each step strictly
// decreases or holds the total literal count and shrinks the queue, so
// this terminates (spec.md §4.2).
func (s *Sequent) PropagateToFixpoint() int {
	steps := 0
	for s.PropagateStep() {
		steps++
	}
	return steps
}
