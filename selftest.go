package main

import "fmt"

// GenerateFullClauseSet builds the full 2^n-clause formula over n variables
// (spec.md §6): one clause per sign-combination of the n variables. Under
// any total assignment alpha, exactly one of these clauses — the one whose
// every literal is the negation of alpha — evaluates to false, so the
// conjunction of all 2^n clauses is unsatisfiable (spec.md §8 scenario 4
// generalized).
func GenerateFullClauseSet(n int) []*Clause {
	if n < 1 {
		panic(fmt.Errorf("GenerateFullClauseSet: n must be >= 1, got %d", n))
	}
	total := 1 << n
	clauses := make([]*Clause, 0, total)
	for mask := 0; mask < total; mask++ {
		lits := make([]Lit, n)
		for i := 0; i < n; i++ {
			neg := (mask>>i)&1 == 1
			lits[i] = NewLit(Var(i), neg)
		}
		clauses = append(clauses, NewClause(lits))
	}
	return clauses
}

// GenerateNearFullClauseSet builds the same 2^n clauses minus the one
// omitted, leaving 2^n-1 clauses (spec.md §6). The result is satisfiable:
// the assignment complementary to the omitted clause's sign-combination
// satisfies every remaining clause (spec.md §8 scenario 5 generalized).
func GenerateNearFullClauseSet(n int) []*Clause {
	full := GenerateFullClauseSet(n)
	return full[:len(full)-1]
}
