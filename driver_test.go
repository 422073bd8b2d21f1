package main

import "testing"

// Scenarios from spec.md §8.

func TestSolveEmptyClauseSetIsSatisfiable(t *testing.T) {
	v := SolveClauses(nil)
	if !v.Satisfiable {
		t.Fatalf("empty clause set must be satisfiable")
	}
	if len(v.Model) != 0 {
		t.Fatalf("empty clause set's witness should assign nothing, got %v", v.Model)
	}
}

func TestSolveClauseSetContainingEmptyClauseIsUnsat(t *testing.T) {
	v := SolveClauses(clauses(nil))
	if v.Satisfiable {
		t.Fatalf("a clause set containing the empty clause must be unsatisfiable")
	}
}

func TestSolveSingleUnitPositive(t *testing.T) {
	v := SolveClauses(clauses([]Lit{NewLit(0, false)}))
	if !v.Satisfiable {
		t.Fatalf("{x1} must be satisfiable")
	}
	if val, ok := v.Model[0]; !ok || !val {
		t.Fatalf("model must assign var 0 = true, got %v", v.Model)
	}
}

func TestSolveSingleUnitNegative(t *testing.T) {
	v := SolveClauses(clauses([]Lit{NewLit(0, true)}))
	if !v.Satisfiable {
		t.Fatalf("{¬x1} must be satisfiable")
	}
	if val, ok := v.Model[0]; !ok || val {
		t.Fatalf("model must assign var 0 = false, got %v", v.Model)
	}
}

func TestSolveContradictoryUnitsIsUnsat(t *testing.T) {
	v := SolveClauses(clauses(
		[]Lit{NewLit(0, false)},
		[]Lit{NewLit(0, true)},
	))
	if v.Satisfiable {
		t.Fatalf("{x1},{¬x1} must be unsatisfiable")
	}
}

func TestSolveFullTwoVariableClauseSetIsUnsat(t *testing.T) {
	// (x1 x2)(¬x1 x2)(x1 ¬x2)(¬x1 ¬x2)
	v := SolveClauses(clauses(
		[]Lit{NewLit(0, false), NewLit(1, false)},
		[]Lit{NewLit(0, true), NewLit(1, false)},
		[]Lit{NewLit(0, false), NewLit(1, true)},
		[]Lit{NewLit(0, true), NewLit(1, true)},
	))
	if v.Satisfiable {
		t.Fatalf("the full 2-variable clause set must be unsatisfiable")
	}
}

func TestSolveNearFullTwoVariableClauseSetIsSat(t *testing.T) {
	// drop (¬x1 ¬x2) from the full set above.
	v := SolveClauses(clauses(
		[]Lit{NewLit(0, false), NewLit(1, false)},
		[]Lit{NewLit(0, true), NewLit(1, false)},
		[]Lit{NewLit(0, false), NewLit(1, true)},
	))
	if !v.Satisfiable {
		t.Fatalf("omitting one clause from the full set must be satisfiable")
	}
	if !checkWitness(clauses(
		[]Lit{NewLit(0, false), NewLit(1, false)},
		[]Lit{NewLit(0, true), NewLit(1, false)},
		[]Lit{NewLit(0, false), NewLit(1, true)},
	), v.Model) {
		t.Fatalf("witness %v does not satisfy the formula", v.Model)
	}
}

func TestSolveUnitPropagationToEmptyClauseIsUnsat(t *testing.T) {
	// (x1 x2 x3)(¬x1)(¬x2)(¬x3) propagates the first clause to empty.
	v := SolveClauses(clauses(
		[]Lit{NewLit(0, false), NewLit(1, false), NewLit(2, false)},
		[]Lit{NewLit(0, true)},
		[]Lit{NewLit(1, true)},
		[]Lit{NewLit(2, true)},
	))
	if v.Satisfiable {
		t.Fatalf("expected unsatisfiable, unit propagation should derive the empty clause")
	}
}

func TestSolveDeterministic(t *testing.T) {
	build := func() []*Clause {
		return clauses(
			[]Lit{NewLit(0, false), NewLit(1, false), NewLit(2, false)},
			[]Lit{NewLit(0, true), NewLit(1, false)},
			[]Lit{NewLit(1, true), NewLit(2, true)},
		)
	}
	a := SolveClauses(build())
	b := SolveClauses(build())
	if a.Satisfiable != b.Satisfiable {
		t.Fatalf("two runs on identical input disagreed on satisfiability")
	}
	if a.Satisfiable {
		for v, val := range a.Model {
			if b.Model[v] != val {
				t.Fatalf("two runs on identical input produced different models: %v vs %v", a.Model, b.Model)
			}
		}
	}
}

// checkWitness substitutes model into cs and reports whether every clause
// is satisfied (spec.md §8 P1).
func checkWitness(cs []*Clause, model map[Var]bool) bool {
	for _, c := range cs {
		sat := false
		for i := 0; i < c.Len(); i++ {
			l := c.At(i)
			val, ok := model[l.Var()]
			if !ok {
				val = true // unmentioned variables default to positive
			}
			if val != l.Negative() {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
