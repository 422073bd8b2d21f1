package main

// Verdict is the outcome of Solve (spec.md §6): either satisfiable with a
// witness assignment, or unsatisfiable.
type Verdict struct {
	Satisfiable bool
	Model       map[Var]bool // nil when Satisfiable is false
	Stats       *Statistics
}

// Solve is the core's exposed API (spec.md §6): solve(clauses) -> verdict.
// It owns root and is free to mutate and discard it.
//
// Implemented as an explicit LIFO stack rather than recursion, so native
// call depth is bounded regardless of adversarial inputs (spec.md §9).
func Solve(root *Sequent) Verdict {
	return SolveWithStats(root, NewStatistics())
}

// SolveWithStats is Solve with a caller-supplied Statistics that is
// mutated live as the search progresses. It lets the CLI's
// interrupt/timeout handlers (main.go) report partial progress, since
// they run concurrently with the search rather than after it returns.
func SolveWithStats(root *Sequent, stats *Statistics) Verdict {
	stack := []*Sequent{root}

	for len(stack) > 0 {
		if uint64(len(stack)) > stats.MaxStackDepth {
			stats.MaxStackDepth = uint64(len(stack))
		}
		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]
		stats.NodesExplored++

		stats.PropagationCount += uint64(s.PropagateToFixpoint())

		if IsAxiom(s) {
			stats.AxiomCount++
			continue
		}

		v := SelectCutVariable(s)
		if v == VarUndef {
			return Verdict{Satisfiable: true, Model: ExtractWitness(s), Stats: stats}
		}

		stats.DecisionCount++
		pos, neg := Branch(s, v)
		// Push order fixes a deterministic left/right precedence: neg is
		// explored first since it is popped off the LIFO stack last-in.
		stack = append(stack, pos, neg)
	}
	return Verdict{Satisfiable: false, Stats: stats}
}

// SolveClauses is the convenience entry point external collaborators (the
// DIMACS parser, the self-test generator) call with a freshly parsed or
// generated clause set.
func SolveClauses(clauses []*Clause) Verdict {
	return Solve(NewSequent(clauses))
}
