package main

// Statistics tracks the driver's progress for the -verbosity CLI output.
// Adapted from the teacher's CDCL counters (statistics.go): RestartCount,
// ConflictCount and NumLearnts had no analogue once clause learning and
// restarts are out of scope (spec.md §1 Non-goals), so they are replaced
// by the atomic-cut driver's own counters.
type Statistics struct {
	DecisionCount    uint64 // number of cuts (atomic-cut branch points)
	PropagationCount uint64 // number of unit clauses fully propagated
	AxiomCount       uint64 // number of sequents discarded as axioms
	NodesExplored    uint64 // total sequents popped from the search stack
	MaxStackDepth    uint64 // high-water mark of the DFS stack
}

func NewStatistics() *Statistics {
	return &Statistics{}
}
