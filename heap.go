package main

import "fmt"

// occHeap is a max-heap over variables ordered by occurrence count, with a
// deterministic variable-id tiebreak (spec.md §4.4: "tie-breaking by
// variable-id"). It is the cut selector's backing structure, adapted from
// the teacher's VSIDS activity heap (heap.go): same percolate-up/down
// shape, but keyed by occurrence count instead of branching activity, and
// indexed through a map rather than a dense slice since variable ids may
// be a hashed/sparse namespace (spec.md §3).
//
// Rebuilt fresh at every cut-selector call (spec.md §9 policy (b): lazy
// rebuild), so it carries no incremental-update machinery.
type occHeap struct {
	data  []Var       // heap array
	pos   map[Var]int // Var -> index into data
	count map[Var]int // Var -> occurrence count
}

func newOccHeap() *occHeap {
	return &occHeap{pos: make(map[Var]int), count: make(map[Var]int)}
}

// less reports whether the variable at heap position i should sit above
// the variable at heap position j: higher occurrence count wins, ties
// broken by the smaller variable id.
func (h *occHeap) less(i, j int) bool {
	vi, vj := h.data[i], h.data[j]
	ci, cj := h.count[vi], h.count[vj]
	if ci != cj {
		return ci > cj
	}
	return vi < vj
}

func (h *occHeap) empty() bool {
	return len(h.data) == 0
}

func (h *occHeap) push(v Var, occ int) {
	if _, ok := h.pos[v]; ok {
		panic(fmt.Errorf("occHeap: variable %d pushed twice", v))
	}
	h.count[v] = occ
	h.data = append(h.data, v)
	i := len(h.data) - 1
	h.pos[v] = i
	h.percolateUp(i)
}

// removeMax pops and returns the variable with the greatest occurrence
// count (ties broken by variable id).
func (h *occHeap) removeMax() Var {
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.pos[h.data[0]] = 0
	delete(h.pos, top)
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.percolateDown(0)
	}
	return top
}

func (h *occHeap) percolateUp(i int) {
	for i != 0 {
		p := parentIndex(i)
		if !h.less(i, p) {
			break
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		h.pos[h.data[i]] = i
		h.pos[h.data[p]] = p
		i = p
	}
}

func (h *occHeap) percolateDown(i int) {
	for {
		l, r := leftIndex(i), rightIndex(i)
		smallest := i
		if l < len(h.data) && h.less(l, smallest) {
			smallest = l
		}
		if r < len(h.data) && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		h.pos[h.data[i]] = i
		h.pos[h.data[smallest]] = smallest
		i = smallest
	}
}

func leftIndex(i int) int {
	return 2*i + 1
}

func rightIndex(i int) int {
	return 2*i + 2
}

func parentIndex(i int) int {
	return (i - 1) >> 1
}
