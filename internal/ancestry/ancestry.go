// Package ancestry resolves the most distant recorded ancestor of a vertex
// from a flat list of parent -> child edges.
//
// The resolver does not use the graph store. It builds its own parent map and
// enumerates every lineage, so it is meant for shallow, narrow ancestries.
package ancestry

import (
	"cmp"
	"slices"
)

// Edge records that Parent is a parent of Child.
type Edge[V cmp.Ordered] struct {
	Parent V
	Child  V
}

// Parents maps a vertex to its recorded parents in ascending order.
type Parents[V cmp.Ordered] map[V][]V

// NewParents builds the parent map for edges. Repeated edges are recorded
// once.
func NewParents[V cmp.Ordered](edges []Edge[V]) Parents[V] {
	parents := make(Parents[V])
	for _, e := range edges {
		list := parents[e.Child]
		i, found := slices.BinarySearch(list, e.Parent)
		if found {
			continue
		}
		parents[e.Child] = slices.Insert(list, i, e.Parent)
	}
	return parents
}

// Lineages returns every maximal upward walk from start. Each lineage begins
// with start and ends at a vertex without recorded parents. A vertex with
// several parents contributes one lineage per parent.
func (p Parents[V]) Lineages(start V) [][]V {
	var lineages [][]V
	var climb func(lineage []V)
	climb = func(lineage []V) {
		tip := lineage[len(lineage)-1]
		parents, ok := p[tip]
		if !ok {
			lineages = append(lineages, lineage)
			return
		}
		for _, parent := range parents {
			next := make([]V, len(lineage)+1)
			copy(next, lineage)
			next[len(lineage)] = parent
			climb(next)
		}
	}
	climb([]V{start})
	return lineages
}

// Earliest returns the ancestor at the end of the longest lineage from
// start. Among equally long lineages the smallest ancestor wins. ok is false
// when start has no recorded parents.
func (p Parents[V]) Earliest(start V) (ancestor V, ok bool) {
	lineages := p.Lineages(start)

	if len(lineages) == 1 {
		ancestor = lineages[0][len(lineages[0])-1]
		if ancestor == start {
			var zero V
			return zero, false
		}
		return ancestor, true
	}

	// Stable so equal lengths keep enumeration order; the tie-break below
	// makes the answer independent of it anyway.
	slices.SortStableFunc(lineages, func(a, b []V) int {
		return cmp.Compare(len(a), len(b))
	})

	longest := lineages[len(lineages)-1]
	ancestor = longest[len(longest)-1]
	for i := len(lineages) - 2; i >= 0; i-- {
		next := lineages[i]
		if len(next) < len(longest) {
			break
		}
		if tip := next[len(next)-1]; tip < ancestor {
			ancestor = tip
		}
	}
	return ancestor, true
}

// EarliestAncestor builds the parent map for edges and resolves the earliest
// ancestor of start. ok is false when start is unrelated to every edge as a
// child.
func EarliestAncestor[V cmp.Ordered](edges []Edge[V], start V) (V, bool) {
	return NewParents(edges).Earliest(start)
}

// Lineages is a convenience wrapper around NewParents(edges).Lineages(start).
func Lineages[V cmp.Ordered](edges []Edge[V], start V) [][]V {
	return NewParents(edges).Lineages(start)
}
