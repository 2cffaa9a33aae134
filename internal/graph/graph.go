package graph

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Graph is an in-memory directed graph keyed by an ordered identifier type.
type Graph[V cmp.Ordered] struct {
	mu sync.RWMutex
	// vertices maps each vertex to the set of vertices it has an edge to.
	vertices map[V]map[V]struct{}
}

// New creates an empty graph.
func New[V cmp.Ordered]() *Graph[V] {
	return &Graph[V]{
		vertices: make(map[V]map[V]struct{}),
	}
}

// AddVertex registers id with an empty neighbor set.
func (g *Graph[V]) AddVertex(id V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, id)
	}
	g.vertices[id] = make(map[V]struct{})
	return nil
}

// AddEdge creates a directed edge from -> to. The destination is validated
// before the source; when either is missing nothing is recorded.
func (g *Graph[V]) AddEdge(from, to V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("%w: destination %v", ErrUnknownVertex, to)
	}
	neighbors, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("%w: source %v", ErrUnknownVertex, from)
	}

	neighbors[to] = struct{}{}
	return nil
}

// Neighbors returns a copy of the outgoing neighbors of id in no particular
// order.
func (g *Graph[V]) Neighbors(id V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, id)
	}

	out := make([]V, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	return out, nil
}

// HasVertex reports whether id is registered.
func (g *Graph[V]) HasVertex(id V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]
	return ok
}

// Len returns the number of registered vertices.
func (g *Graph[V]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// Vertices returns every registered vertex in ascending order.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// EdgeCount returns the number of directed edges in the graph.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, set := range g.vertices {
		total += len(set)
	}
	return total
}
