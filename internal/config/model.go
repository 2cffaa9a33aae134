package config

import (
	"errors"
	"fmt"
	"slices"
)

// Op names a query operation.
type Op string

const (
	OpBFT              Op = "bft"
	OpDFT              Op = "dft"
	OpDFTRecursive     Op = "dft_recursive"
	OpBFS              Op = "bfs"
	OpDFS              Op = "dfs"
	OpDFSRecursive     Op = "dfs_recursive"
	OpEarliestAncestor Op = "earliest_ancestor"
	OpLineages         Op = "lineages"
)

// Ops lists every supported operation.
var Ops = []Op{
	OpBFT, OpDFT, OpDFTRecursive,
	OpBFS, OpDFS, OpDFSRecursive,
	OpEarliestAncestor, OpLineages,
}

// NeedsGoal reports whether the operation is a path search.
func (o Op) NeedsGoal() bool {
	return o == OpBFS || o == OpDFS || o == OpDFSRecursive
}

// OnAncestry reports whether the operation targets an ancestry rather than
// a graph.
func (o Op) OnAncestry() bool {
	return o == OpEarliestAncestor || o == OpLineages
}

// Model is the unified, format-agnostic representation of a workload.
type Model struct {
	Graphs      map[string]*Graph
	Ancestries  map[string]*Ancestry
	Queries     []*Query
	Simulations []*Simulation
}

// NewModel returns an empty model with its maps initialized.
func NewModel() *Model {
	return &Model{
		Graphs:     make(map[string]*Graph),
		Ancestries: make(map[string]*Ancestry),
	}
}

// Graph is a named directed graph definition.
type Graph struct {
	Name     string
	Vertices []int
	// Edges holds (from, to) pairs.
	Edges [][2]int
}

// Ancestry is a named parent -> child edge list.
type Ancestry struct {
	Name string
	// Edges holds (parent, child) pairs.
	Edges [][2]int
}

// Query is a single operation to run against a graph or an ancestry.
type Query struct {
	Op     Op
	Name   string
	Target string
	Start  int
	Goal   *int
}

// Simulation configures a run of the social network simulation.
type Simulation struct {
	Name           string
	Users          int
	AvgFriendships int
	Rounds         int
	Seed           uint64
}

// Merge folds other into m. Graph and ancestry names must be unique across
// both models; queries and simulations keep their relative order.
func (m *Model) Merge(other *Model) error {
	for name, g := range other.Graphs {
		if _, exists := m.Graphs[name]; exists {
			return fmt.Errorf("graph %q is declared more than once", name)
		}
		m.Graphs[name] = g
	}
	for name, a := range other.Ancestries {
		if _, exists := m.Ancestries[name]; exists {
			return fmt.Errorf("ancestry %q is declared more than once", name)
		}
		m.Ancestries[name] = a
	}
	m.Queries = append(m.Queries, other.Queries...)
	m.Simulations = append(m.Simulations, other.Simulations...)
	return nil
}

// Validate checks that every query refers to a declared target with the
// arguments its operation needs, and that simulations are well formed. All
// problems are reported together.
func (m *Model) Validate() error {
	var errs []error

	for _, q := range m.Queries {
		if !slices.Contains(Ops, q.Op) {
			errs = append(errs, fmt.Errorf("query %q: unknown operation %q", q.Name, q.Op))
			continue
		}
		if q.Op.OnAncestry() {
			if _, ok := m.Ancestries[q.Target]; !ok {
				errs = append(errs, fmt.Errorf("query %q: ancestry %q is not declared", q.Name, q.Target))
			}
		} else if _, ok := m.Graphs[q.Target]; !ok {
			errs = append(errs, fmt.Errorf("query %q: graph %q is not declared", q.Name, q.Target))
		}
		if q.Op.NeedsGoal() && q.Goal == nil {
			errs = append(errs, fmt.Errorf("query %q: operation %q requires a goal", q.Name, q.Op))
		}
	}

	for _, s := range m.Simulations {
		if s.Users <= s.AvgFriendships {
			errs = append(errs, fmt.Errorf("simulation %q: users (%d) must be greater than avg_friendships (%d)", s.Name, s.Users, s.AvgFriendships))
		}
		if s.AvgFriendships < 0 {
			errs = append(errs, fmt.Errorf("simulation %q: avg_friendships must not be negative", s.Name))
		}
		if s.Rounds <= 0 {
			errs = append(errs, fmt.Errorf("simulation %q: rounds must be positive", s.Name))
		}
	}

	return errors.Join(errs...)
}
