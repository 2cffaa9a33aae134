package traverse

import (
	"errors"
	"iter"

	"github.com/vk/graphwalk/internal/graph"
)

// ErrStop may be returned by a VisitFunc to end a walk early. The walk then
// returns nil.
var ErrStop = errors.New("stop traversal")

// VisitFunc is called once for every vertex a walk reaches. Returning a
// non-nil error other than ErrStop aborts the walk with that error.
type VisitFunc[V comparable] func(V) error

// BFT visits every vertex reachable from start in breadth-first order.
func BFT[V comparable](g graph.Neighborer[V], start V, visit VisitFunc[V]) error {
	return stopIsNil(walk(g, start, newQueue[V](), visit))
}

// DFT visits every vertex reachable from start in depth-first order, using an
// explicit stack.
func DFT[V comparable](g graph.Neighborer[V], start V, visit VisitFunc[V]) error {
	return stopIsNil(walk(g, start, newStack[V](), visit))
}

// DFTRecursive visits every vertex reachable from start in depth-first order
// by recursion.
func DFTRecursive[V comparable](g graph.Neighborer[V], start V, visit VisitFunc[V]) error {
	visited := make(map[V]struct{})
	return stopIsNil(dftRecursive(g, start, visited, visit))
}

// BFTSeq returns the vertices visited by BFT as a lazy sequence. A traversal
// failure is yielded as the final pair. Every range over the sequence runs a
// fresh walk.
func BFTSeq[V comparable](g graph.Neighborer[V], start V) iter.Seq2[V, error] {
	return seq(func(visit VisitFunc[V]) error { return BFT(g, start, visit) })
}

// DFTSeq is the depth-first counterpart of BFTSeq.
func DFTSeq[V comparable](g graph.Neighborer[V], start V) iter.Seq2[V, error] {
	return seq(func(visit VisitFunc[V]) error { return DFT(g, start, visit) })
}

// Collect runs a walk and returns the vertices in visitation order.
func Collect[V comparable](g graph.Neighborer[V], start V, walkFn func(graph.Neighborer[V], V, VisitFunc[V]) error) ([]V, error) {
	var order []V
	err := walkFn(g, start, func(v V) error {
		order = append(order, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// walk is the shared loop of BFT and DFT. Neighbors are pushed without
// checking the visited set; duplicates are dropped when they are popped.
func walk[V comparable](g graph.Neighborer[V], start V, f frontier[V], visit VisitFunc[V]) error {
	visited := make(map[V]struct{})
	f.push(start)

	for f.len() > 0 {
		current := f.pop()
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		neighbors, err := g.Neighbors(current)
		if err != nil {
			return err
		}
		if err := visit(current); err != nil {
			return err
		}
		for _, n := range neighbors {
			f.push(n)
		}
	}
	return nil
}

// dftRecursive shares visited with every sibling call so a vertex reached
// through one branch is not entered again through another.
func dftRecursive[V comparable](g graph.Neighborer[V], current V, visited map[V]struct{}, visit VisitFunc[V]) error {
	if _, seen := visited[current]; seen {
		return nil
	}
	visited[current] = struct{}{}

	neighbors, err := g.Neighbors(current)
	if err != nil {
		return err
	}
	if err := visit(current); err != nil {
		return err
	}
	for _, n := range neighbors {
		if err := dftRecursive(g, n, visited, visit); err != nil {
			return err
		}
	}
	return nil
}

func seq[V comparable](run func(VisitFunc[V]) error) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		err := run(func(v V) error {
			if !yield(v, nil) {
				return ErrStop
			}
			return nil
		})
		if err != nil {
			var zero V
			yield(zero, err)
		}
	}
}

func stopIsNil(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
