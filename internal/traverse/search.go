package traverse

import (
	"fmt"

	"github.com/vk/graphwalk/internal/graph"
)

// entry is a search frontier item: a vertex and the path that led to it,
// excluding the vertex itself.
type entry[V comparable] struct {
	vertex V
	path   Path[V]
}

// BFS returns a shortest path from start to goal by edge count. When several
// shortest paths exist, which one is returned depends on neighbor order.
// found is false when goal is not reachable.
func BFS[V comparable](g graph.Neighborer[V], start, goal V) (path Path[V], found bool, err error) {
	return search(g, start, goal, newQueue[entry[V]]())
}

// DFS returns some path from start to goal, exploring one branch fully before
// backtracking. found is false when goal is not reachable.
func DFS[V comparable](g graph.Neighborer[V], start, goal V) (path Path[V], found bool, err error) {
	return search(g, start, goal, newStack[entry[V]]())
}

// DFSRecursive returns some path from start to goal by recursive depth-first
// search. Unlike BFS and DFS it rejects an unregistered goal up front, before
// any neighbor is looked up.
func DFSRecursive[V comparable](g graph.Lookup[V], start, goal V) (path Path[V], found bool, err error) {
	if !g.HasVertex(goal) {
		return nil, false, fmt.Errorf("%w: goal %v", graph.ErrUnknownVertex, goal)
	}
	visited := make(map[V]struct{})
	return dfsRecursive(g, start, goal, nil, visited)
}

// PathsFrom returns a shortest path from start to every vertex reachable from
// it, start included.
func PathsFrom[V comparable](g graph.Neighborer[V], start V) (map[V]Path[V], error) {
	paths := make(map[V]Path[V])
	q := newQueue[Path[V]]()
	q.push(Path[V]{start})

	for q.len() > 0 {
		p := q.pop()
		current, _ := p.Last()
		if _, seen := paths[current]; seen {
			continue
		}
		paths[current] = p

		neighbors, err := g.Neighbors(current)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			q.push(p.Extend(n))
		}
	}
	return paths, nil
}

func search[V comparable](g graph.Neighborer[V], start, goal V, f frontier[entry[V]]) (Path[V], bool, error) {
	visited := make(map[V]struct{})
	f.push(entry[V]{vertex: start})

	for f.len() > 0 {
		current := f.pop()
		if _, seen := visited[current.vertex]; seen {
			continue
		}
		visited[current.vertex] = struct{}{}

		if current.vertex == goal {
			return current.path.Extend(current.vertex), true, nil
		}

		neighbors, err := g.Neighbors(current.vertex)
		if err != nil {
			return nil, false, err
		}
		// next is shared by the siblings but never written to again; every
		// later extension copies it.
		next := current.path.Extend(current.vertex)
		for _, n := range neighbors {
			f.push(entry[V]{vertex: n, path: next})
		}
	}
	return nil, false, nil
}

// dfsRecursive checks the goal before the visited set, so a path may end at a
// goal that was already entered through another branch.
func dfsRecursive[V comparable](g graph.Neighborer[V], current, goal V, path Path[V], visited map[V]struct{}) (Path[V], bool, error) {
	if current == goal {
		return path.Extend(current), true, nil
	}
	if _, seen := visited[current]; seen {
		return nil, false, nil
	}
	visited[current] = struct{}{}

	neighbors, err := g.Neighbors(current)
	if err != nil {
		return nil, false, err
	}
	next := path.Extend(current)
	for _, n := range neighbors {
		found, ok, err := dfsRecursive(g, n, goal, next, visited)
		if err != nil || ok {
			return found, ok, err
		}
	}
	return nil, false, nil
}
