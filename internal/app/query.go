package app

import (
	"fmt"

	"github.com/vk/graphwalk/internal/ancestry"
	"github.com/vk/graphwalk/internal/config"
	"github.com/vk/graphwalk/internal/graph"
	"github.com/vk/graphwalk/internal/traverse"
)

const (
	notFound  = "not found"
	unrelated = "unrelated"
)

// runQuery executes q and renders its result. Targets and goals have
// already been checked by config.Model.Validate.
func runQuery(q *config.Query, graphs map[string]*graph.Graph[int], parents map[string]ancestry.Parents[int]) (string, error) {
	if q.Op.OnAncestry() {
		p := parents[q.Target]
		switch q.Op {
		case config.OpEarliestAncestor:
			oldest, ok := p.Earliest(q.Start)
			if !ok {
				return unrelated, nil
			}
			return fmt.Sprint(oldest), nil
		case config.OpLineages:
			return fmt.Sprint(p.Lineages(q.Start)), nil
		}
	}

	g := graphs[q.Target]
	switch q.Op {
	case config.OpBFT:
		return formatOrder(traverse.Collect(g, q.Start, traverse.BFT[int]))
	case config.OpDFT:
		return formatOrder(traverse.Collect(g, q.Start, traverse.DFT[int]))
	case config.OpDFTRecursive:
		return formatOrder(traverse.Collect(g, q.Start, traverse.DFTRecursive[int]))
	case config.OpBFS:
		return formatPath(traverse.BFS[int](g, q.Start, *q.Goal))
	case config.OpDFS:
		return formatPath(traverse.DFS[int](g, q.Start, *q.Goal))
	case config.OpDFSRecursive:
		return formatPath(traverse.DFSRecursive[int](g, q.Start, *q.Goal))
	}
	return "", fmt.Errorf("unsupported operation %q", q.Op)
}

func formatOrder(order []int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprint(order), nil
}

func formatPath(path traverse.Path[int], found bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if !found {
		return notFound, nil
	}
	return fmt.Sprint([]int(path)), nil
}
