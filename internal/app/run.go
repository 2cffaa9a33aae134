package app

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/vk/graphwalk/internal/ancestry"
	"github.com/vk/graphwalk/internal/config"
	"github.com/vk/graphwalk/internal/ctxlog"
	"github.com/vk/graphwalk/internal/graph"
	"github.com/vk/graphwalk/internal/social"
)

// Run builds every declared graph and ancestry, then executes the queries
// and simulations in declaration order, writing one line per result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	graphs := make(map[string]*graph.Graph[int], len(a.model.Graphs))
	// Sorted so the first reported build error is stable.
	for _, name := range slices.Sorted(maps.Keys(a.model.Graphs)) {
		g, err := buildGraph(a.model.Graphs[name])
		if err != nil {
			return fmt.Errorf("failed to build graph %q: %w", name, err)
		}
		graphs[name] = g
		a.logger.Debug("Graph built.", "graph", name, "vertices", g.Len(), "edges", g.EdgeCount())
	}

	parents := make(map[string]ancestry.Parents[int], len(a.model.Ancestries))
	for name, def := range a.model.Ancestries {
		parents[name] = ancestry.NewParents(toAncestryEdges(def.Edges))
	}

	for _, q := range a.model.Queries {
		result, err := runQuery(q, graphs, parents)
		if err != nil {
			return fmt.Errorf("query %s %q failed: %w", q.Op, q.Name, err)
		}
		a.logger.Debug("Query finished.", "op", q.Op, "name", q.Name, "target", q.Target)
		fmt.Fprintf(a.outW, "query %s %q: %s\n", q.Op, q.Name, result)
	}

	for _, s := range a.model.Simulations {
		if err := a.runSimulation(ctx, s); err != nil {
			return fmt.Errorf("simulation %q failed: %w", s.Name, err)
		}
	}

	if len(a.model.Queries) == 0 && len(a.model.Simulations) == 0 {
		a.logger.Warn("No queries or simulations found in workload, nothing to run.")
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runSimulation(ctx context.Context, s *config.Simulation) error {
	seed := s.Seed
	if a.config.Seed != 0 {
		seed = a.config.Seed
	}

	a.logger.Info("Starting simulation.", "name", s.Name, "users", s.Users, "rounds", s.Rounds)
	stats, err := social.Simulate(ctx, social.Params{
		Users:          s.Users,
		AvgFriendships: s.AvgFriendships,
		Rounds:         s.Rounds,
		Workers:        a.config.WorkerCount,
		Seed:           seed,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "simulation %q: users=%d rounds=%d reachable=%.1f%% separation=%.1f\n",
		s.Name, s.Users, stats.Rounds, stats.Reachable*100, stats.Separation)
	return nil
}

// buildGraph registers every vertex before any edge, so edges may be listed
// in any order.
func buildGraph(def *config.Graph) (*graph.Graph[int], error) {
	g := graph.New[int]()
	for _, v := range def.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range def.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func toAncestryEdges(pairs [][2]int) []ancestry.Edge[int] {
	edges := make([]ancestry.Edge[int], 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, ancestry.Edge[int]{Parent: p[0], Child: p[1]})
	}
	return edges
}
