package social

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/vk/graphwalk/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Params configures Simulate.
type Params struct {
	Users          int
	AvgFriendships int
	Rounds         int
	// Workers bounds how many rounds run at the same time. Values below one
	// run the rounds one after another.
	Workers int
	Seed    uint64
}

// Stats aggregates the results of every round.
type Stats struct {
	Rounds int
	// Reachable is the mean fraction of users in user 1's extended network.
	Reachable float64
	// Separation is the mean length of those paths, counted in users with
	// user 1 included.
	Separation float64
}

type roundResult struct {
	reachable  float64
	separation float64
}

// Simulate runs p.Rounds independent rounds. Each round populates its own
// network from a generator seeded with (p.Seed, round) and measures the
// social paths of user 1. Rounds never share a network.
func Simulate(ctx context.Context, p Params) (Stats, error) {
	logger := ctxlog.FromContext(ctx)
	if p.Rounds <= 0 {
		return Stats{}, fmt.Errorf("rounds must be positive, got %d", p.Rounds)
	}

	workers := max(p.Workers, 1)
	logger.Debug("Simulation started.", "users", p.Users, "avg_friendships", p.AvgFriendships, "rounds", p.Rounds, "workers", workers)

	results := make([]roundResult, p.Rounds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for round := range p.Rounds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runRound(p, round)
			if err != nil {
				return fmt.Errorf("round %d: %w", round, err)
			}
			results[round] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{Rounds: p.Rounds}
	for _, r := range results {
		stats.Reachable += r.reachable
		stats.Separation += r.separation
	}
	stats.Reachable /= float64(p.Rounds)
	stats.Separation /= float64(p.Rounds)

	logger.Debug("Simulation finished.", "reachable", stats.Reachable, "separation", stats.Separation)
	return stats, nil
}

func runRound(p Params, round int) (roundResult, error) {
	rng := rand.New(rand.NewPCG(p.Seed, uint64(round)))

	n := NewNetwork()
	if err := n.Populate(p.Users, p.AvgFriendships, rng); err != nil {
		return roundResult{}, err
	}
	paths, err := n.AllSocialPaths(1)
	if err != nil {
		return roundResult{}, err
	}

	total := 0
	for _, path := range paths {
		total += len(path)
	}
	return roundResult{
		reachable:  float64(len(paths)) / float64(p.Users),
		separation: float64(total) / float64(len(paths)),
	}, nil
}
