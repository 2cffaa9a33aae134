// Package social simulates a random friendship network and measures how far
// one user's extended network reaches. It is a consumer of the graph store
// and the breadth-first path search.
package social

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/vk/graphwalk/internal/graph"
	"github.com/vk/graphwalk/internal/traverse"
)

var (
	// ErrSelfFriendship is returned when a user is befriended with itself.
	ErrSelfFriendship = errors.New("a user cannot be friends with itself")
	// ErrFriendshipExists is returned when two users are already friends.
	ErrFriendshipExists = errors.New("friendship already exists")
	// ErrTooFewUsers is returned by Populate when the requested average
	// number of friendships cannot be reached.
	ErrTooFewUsers = errors.New("number of users must be greater than the average number of friendships")
)

// Network is a set of users with bidirectional friendships. Users get
// sequential identifiers starting at 1.
type Network struct {
	lastID int
	names  map[int]string
	graph  *graph.Graph[int]
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		names: make(map[int]string),
		graph: graph.New[int](),
	}
}

// AddUser registers a new user and returns its identifier.
func (n *Network) AddUser(name string) (int, error) {
	id := n.lastID + 1
	if err := n.graph.AddVertex(id); err != nil {
		return 0, err
	}
	n.lastID = id
	n.names[id] = name
	return id, nil
}

// Name returns the name a user was registered with.
func (n *Network) Name(id int) (string, bool) {
	name, ok := n.names[id]
	return name, ok
}

// Users returns the number of registered users.
func (n *Network) Users() int {
	return n.graph.Len()
}

// Friendships returns the number of friendships.
func (n *Network) Friendships() int {
	return n.graph.EdgeCount() / 2
}

// Friends returns the friends of a user in no particular order.
func (n *Network) Friends(id int) ([]int, error) {
	return n.graph.Neighbors(id)
}

// AddFriendship creates a bidirectional friendship between two users.
func (n *Network) AddFriendship(user, friend int) error {
	if user == friend {
		return fmt.Errorf("%w: %d", ErrSelfFriendship, user)
	}
	friends, err := n.graph.Neighbors(user)
	if err != nil {
		return err
	}
	if !n.graph.HasVertex(friend) {
		return fmt.Errorf("%w: %d", graph.ErrUnknownVertex, friend)
	}
	if slices.Contains(friends, friend) {
		return fmt.Errorf("%w: %d and %d", ErrFriendshipExists, user, friend)
	}

	if err := n.graph.AddEdge(user, friend); err != nil {
		return err
	}
	return n.graph.AddEdge(friend, user)
}

// Populate discards every user and friendship, then creates users numbered
// 1..users and users*avgFriendships/2 random friendships between them.
func (n *Network) Populate(users, avgFriendships int, rng *rand.Rand) error {
	if avgFriendships < 0 || users <= avgFriendships {
		return fmt.Errorf("%w: users=%d avg_friendships=%d", ErrTooFewUsers, users, avgFriendships)
	}

	*n = *NewNetwork()
	for i := range users {
		if _, err := n.AddUser(fmt.Sprintf("User %d", i)); err != nil {
			return err
		}
	}

	remaining := users * avgFriendships / 2
	for remaining > 0 {
		x := rng.IntN(users) + 1
		y := rng.IntN(users) + 1
		err := n.AddFriendship(x, y)
		switch {
		case err == nil:
			remaining--
		case errors.Is(err, ErrSelfFriendship), errors.Is(err, ErrFriendshipExists):
			continue
		default:
			return err
		}
	}
	return nil
}

// AllSocialPaths returns a shortest friendship path from user to every user
// in its extended network, user itself included.
func (n *Network) AllSocialPaths(user int) (map[int]traverse.Path[int], error) {
	return traverse.PathsFrom[int](n.graph, user)
}
