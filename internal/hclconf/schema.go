package hclconf

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Graphs      []*graphBlock      `hcl:"graph,block"`
	Ancestries  []*ancestryBlock   `hcl:"ancestry,block"`
	Queries     []*queryBlock      `hcl:"query,block"`
	Simulations []*simulationBlock `hcl:"simulation,block"`
	Remain      hcl.Body           `hcl:",remain"`
}

// graphBlock represents a `graph "name" { ... }` block.
type graphBlock struct {
	Name     string         `hcl:"name,label"`
	Vertices []int          `hcl:"vertices,optional"`
	Edges    hcl.Expression `hcl:"edges,optional"`
}

// ancestryBlock represents an `ancestry "name" { ... }` block. Each edge is
// a [parent, child] pair.
type ancestryBlock struct {
	Name  string         `hcl:"name,label"`
	Edges hcl.Expression `hcl:"edges,optional"`
}

// queryBlock represents a `query "op" "name" { ... }` block.
type queryBlock struct {
	Op     string `hcl:"op,label"`
	Name   string `hcl:"name,label"`
	Target string `hcl:"target"`
	Start  int    `hcl:"start"`
	Goal   *int   `hcl:"goal,optional"`
}

// simulationBlock represents a `simulation "name" { ... }` block.
type simulationBlock struct {
	Name           string `hcl:"name,label"`
	Users          int    `hcl:"users"`
	AvgFriendships int    `hcl:"avg_friendships"`
	Rounds         int    `hcl:"rounds,optional"`
	Seed           uint64 `hcl:"seed,optional"`
}
