package hclconf

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/graphwalk/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// pairListType is the cty type every `edges` attribute is converted to.
var pairListType = cty.List(cty.List(cty.Number))

// translateGraph converts the HCL-specific graph schema into the agnostic model.
func (l *Loader) translateGraph(b *graphBlock) (*config.Graph, error) {
	edges, err := decodePairs(b.Edges)
	if err != nil {
		return nil, fmt.Errorf("graph %q: %w", b.Name, err)
	}
	return &config.Graph{
		Name:     b.Name,
		Vertices: b.Vertices,
		Edges:    edges,
	}, nil
}

// translateAncestry converts the HCL-specific ancestry schema into the agnostic model.
func (l *Loader) translateAncestry(b *ancestryBlock) (*config.Ancestry, error) {
	edges, err := decodePairs(b.Edges)
	if err != nil {
		return nil, fmt.Errorf("ancestry %q: %w", b.Name, err)
	}
	return &config.Ancestry{Name: b.Name, Edges: edges}, nil
}

// translateQuery converts the HCL-specific query schema into the agnostic model.
func (l *Loader) translateQuery(b *queryBlock) *config.Query {
	return &config.Query{
		Op:     config.Op(b.Op),
		Name:   b.Name,
		Target: b.Target,
		Start:  b.Start,
		Goal:   b.Goal,
	}
}

// translateSimulation converts the HCL-specific simulation schema into the agnostic model.
func (l *Loader) translateSimulation(b *simulationBlock) *config.Simulation {
	rounds := b.Rounds
	if rounds == 0 {
		rounds = defaultRounds
	}
	return &config.Simulation{
		Name:           b.Name,
		Users:          b.Users,
		AvgFriendships: b.AvgFriendships,
		Rounds:         rounds,
		Seed:           b.Seed,
	}
}

// decodePairs evaluates an `edges` expression such as [[1, 2], [2, 3]] into
// integer pairs. A missing attribute yields no pairs.
func decodePairs(expr hcl.Expression) ([][2]int, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, pairListType)
	if err != nil {
		return nil, fmt.Errorf("edges must be a list of [from, to] number pairs: %w", err)
	}

	var raw [][]int
	if err := gocty.FromCtyValue(converted, &raw); err != nil {
		return nil, fmt.Errorf("edges must hold whole numbers: %w", err)
	}

	pairs := make([][2]int, 0, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("edge %d has %d elements, expected 2", i, len(p))
		}
		pairs = append(pairs, [2]int{p[0], p[1]})
	}
	return pairs, nil
}
