package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestModel_Merge(t *testing.T) {
	m := NewModel()
	m.Graphs["a"] = &Graph{Name: "a"}
	m.Queries = []*Query{{Name: "first"}}

	other := NewModel()
	other.Graphs["b"] = &Graph{Name: "b"}
	other.Ancestries["fam"] = &Ancestry{Name: "fam"}
	other.Queries = []*Query{{Name: "second"}}
	other.Simulations = []*Simulation{{Name: "sim"}}

	require.NoError(t, m.Merge(other))
	assert.Len(t, m.Graphs, 2)
	assert.Contains(t, m.Ancestries, "fam")
	require.Len(t, m.Queries, 2)
	assert.Equal(t, "first", m.Queries[0].Name)
	assert.Equal(t, "second", m.Queries[1].Name)
	assert.Len(t, m.Simulations, 1)

	dup := NewModel()
	dup.Graphs["a"] = &Graph{Name: "a"}
	assert.ErrorContains(t, m.Merge(dup), `graph "a" is declared more than once`)

	dupAncestry := NewModel()
	dupAncestry.Ancestries["fam"] = &Ancestry{Name: "fam"}
	assert.ErrorContains(t, m.Merge(dupAncestry), `ancestry "fam" is declared more than once`)
}

func TestModel_Validate(t *testing.T) {
	base := func() *Model {
		m := NewModel()
		m.Graphs["g"] = &Graph{Name: "g", Vertices: []int{1, 2}}
		m.Ancestries["fam"] = &Ancestry{Name: "fam"}
		return m
	}

	t.Run("valid", func(t *testing.T) {
		m := base()
		m.Queries = []*Query{
			{Op: OpBFT, Name: "walk", Target: "g", Start: 1},
			{Op: OpBFS, Name: "path", Target: "g", Start: 1, Goal: intPtr(2)},
			{Op: OpEarliestAncestor, Name: "oldest", Target: "fam", Start: 1},
		}
		m.Simulations = []*Simulation{{Name: "s", Users: 10, AvgFriendships: 2, Rounds: 1}}
		assert.NoError(t, m.Validate())
	})

	t.Run("all problems are reported", func(t *testing.T) {
		m := base()
		m.Queries = []*Query{
			{Op: "teleport", Name: "q1", Target: "g"},
			{Op: OpDFS, Name: "q2", Target: "g", Start: 1},
			{Op: OpBFT, Name: "q3", Target: "missing"},
			{Op: OpLineages, Name: "q4", Target: "g"},
		}
		m.Simulations = []*Simulation{{Name: "s", Users: 2, AvgFriendships: 5, Rounds: 0}}

		err := m.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, `query "q1": unknown operation "teleport"`)
		assert.ErrorContains(t, err, `query "q2": operation "dfs" requires a goal`)
		assert.ErrorContains(t, err, `query "q3": graph "missing" is not declared`)
		assert.ErrorContains(t, err, `query "q4": ancestry "g" is not declared`)
		assert.ErrorContains(t, err, `simulation "s": users (2) must be greater than avg_friendships (5)`)
		assert.ErrorContains(t, err, `simulation "s": rounds must be positive`)
	})
}

func TestOp(t *testing.T) {
	for _, op := range Ops {
		assert.False(t, op.NeedsGoal() && op.OnAncestry(), "op %s", op)
	}
	assert.True(t, OpDFSRecursive.NeedsGoal())
	assert.False(t, OpDFTRecursive.NeedsGoal())
	assert.True(t, OpLineages.OnAncestry())
}
