package yamlconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/graphwalk/internal/config"
	"github.com/vk/graphwalk/internal/ctxlog"
)

func intPtr(v int) *int { return &v }

func TestDecode(t *testing.T) {
	model, err := Decode([]byte(`
graphs:
  demo:
    vertices: [1, 2, 3]
    edges: [[1, 2], [2, 3]]
ancestries:
  family:
    edges: [[10, 1]]
queries:
  - op: dfs
    name: any
    target: demo
    start: 1
    goal: 3
  - op: earliest_ancestor
    name: oldest
    target: family
    start: 1
simulations:
  - name: social
    users: 50
    avg_friendships: 4
`))
	require.NoError(t, err)

	want := &config.Model{
		Graphs: map[string]*config.Graph{
			"demo": {Name: "demo", Vertices: []int{1, 2, 3}, Edges: [][2]int{{1, 2}, {2, 3}}},
		},
		Ancestries: map[string]*config.Ancestry{
			"family": {Name: "family", Edges: [][2]int{{10, 1}}},
		},
		Queries: []*config.Query{
			{Op: config.OpDFS, Name: "any", Target: "demo", Start: 1, Goal: intPtr(3)},
			{Op: config.OpEarliestAncestor, Name: "oldest", Target: "family", Start: 1},
		},
		Simulations: []*config.Simulation{
			{Name: "social", Users: 50, AvgFriendships: 4, Rounds: defaultRounds},
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Empty(t *testing.T) {
	model, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, model.Graphs)
	assert.Empty(t, model.Queries)
}

func TestDecode_MultipleDocuments(t *testing.T) {
	model, err := Decode([]byte(`
graphs:
  line:
    vertices: [1, 2]
    edges: [[1, 2]]
---
queries:
  - op: bfs
    name: first
    target: line
    start: 1
    goal: 2
---
queries:
  - op: bft
    name: second
    target: line
    start: 2
`))
	require.NoError(t, err)

	require.Contains(t, model.Graphs, "line")
	require.Len(t, model.Queries, 2)
	assert.Equal(t, "first", model.Queries[0].Name)
	assert.Equal(t, "second", model.Queries[1].Name)
}

func TestDecode_MultipleDocumentsErrors(t *testing.T) {
	t.Run("duplicate graph in later document", func(t *testing.T) {
		_, err := Decode([]byte("graphs: {g: {vertices: [1]}}\n---\ngraphs: {g: {vertices: [2]}}\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, `document 1: graph "g" is declared more than once`)
	})

	t.Run("invalid later document", func(t *testing.T) {
		_, err := Decode([]byte("graphs: {g: {vertices: [1]}}\n---\nqueries: [{op: bft, name: q, target: g}]\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, `document 1: query 0 ("q"): start is required`)
	})
}

func TestDecode_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "unknown key", doc: "graphz: {}", wantErr: "field graphz not found"},
		{name: "bad edge", doc: "graphs: {g: {edges: [[1]]}}", wantErr: `graph "g": edge 0 has 1 elements, expected 2`},
		{name: "bad ancestry edge", doc: "ancestries: {a: {edges: [[1, 2, 3]]}}", wantErr: `ancestry "a": edge 0 has 3 elements`},
		{name: "missing start", doc: "queries: [{op: bft, name: q, target: g}]", wantErr: `query 0 ("q"): start is required`},
		{name: "not a number", doc: "graphs: {g: {vertices: [a]}}", wantErr: "cannot unmarshal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("graphs: {a: {vertices: [1]}}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("graphs: {b: {vertices: [2]}}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.yml"), []byte("graphs: {a: {vertices: [3]}}"), 0o600))

	_, err := NewLoader().Load(ctxlog.Discard(context.Background()), dir)
	assert.ErrorContains(t, err, `graph "a" is declared more than once`)

	require.NoError(t, os.Remove(filepath.Join(dir, "c.yml")))
	model, err := NewLoader().Load(ctxlog.Discard(context.Background()), dir)
	require.NoError(t, err)
	assert.Len(t, model.Graphs, 2)
}
