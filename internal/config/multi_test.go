package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/graphwalk/internal/ctxlog"
)

// stubLoader returns one graph per file, named after the file.
type stubLoader struct {
	calls []string
	err   error
}

func (s *stubLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	if s.err != nil {
		return nil, s.err
	}
	m := NewModel()
	for _, p := range paths {
		s.calls = append(s.calls, p)
		name := filepath.Base(p)
		m.Graphs[name] = &Graph{Name: name}
		m.Queries = append(m.Queries, &Query{Name: name})
	}
	return m, nil
}

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestMultiLoader_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.hcl", "b.yaml", "c.YML", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0o600))
	}

	hclLoader := &stubLoader{}
	yamlLoader := &stubLoader{}
	m := NewMultiLoader().
		Register(hclLoader, ".hcl").
		Register(yamlLoader, ".yaml", ".YML")

	model, err := m.Load(testContext(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.hcl")}, hclLoader.calls)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "b.yaml"), filepath.Join(dir, "c.YML")}, yamlLoader.calls)
	assert.Len(t, model.Graphs, 3)
	assert.Len(t, model.Queries, 3)
}

func TestMultiLoader_Errors(t *testing.T) {
	t.Run("no formats", func(t *testing.T) {
		_, err := NewMultiLoader().Load(testContext(), t.TempDir())
		assert.ErrorContains(t, err, "no workload formats registered")
	})

	t.Run("no files", func(t *testing.T) {
		_, err := NewMultiLoader().Register(&stubLoader{}, ".hcl").Load(testContext(), t.TempDir())
		assert.ErrorContains(t, err, "no workload files found")
	})

	t.Run("format error is returned", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), nil, 0o600))
		boom := errors.New("boom")

		_, err := NewMultiLoader().Register(&stubLoader{err: boom}, ".hcl").Load(testContext(), dir)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("duplicate names across files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "x"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "g.hcl"), nil, 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "x", "g.hcl"), nil, 0o600))

		_, err := NewMultiLoader().Register(&stubLoader{}, ".hcl").Load(testContext(), dir)
		assert.ErrorContains(t, err, `graph "g.hcl" is declared more than once`)
	})
}
