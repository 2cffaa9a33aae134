package config

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/graphwalk/internal/ctxlog"
	"github.com/vk/graphwalk/internal/fsutil"
)

// MultiLoader discovers workload files and hands each one to the Loader
// registered for its extension, merging the results into a single Model.
type MultiLoader struct {
	loaders map[string]Loader
}

// NewMultiLoader creates a loader with no formats registered.
func NewMultiLoader() *MultiLoader {
	return &MultiLoader{loaders: make(map[string]Loader)}
}

// Register associates a format loader with one or more file extensions,
// such as ".hcl". Extensions are matched case-insensitively.
func (m *MultiLoader) Register(l Loader, extensions ...string) *MultiLoader {
	for _, ext := range extensions {
		m.loaders[strings.ToLower(ext)] = l
	}
	return m
}

// Load implements Loader.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	extensions := slices.Sorted(maps.Keys(m.loaders))
	if len(extensions) == 0 {
		return nil, fmt.Errorf("no workload formats registered")
	}

	files, err := fsutil.FindFilesByExtension(paths, extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no workload files found in %s (supported: %s)", strings.Join(paths, ", "), strings.Join(extensions, ", "))
	}
	logger.Debug("Discovered workload files.", "count", len(files))

	model := NewModel()
	for _, file := range files {
		l := m.loaders[strings.ToLower(filepath.Ext(file))]
		part, err := l.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", file, err)
		}
	}

	logger.Debug("Workload loaded.", "graphs", len(model.Graphs), "ancestries", len(model.Ancestries), "queries", len(model.Queries), "simulations", len(model.Simulations))
	return model, nil
}
