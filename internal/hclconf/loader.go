// Package hclconf loads graphwalk workloads written in HCL.
//
// A workload file may contain any mix of the following blocks:
//
//	graph "demo" {
//	  vertices = [1, 2, 3]
//	  edges    = [[1, 2], [2, 3]]
//	}
//
//	ancestry "family" {
//	  edges = [[1, 3], [2, 3]] # [parent, child]
//	}
//
//	query "bfs" "shortest" {
//	  target = "demo"
//	  start  = 1
//	  goal   = 3
//	}
//
//	simulation "social" {
//	  users           = 100
//	  avg_friendships = 5
//	  rounds          = 10
//	}
package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/graphwalk/internal/config"
	"github.com/vk/graphwalk/internal/ctxlog"
	"github.com/vk/graphwalk/internal/fsutil"
)

// Extensions lists the file extensions this loader understands.
var Extensions = []string{".hcl"}

// defaultRounds is used when a simulation block omits `rounds`.
const defaultRounds = 1

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL workload loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and translates the blocks
// into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		part, err := l.decodeBody(hclFile.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("failed to merge HCL file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.", "graphs", len(model.Graphs), "ancestries", len(model.Ancestries), "queries", len(model.Queries), "simulations", len(model.Simulations))
	return model, nil
}

// decodeBody decodes the top-level blocks of one file into a model.
func (l *Loader) decodeBody(body hcl.Body) (*config.Model, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, diags
	}

	model := config.NewModel()
	for _, g := range root.Graphs {
		def, err := l.translateGraph(g)
		if err != nil {
			return nil, err
		}
		if _, exists := model.Graphs[def.Name]; exists {
			return nil, fmt.Errorf("graph %q is declared more than once", def.Name)
		}
		model.Graphs[def.Name] = def
	}
	for _, a := range root.Ancestries {
		def, err := l.translateAncestry(a)
		if err != nil {
			return nil, err
		}
		if _, exists := model.Ancestries[def.Name]; exists {
			return nil, fmt.Errorf("ancestry %q is declared more than once", def.Name)
		}
		model.Ancestries[def.Name] = def
	}
	for _, q := range root.Queries {
		model.Queries = append(model.Queries, l.translateQuery(q))
	}
	for _, s := range root.Simulations {
		model.Simulations = append(model.Simulations, l.translateSimulation(s))
	}
	return model, nil
}
