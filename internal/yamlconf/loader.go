// Package yamlconf loads graphwalk workloads written in YAML. The document
// layout mirrors the HCL blocks:
//
//	graphs:
//	  demo:
//	    vertices: [1, 2, 3]
//	    edges: [[1, 2], [2, 3]]
//	ancestries:
//	  family:
//	    edges: [[1, 3], [2, 3]]
//	queries:
//	  - op: bfs
//	    name: shortest
//	    target: demo
//	    start: 1
//	    goal: 3
//	simulations:
//	  - name: social
//	    users: 100
//	    avg_friendships: 5
//	    rounds: 10
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/vk/graphwalk/internal/config"
	"github.com/vk/graphwalk/internal/ctxlog"
	"github.com/vk/graphwalk/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions this loader understands.
var Extensions = []string{".yaml", ".yml"}

const defaultRounds = 1

type document struct {
	Graphs      map[string]graphDoc    `yaml:"graphs"`
	Ancestries  map[string]ancestryDoc `yaml:"ancestries"`
	Queries     []queryDoc             `yaml:"queries"`
	Simulations []simulationDoc        `yaml:"simulations"`
}

type graphDoc struct {
	Vertices []int   `yaml:"vertices"`
	Edges    [][]int `yaml:"edges"`
}

type ancestryDoc struct {
	Edges [][]int `yaml:"edges"`
}

type queryDoc struct {
	Op     string `yaml:"op"`
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Start  *int   `yaml:"start"`
	Goal   *int   `yaml:"goal"`
}

type simulationDoc struct {
	Name           string `yaml:"name"`
	Users          int    `yaml:"users"`
	AvgFriendships int    `yaml:"avg_friendships"`
	Rounds         int    `yaml:"rounds"`
	Seed           uint64 `yaml:"seed"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML workload loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every YAML file found under paths into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}

	model := config.NewModel()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		part, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("failed to merge YAML file %s: %w", file, err)
		}
	}

	logger.Debug("YAML loading complete.", "files", len(files), "graphs", len(model.Graphs), "queries", len(model.Queries))
	return model, nil
}

// Decode translates a YAML stream into a model. Documents separated by
// "---" are merged in order. Unknown keys are rejected.
func Decode(data []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	model := config.NewModel()
	for i := 0; ; i++ {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return model, nil
			}
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		part, err := translate(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}
}

// translate converts one decoded document into a model.
func translate(doc document) (*config.Model, error) {
	model := config.NewModel()

	// Sorted so error messages are stable.
	for _, name := range sortedKeys(doc.Graphs) {
		g := doc.Graphs[name]
		edges, err := toPairs(g.Edges)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", name, err)
		}
		model.Graphs[name] = &config.Graph{Name: name, Vertices: g.Vertices, Edges: edges}
	}
	for _, name := range sortedKeys(doc.Ancestries) {
		edges, err := toPairs(doc.Ancestries[name].Edges)
		if err != nil {
			return nil, fmt.Errorf("ancestry %q: %w", name, err)
		}
		model.Ancestries[name] = &config.Ancestry{Name: name, Edges: edges}
	}
	for i, q := range doc.Queries {
		if q.Start == nil {
			return nil, fmt.Errorf("query %d (%q): start is required", i, q.Name)
		}
		model.Queries = append(model.Queries, &config.Query{
			Op:     config.Op(q.Op),
			Name:   q.Name,
			Target: q.Target,
			Start:  *q.Start,
			Goal:   q.Goal,
		})
	}
	for _, s := range doc.Simulations {
		rounds := s.Rounds
		if rounds == 0 {
			rounds = defaultRounds
		}
		model.Simulations = append(model.Simulations, &config.Simulation{
			Name:           s.Name,
			Users:          s.Users,
			AvgFriendships: s.AvgFriendships,
			Rounds:         rounds,
			Seed:           s.Seed,
		})
	}
	return model, nil
}

func toPairs(raw [][]int) ([][2]int, error) {
	if len(raw) == 0 {
		return nil, nil
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

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
