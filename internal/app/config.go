package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkloadPath string // .hcl / .yaml files or a directory of them

	LogFormat   string
	LogLevel    string
	WorkerCount int
	// Seed, when non-zero, replaces the seed of every simulation.
	Seed uint64
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkloadPath == "" {
		return nil, errors.New("WorkloadPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("WorkerCount must be at least 1")
	}
	return &cfg, nil
}
