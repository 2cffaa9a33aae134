package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/graphwalk/internal/config"
	"github.com/vk/graphwalk/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp loads and validates the workload named by cfg. Query results are
// written to outW and log records to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.WorkloadPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load workload: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	logger.Debug("Workload loaded and validated.", "graphs", len(model.Graphs), "queries", len(model.Queries))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  model,
	}, nil
}

// Model returns the loaded workload. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
