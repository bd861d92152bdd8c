package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/graphwatch/internal/config"
	"github.com/vk/graphwatch/internal/ctxlog"
	"github.com/vk/graphwatch/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Scenario
	decoder  config.Decoder
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the scenario into the format-agnostic model first.
	model, decoder, err := loader.Load(ctx, cfg.ScenarioPath)
	if err != nil {
		// A failure to load the scenario is a fatal startup error.
		panic(fmt.Errorf("failed to load scenario: %w", err))
	}
	logger.Debug("Scenario loaded and translated into unified model.")

	// Create and populate the registry with compiled-in behavior modules.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All behavior modules registered.", "count", len(modules))

	// Validate the scenario against the registry before anything runs.
	if err := reg.Validate(ctx, model); err != nil {
		// A mismatch between scenario and registered behaviors is fatal.
		panic(err)
	}
	logger.Debug("Scenario validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		decoder:  decoder,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded scenario model. This is primarily for testing.
func (a *App) Model() *config.Scenario {
	return a.model
}
