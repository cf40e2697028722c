package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/hcl"
	"github.com/specialistvlad/graphflow/internal/library"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	ctx      context.Context
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	library  *library.Library
	router   *processor.Router

	metrics    *prometheus.Registry
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Catalog or registry errors are startup failures and panic.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.Load(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules))

	if len(cfg.CatalogPaths) > 0 {
		nodes, err := hcl.LoadCatalog(ctx, cfg.CatalogPaths...)
		if err != nil {
			panic(fmt.Errorf("failed to load catalog: %w", err))
		}
		for _, n := range nodes {
			if reg.HasNode(n.ID()) {
				panic(fmt.Errorf("catalog template '%s' is already built in", n.ID()))
			}
			reg.RegisterNode(n)
		}
		logger.Debug("Catalog templates registered.", "count", len(nodes))
	}

	lib, router, err := reg.Build(ctx)
	if err != nil {
		// A mismatch between code and catalog is a programmer error.
		panic(err)
	}

	return &App{
		outW:     outW,
		ctx:      ctx,
		logger:   logger,
		config:   cfg,
		registry: reg,
		library:  lib,
		router:   router,
		metrics:  prometheus.NewRegistry(),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Library returns the templates the app knows about.
func (a *App) Library() *library.Library {
	return a.library
}
