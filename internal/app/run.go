package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/engine"
	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/hcl"
	"github.com/specialistvlad/graphflow/internal/journal"
	"github.com/specialistvlad/graphflow/internal/metrics"
)

// Result summarizes a finished run.
type Result struct {
	RunID  string
	Status engine.Status
	Stats  engine.Stats
}

// Validate loads the configured graph files and checks them against the
// library without executing anything.
func (a *App) Validate(ctx context.Context) (*graph.Graph, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if len(a.config.GraphPaths) == 0 {
		return nil, errors.New("no graph files given")
	}
	g, err := hcl.LoadGraph(ctx, a.library.Schema(), a.config.GraphPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	a.logger.Debug("Graph loaded.", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// Run executes the configured graph once and waits for it to go quiet.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	g, err := a.Validate(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := a.engineConfig(ctx)
	if err != nil {
		return nil, err
	}

	store, closeJournal, err := a.newJournal(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closeJournal(); err != nil {
			a.logger.Warn("Journal close failed.", "error", err)
		}
	}()
	sink, err := a.newSink(ctx)
	if err != nil {
		return nil, err
	}

	a.healthCheckServer()
	defer a.closeHealthCheckServer()

	eng, err := engine.New(cfg, a.library, a.router,
		engine.WithJournal(store),
		engine.WithSink(sink),
		engine.WithMetrics(metrics.New(a.metrics)),
		engine.WithOutput(a.outW),
	)
	if err != nil {
		_ = sink.Close()
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if err := eng.Start(ctx); err != nil {
		_ = eng.Close(ctx)
		return nil, fmt.Errorf("failed to start engine: %w", err)
	}
	defer eng.Close(ctx)

	a.logger.Info("🚀 Starting graph execution...", "nodes", g.NodeCount(), "workers", cfg.Worker.PoolSize)
	run, err := eng.Execute(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w", err)
	}

	waitCtx := ctx
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}
	if err := run.Wait(waitCtx); err != nil {
		run.Cancel()
		return nil, fmt.Errorf("run '%s' did not finish: %w", run.ID(), err)
	}

	res := &Result{RunID: run.ID(), Status: run.Status(), Stats: run.Stats()}
	entries, err := store.Entries(ctx, run.ID())
	if err != nil {
		a.logger.Warn("Journal read failed.", "error", err)
	} else {
		a.logger.Debug("Journal recorded.", "entries", len(entries), "failed", journal.Count(entries, journal.OutcomeFailed))
	}
	a.logger.Debug("App.Run method finished.")
	return res, nil
}

// engineConfig reads the engine config files and applies the worker flag.
func (a *App) engineConfig(ctx context.Context) (engine.Config, error) {
	var (
		cfg engine.Config
		err error
	)
	if a.config.EngineConfigPath != "" {
		cfg, err = engine.LoadConfigFiles(ctx, engine.DefaultConfigPath, a.config.EngineConfigPath)
	} else {
		cfg, err = engine.LoadConfig(ctx)
	}
	if err != nil {
		return engine.Config{}, fmt.Errorf("failed to load engine config: %w", err)
	}
	if a.config.WorkerCount > 0 {
		cfg.Worker.PoolSize = a.config.WorkerCount
	}
	return cfg, nil
}
