package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
	"weak"

	"github.com/google/uuid"
	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/eventsink"
	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/hookid"
	"github.com/specialistvlad/graphflow/internal/inmemoryjournal"
	"github.com/specialistvlad/graphflow/internal/journal"
	"github.com/specialistvlad/graphflow/internal/library"
	"github.com/specialistvlad/graphflow/internal/message"
	"github.com/specialistvlad/graphflow/internal/metrics"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/schema"
)

var (
	ErrNotStarted     = errors.New("engine not started")
	ErrAlreadyStarted = errors.New("engine already started")
	ErrClosed         = errors.New("engine closed")
)

// dispatcher is the state shared by the engine and its workers. It holds no
// reference to the Library.
type dispatcher struct {
	queue   chan message.Message
	runs    sync.Map // Key: run id, Value: *Run
	closed  chan struct{}
	router  *processor.Router
	journal journal.Store
	sink    eventsink.Sink
	metrics *metrics.Metrics
	out     io.Writer
}

// Engine owns the Library, the dispatch channel and the worker pool.
type Engine struct {
	cfg     Config
	library *library.Library
	d       *dispatcher

	mu        sync.Mutex
	started   bool
	closeOnce sync.Once
	workers   sync.WaitGroup
}

// New creates an engine. Start must be called before Execute.
func New(cfg Config, lib *library.Library, router *processor.Router, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		library: lib,
		d: &dispatcher{
			queue:   make(chan message.Message, cfg.Queue.Capacity),
			closed:  make(chan struct{}),
			router:  router,
			journal: inmemoryjournal.New(),
			sink:    eventsink.Log{},
			out:     os.Stdout,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Journal returns the store instructions are recorded in.
func (e *Engine) Journal() journal.Store { return e.d.journal }

// Start spawns the worker pool. Workers run until Close; ctx supplies
// their logger and must not be done yet.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	select {
	case <-e.d.closed:
		return ErrClosed
	default:
	}
	if e.started {
		return ErrAlreadyStarted
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("starting engine: %w", err)
	}
	e.started = true

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting worker pool.", "workers", e.cfg.Worker.PoolSize, "queue_capacity", e.cfg.Queue.Capacity)
	ref := weak.Make(e.library)
	for i := 0; i < e.cfg.Worker.PoolSize; i++ {
		w := &worker{id: i, library: ref, d: e.d}
		e.workers.Add(1)
		go func() {
			defer e.workers.Done()
			w.loop(ctx)
		}()
	}
	logger.Info("✅ Engine started", "workers", e.cfg.Worker.PoolSize)
	return nil
}

// Execute starts a run of g. By default it seeds one Instruction for every
// entry command of the graph (a Command no Event drives). Seeding blocks
// while the channel is full.
func (e *Engine) Execute(ctx context.Context, g *graph.Graph, opts ...ExecuteOption) (*Run, error) {
	e.mu.Lock()
	started := e.started
	e.mu.Unlock()
	if !started {
		return nil, ErrNotStarted
	}
	select {
	case <-e.d.closed:
		return nil, ErrClosed
	default:
	}

	o := &executeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	seeds, err := resolveSeeds(g, o.seeds)
	if err != nil {
		return nil, err
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}

	logger := ctxlog.FromContext(ctx).With("run_id", o.runID)
	run := newRun(o.runID, g, func(r *Run) {
		e.d.runs.Delete(r.ID())
		e.d.metrics.RunFinished(string(r.Status()))
		stats := r.Stats()
		logger.Info("🏁 Run finished",
			"status", r.Status(),
			"executed", stats.Executed,
			"skipped", stats.Skipped,
			"dropped", stats.Dropped,
			"failed", stats.Failed,
			"duration", time.Since(r.started),
		)
	})
	if _, loaded := e.d.runs.LoadOrStore(run.ID(), run); loaded {
		return nil, fmt.Errorf("run '%s' is already active", run.ID())
	}

	logger.Info("▶️ Run started", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "seeds", len(seeds))
	if len(seeds) == 0 {
		logger.Warn("Graph has no entry commands; nothing to execute.")
		run.finish()
		return run, nil
	}

	// Count every seed up front so the run cannot go quiet between sends.
	run.add(int64(len(seeds)))
	for i, h := range seeds {
		n, _ := g.Node(h.Instance)
		msg := message.Instruction{
			Context: message.Context{RunID: run.ID(), Graph: g, Node: n},
			Command: h.Property.ID(),
		}
		logger.Debug("Seeding instruction.", "hook", h.String())
		if err := e.d.enqueue(ctx, msg); err != nil {
			run.Cancel()
			for range len(seeds) - i {
				run.release()
			}
			return nil, fmt.Errorf("seeding run '%s': %w", run.ID(), err)
		}
	}
	return run, nil
}

// Close broadcasts Shutdown to every worker, waits for them to leave, and
// drops the engine's reference to the Library. Instructions still queued are
// released without running.
func (e *Engine) Close(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	e.closeOnce.Do(func() {
		e.mu.Lock()
		started := e.started
		close(e.d.closed)
		e.mu.Unlock()

		if started {
			logger.Debug("Broadcasting shutdown to workers.", "workers", e.cfg.Worker.PoolSize)
			stopped := make(chan struct{})
			go func() {
				e.workers.Wait()
				close(stopped)
			}()
		broadcast:
			for i := 0; i < e.cfg.Worker.PoolSize; i++ {
				select {
				case e.d.queue <- message.Shutdown{}:
				case <-stopped:
					break broadcast
				}
			}
			<-stopped
		}

		e.d.drain(ctx)
		e.d.runs.Range(func(_, v any) bool {
			run := v.(*Run)
			run.Cancel()
			run.finish()
			return true
		})
		e.library = nil
		if err := e.d.sink.Close(); err != nil {
			logger.Warn("Event sink close failed.", "error", err)
		}
		logger.Info("🏁 Engine stopped")
	})
	return nil
}

// resolveSeeds turns explicit hooks, or the graph's entry commands, into
// Command hooks.
func resolveSeeds(g *graph.Graph, raw []string) ([]graph.Hook, error) {
	if len(raw) == 0 {
		return g.EntryCommands(), nil
	}
	seeds := make([]graph.Hook, 0, len(raw))
	for _, r := range raw {
		addr, err := hookid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
		n, ok := g.Node(addr.Instance)
		if !ok {
			return nil, fmt.Errorf("seed '%s': %w", r, graph.ErrUnknownInstance)
		}
		p, ok := n.Property(schema.PropertyID(addr.Property))
		if !ok {
			return nil, fmt.Errorf("seed '%s': %w", r, graph.ErrUnknownProperty)
		}
		if !p.IsCommand() {
			return nil, fmt.Errorf("seed '%s' is a %s, not a command", r, p.Kind())
		}
		seeds = append(seeds, graph.NewHook(n, p))
	}
	return seeds, nil
}

// enqueue sends with backpressure; used for external seeding.
func (d *dispatcher) enqueue(ctx context.Context, msg message.Instruction) error {
	select {
	case d.queue <- msg:
		d.metrics.QueueDepth(len(d.queue))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.closed:
		return ErrClosed
	}
}

// route sends from a worker without ever blocking it.
func (d *dispatcher) route(run *Run, msg message.Instruction) {
	select {
	case d.queue <- msg:
		d.metrics.QueueDepth(len(d.queue))
		return
	default:
	}
	go func() {
		select {
		case d.queue <- msg:
		case <-d.closed:
			run.release()
		}
	}()
}

// drain releases every instruction left in the channel after the workers
// have stopped.
func (d *dispatcher) drain(ctx context.Context) {
	for {
		select {
		case msg := <-d.queue:
			if instr, ok := msg.(message.Instruction); ok {
				if run := d.run(instr.Context.RunID); run != nil {
					ctxlog.FromContext(ctx).Debug("Releasing unprocessed instruction.", "hook", instr.Hook())
					run.dropped.Add(1)
					run.release()
				}
			}
		default:
			return
		}
	}
}

func (d *dispatcher) run(id string) *Run {
	v, ok := d.runs.Load(id)
	if !ok {
		return nil
	}
	return v.(*Run)
}
