package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/graphflow/internal/graph"
)

// Status is the final state of a run.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Stats counts how a run's instructions ended.
type Stats struct {
	Executed int64
	Skipped  int64
	Dropped  int64
	Failed   int64
}

// Run tracks one execution of a graph until it goes quiet.
type Run struct {
	id      string
	graph   *graph.Graph
	started time.Time

	pending   atomic.Int64
	cancelled atomic.Bool
	done      chan struct{}
	doneOnce  sync.Once
	onFinish  func(*Run)

	// locks serializes commands per instance key.
	locks sync.Map // Key: instance key, Value: *sync.Mutex

	executed atomic.Int64
	skipped  atomic.Int64
	dropped  atomic.Int64
	failed   atomic.Int64
}

func newRun(id string, g *graph.Graph, onFinish func(*Run)) *Run {
	return &Run{
		id:       id,
		graph:    g,
		started:  time.Now(),
		done:     make(chan struct{}),
		onFinish: onFinish,
	}
}

// ID returns the run id.
func (r *Run) ID() string { return r.id }

// Graph returns the graph being executed.
func (r *Run) Graph() *graph.Graph { return r.graph }

// Done is closed once the run has gone quiet.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the run has gone quiet or ctx ends.
func (r *Run) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel makes workers drop the run's remaining instructions. The run still
// completes through quiescence once they are drained.
func (r *Run) Cancel() {
	r.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called.
func (r *Run) Cancelled() bool { return r.cancelled.Load() }

// Status reports how the run ended, or is ending.
func (r *Run) Status() Status {
	if r.Cancelled() {
		return StatusCancelled
	}
	return StatusCompleted
}

// Stats returns a snapshot of the run's counters.
func (r *Run) Stats() Stats {
	return Stats{
		Executed: r.executed.Load(),
		Skipped:  r.skipped.Load(),
		Dropped:  r.dropped.Load(),
		Failed:   r.failed.Load(),
	}
}

// Pending returns the number of instructions queued or in flight.
func (r *Run) Pending() int64 { return r.pending.Load() }

// add accounts for n instructions about to be queued.
func (r *Run) add(n int64) {
	r.pending.Add(n)
}

// release marks one instruction finished; the last one completes the run.
func (r *Run) release() {
	if r.pending.Add(-1) == 0 {
		r.finish()
	}
}

func (r *Run) finish() {
	r.doneOnce.Do(func() {
		if r.onFinish != nil {
			r.onFinish(r)
		}
		close(r.done)
	})
}

// lock acquires the instance's execution lock and returns its unlock.
func (r *Run) lock(instance string) func() {
	v, _ := r.locks.LoadOrStore(instance, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
