package engine

import (
	"io"

	"github.com/specialistvlad/graphflow/internal/eventsink"
	"github.com/specialistvlad/graphflow/internal/journal"
	"github.com/specialistvlad/graphflow/internal/metrics"
)

// Option configures an Engine.
type Option func(*Engine)

// WithJournal records every processed instruction in s.
func WithJournal(s journal.Store) Option {
	return func(e *Engine) { e.d.journal = s }
}

// WithSink publishes every fired event to s.
func WithSink(s eventsink.Sink) Option {
	return func(e *Engine) { e.d.sink = s }
}

// WithMetrics records engine metrics in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.d.metrics = m }
}

// WithOutput sets the writer handed to processors for printed output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.d.out = w }
}

// ExecuteOption configures a single Execute call.
type ExecuteOption func(*executeOptions)

type executeOptions struct {
	runID string
	seeds []string
}

// WithRunID fixes the run id instead of generating one.
func WithRunID(id string) ExecuteOption {
	return func(o *executeOptions) { o.runID = id }
}

// WithSeeds replaces the graph's entry commands with explicit
// "instance#command" hooks.
func WithSeeds(hooks ...string) ExecuteOption {
	return func(o *executeOptions) { o.seeds = append(o.seeds, hooks...) }
}
