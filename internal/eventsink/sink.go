// Package eventsink publishes fired events to observers outside the engine.
// Sinks are called synchronously from workers and must not block for long.
package eventsink

import (
	"context"
	"time"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
)

// Event describes one event fired by a node during a run.
type Event struct {
	RunID    string    `json:"run_id"`
	Instance string    `json:"instance"`
	Template string    `json:"template"`
	Event    string    `json:"event"`
	Targets  []string  `json:"targets,omitempty"`
	At       time.Time `json:"at"`
}

// Sink receives fired events.
type Sink interface {
	Publish(ctx context.Context, e Event)
	Close() error
}

// Log writes every event to the context logger at debug level.
type Log struct{}

func (Log) Publish(ctx context.Context, e Event) {
	ctxlog.FromContext(ctx).Debug("Event fired.",
		"run_id", e.RunID,
		"hook", e.Instance+"#"+e.Event,
		"template", e.Template,
		"targets", e.Targets,
	)
}

func (Log) Close() error { return nil }
