// Package journal defines the interface for recording what happened to each
// Instruction of a run.
//
// # Why Journal Exists
//
// Execution is fire-and-forget from the caller's point of view: a run
// finishes when the graph goes quiet, and individual instructions are never
// returned to anyone. The journal keeps an append-only record per run so that
// callers, tests and operators can see which commands ran, which events
// fired, and which instructions were skipped or dropped.
//
// The journal records execution history only. Graphs themselves are never
// persisted.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent Append calls from every worker.
// Entries of one run are returned in the order they were appended.
package journal

import (
	"context"
	"time"
)

// Outcome classifies how a worker finished with an Instruction.
type Outcome string

const (
	// OutcomeExecuted means the command ran and its events were routed.
	OutcomeExecuted Outcome = "executed"
	// OutcomeSkipped means the processor reported it could not run.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDropped means the instruction was malformed or unroutable.
	OutcomeDropped Outcome = "dropped"
	// OutcomeFailed means the processor returned an unexpected error.
	OutcomeFailed Outcome = "failed"
)

// Entry is one processed Instruction.
type Entry struct {
	RunID    string    `json:"run_id"`
	Instance string    `json:"instance"`
	Template string    `json:"template"`
	Command  string    `json:"command"`
	Outcome  Outcome   `json:"outcome"`
	Fired    []string  `json:"fired,omitempty"`
	Error    string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
}

// Store is an append-only log of entries keyed by run id.
type Store interface {
	// Append records e under e.RunID.
	Append(ctx context.Context, e Entry) error
	// Entries returns every entry of a run in append order. An unknown run
	// yields an empty slice.
	Entries(ctx context.Context, runID string) ([]Entry, error)
}

// Count returns how many entries of a run have the given outcome.
func Count(entries []Entry, outcome Outcome) int {
	n := 0
	for _, e := range entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}
