// Package inmemoryjournal provides an ephemeral, thread-safe, in-memory
// implementation of the journal.Store interface.
//
// # Concurrency Model
//
// Runs are independent, so the store keeps one log per run in a sync.Map and
// each log guards its own slice with a mutex. Workers appending to different
// runs never contend.
package inmemoryjournal

import (
	"context"
	"sync"

	"github.com/specialistvlad/graphflow/internal/journal"
)

type runLog struct {
	mu      sync.Mutex
	entries []journal.Entry
}

// Store is an in-memory implementation of journal.Store.
type Store struct {
	runs sync.Map // Key: run id, Value: *runLog
}

// New creates a new, empty in-memory journal.
func New() journal.Store {
	return &Store{}
}

// Append records e under its run id.
func (s *Store) Append(ctx context.Context, e journal.Entry) error {
	v, _ := s.runs.LoadOrStore(e.RunID, &runLog{})
	log := v.(*runLog)
	log.mu.Lock()
	defer log.mu.Unlock()
	log.entries = append(log.entries, e)
	return nil
}

// Entries returns a copy of a run's entries.
func (s *Store) Entries(ctx context.Context, runID string) ([]journal.Entry, error) {
	v, ok := s.runs.Load(runID)
	if !ok {
		return []journal.Entry{}, nil
	}
	log := v.(*runLog)
	log.mu.Lock()
	defer log.mu.Unlock()
	out := make([]journal.Entry, len(log.entries))
	copy(out, log.entries)
	return out, nil
}
