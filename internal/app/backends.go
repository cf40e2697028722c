package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/eventsink"
	"github.com/specialistvlad/graphflow/internal/inmemoryjournal"
	"github.com/specialistvlad/graphflow/internal/journal"
	"github.com/specialistvlad/graphflow/internal/redisjournal"
)

const journalMemory = "memory"

// newJournal opens the store named by the journal URL. The returned closer
// is never nil.
func (a *App) newJournal(ctx context.Context) (journal.Store, func() error, error) {
	logger := ctxlog.FromContext(ctx)
	if a.config.JournalURL == "" || a.config.JournalURL == journalMemory {
		logger.Debug("Using in-memory journal.")
		return inmemoryjournal.New(), func() error { return nil }, nil
	}

	store, err := redisjournal.New(a.config.JournalURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open redis journal: %w", err)
	}
	logger.Debug("Using redis journal.")
	return store, store.Close, nil
}

// newSink returns the socket.io sink when one is configured, otherwise the
// logging sink.
func (a *App) newSink(ctx context.Context) (eventsink.Sink, error) {
	if a.config.SocketIOURL == "" {
		return eventsink.Log{}, nil
	}
	sink, err := eventsink.DialSocketIO(ctx, a.config.SocketIOURL, "/", eventsink.DefaultSocketIOEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to connect event sink: %w", err)
	}
	return sink, nil
}
