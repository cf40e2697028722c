// Package journaltest holds the behavior every journal.Store must satisfy.
package journaltest

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/graphflow/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract exercises s against the journal.Store contract.
func RunStoreContract(t *testing.T, s journal.Store) {
	t.Helper()
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("unknown run is empty", func(t *testing.T) {
		entries, err := s.Entries(ctx, "contract-missing")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("append order is kept", func(t *testing.T) {
		first := journal.Entry{
			RunID: "contract-run", Instance: "a1", Template: "action", Command: "trigger",
			Outcome: journal.OutcomeExecuted, Fired: []string{"triggered"}, At: at,
		}
		second := journal.Entry{
			RunID: "contract-run", Instance: "p1", Template: "printer", Command: "print",
			Outcome: journal.OutcomeSkipped, Error: "input 'content': skipped", At: at.Add(time.Second),
		}
		require.NoError(t, s.Append(ctx, first))
		require.NoError(t, s.Append(ctx, second))

		entries, err := s.Entries(ctx, "contract-run")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, first.Instance, entries[0].Instance)
		assert.Equal(t, first.Fired, entries[0].Fired)
		assert.True(t, first.At.Equal(entries[0].At))
		assert.Equal(t, second.Outcome, entries[1].Outcome)
		assert.Equal(t, second.Error, entries[1].Error)
	})

	t.Run("runs are isolated", func(t *testing.T) {
		require.NoError(t, s.Append(ctx, journal.Entry{RunID: "contract-other", Instance: "x", At: at}))
		entries, err := s.Entries(ctx, "contract-other")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
