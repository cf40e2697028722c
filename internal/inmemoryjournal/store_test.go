package inmemoryjournal

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/specialistvlad/graphflow/internal/journal"
	"github.com/specialistvlad/graphflow/internal/journal/journaltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndEntries(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Append(ctx, journal.Entry{RunID: "r1", Instance: "a1", Command: "trigger", Outcome: journal.OutcomeExecuted}))
	require.NoError(t, s.Append(ctx, journal.Entry{RunID: "r1", Instance: "p1", Command: "print", Outcome: journal.OutcomeSkipped}))
	require.NoError(t, s.Append(ctx, journal.Entry{RunID: "r2", Instance: "a1", Command: "trigger", Outcome: journal.OutcomeExecuted}))

	entries, err := s.Entries(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a1", entries[0].Instance)
	assert.Equal(t, 1, journal.Count(entries, journal.OutcomeSkipped))

	entries, err = s.Entries(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := New()
	numGoroutines := 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			_ = s.Append(ctx, journal.Entry{RunID: fmt.Sprintf("r%d", i%4), Instance: fmt.Sprintf("n%d", i)})
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 4; i++ {
		entries, err := s.Entries(ctx, fmt.Sprintf("r%d", i))
		require.NoError(t, err)
		total += len(entries)
	}
	assert.Equal(t, numGoroutines, total)
}

func TestStore_Contract(t *testing.T) {
	journaltest.RunStoreContract(t, New())
}
