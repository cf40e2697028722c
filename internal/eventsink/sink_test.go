package eventsink

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/specialistvlad/graphflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Publish(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	Log{}.Publish(testutil.NewTestContext(buf), Event{RunID: "r1", Instance: "a1", Event: "triggered", Targets: []string{"p1#print"}})
	assert.Contains(t, buf.String(), "hook=a1#triggered")
	assert.NoError(t, Log{}.Close())
}

func TestSocketIO_Publish(t *testing.T) {
	var mu sync.Mutex
	var got []map[string]any
	var gotEvent string
	closed := false

	s := newSocketIO("", func(ev string, payload map[string]any) {
		mu.Lock()
		defer mu.Unlock()
		gotEvent = ev
		got = append(got, payload)
	}, func() { closed = true })

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Publish(context.Background(), Event{RunID: "r1", Instance: "r1", Template: "repeat", Event: "executed", At: at})

	require.Len(t, got, 1)
	assert.Equal(t, DefaultSocketIOEvent, gotEvent)
	assert.Equal(t, "executed", got[0]["event"])
	assert.Equal(t, "2026-01-01T00:00:00Z", got[0]["at"])

	require.NoError(t, s.Close())
	assert.True(t, closed)
}
