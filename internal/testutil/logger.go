package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
)

// NewTestContext returns a context carrying a debug-level text logger that
// writes into buf. Setting GRAPHFLOW_TEST_LOGS=true mirrors it to stderr.
func NewTestContext(buf *SafeBuffer) context.Context {
	var w io.Writer = buf
	if os.Getenv("GRAPHFLOW_TEST_LOGS") == "true" {
		w = io.MultiWriter(buf, os.Stderr)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}
