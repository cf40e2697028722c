package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A catalog with a syntax error makes app.NewApp panic during startup.
	invalidHCL := `
		node "broken" {
			input "x" {
		// Missing closing braces here
	`
	tempDir := t.TempDir()
	catalogPath := filepath.Join(tempDir, "catalog.hcl")
	require.NoError(t, os.WriteFile(catalogPath, []byte(invalidHCL), 0600), "failed to set up test file")

	args := []string{"catalog", "--catalog", catalogPath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"run", "--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_Graph(t *testing.T) {
	t.Parallel()

	graph := `
instance "action" "go" {}
instance "repeat" "twice" {
  times = 2
}
instance "printer" "out" {
  content = 9
}
connect {
  from = "go#triggered"
  to   = "twice#start"
}
connect {
  from = "twice#executed"
  to   = "out#print"
}
`
	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(graph), 0600))
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"run", "--log-level", "error", path}))
	require.Equal(t, 2, strings.Count(out.String(), "out: 9\n"))
}

func TestRun_ShippedGraphs(t *testing.T) {
	t.Parallel()

	graphs := filepath.Join("..", "..", "graphs")
	calculator := filepath.Join(graphs, "calculator.hcl")
	catalog := filepath.Join(graphs, "catalog.hcl")

	t.Run("validate", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{"validate", "--catalog", catalog, calculator}))
		require.Contains(t, out.String(), "Graph is valid! ✅ (8 nodes, 7 edges)")
	})

	t.Run("run", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{"run", "--log-level", "error", "--workers", "2", calculator}))
		require.Equal(t, 3, strings.Count(out.String(), "p1: 7\n"))
	})

	t.Run("catalog", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{"catalog", "--catalog", catalog}))
		require.Contains(t, out.String(), "threshold")
	})
}
