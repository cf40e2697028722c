package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printerHCL = `
instance "action" "a1" {}
instance "printer" "p1" {
  content = 42
}
connect {
  from = "a1#triggered"
  to   = "p1#print"
}
`

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T", err)
	return exitErr.Code
}

func TestExecute_Run(t *testing.T) {
	out := &bytes.Buffer{}
	err := Execute(context.Background(), out, []string{"run", "--workers", "2", "--log-level", "warn", writeGraph(t, printerHCL)})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "p1: 42\n")
}

func TestExecute_Validate(t *testing.T) {
	out := &bytes.Buffer{}
	err := Execute(context.Background(), out, []string{"validate", writeGraph(t, printerHCL)})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Graph is valid! ✅ (2 nodes, 1 edges)")

	err = Execute(context.Background(), out, []string{"validate", writeGraph(t, `instance "printer" "p1" {}`)})
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "Validation failed")
}

func TestExecute_Catalog(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Execute(context.Background(), out, []string{"catalog"}))
	assert.Contains(t, out.String(), "TEMPLATE")
	assert.Contains(t, out.String(), "repeat")
}

func TestExecute_UsageErrors(t *testing.T) {
	graph := writeGraph(t, printerHCL)
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown flag", args: []string{"run", "--nope", graph}, wantErr: "unknown flag: --nope"},
		{name: "missing graph", args: []string{"run"}, wantErr: "requires at least 1 arg"},
		{name: "bad log format", args: []string{"run", "--log-format", "xml", graph}, wantErr: "invalid log-format"},
		{name: "bad log level", args: []string{"validate", "--log-level", "loud", graph}, wantErr: "invalid log-level"},
		{name: "bad journal", args: []string{"run", "--journal", "s3://bucket", graph}, wantErr: "journal must be"},
		{name: "unknown command", args: []string{"explode"}, wantErr: "unknown command"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Execute(context.Background(), &bytes.Buffer{}, tc.args)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(t, err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestExecute_StartupPanicBecomesError(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(catalog, []byte(`node "x" {`), 0o600))

	err := Execute(context.Background(), &bytes.Buffer{}, []string{"catalog", "--catalog", catalog})
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.True(t, strings.HasPrefix(err.Error(), "application startup panicked"))
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestExecute_Help(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Execute(context.Background(), out, []string{"--help"}))
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "validate")
}
