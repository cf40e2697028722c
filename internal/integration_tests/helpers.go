package integration_tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteHCL writes content to name in a fresh temp directory and returns the
// file path.
func WriteHCL(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write hcl file: %v", err)
	}
	return path
}

// CountLines counts the lines of output exactly equal to line.
func CountLines(output, line string) int {
	n := 0
	for _, l := range strings.Split(output, "\n") {
		if l == line {
			n++
		}
	}
	return n
}
