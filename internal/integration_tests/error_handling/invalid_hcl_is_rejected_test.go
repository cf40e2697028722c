package error_handling

import (
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/graphflow/internal/app"
	it "github.com/specialistvlad/graphflow/internal/integration_tests"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	// --- Arrange ---
	invalidHCL := `
		instance "printer" "p1" {
			content = 1
		// Missing closing brace here
	`
	cfg := &app.Config{GraphPaths: []string{it.WriteHCL(t, "main.hcl", invalidHCL)}}
	testApp, _ := app.SetupAppTest(t, cfg)

	// --- Act ---
	_, runErr := testApp.Run(context.Background())

	// --- Assert ---
	if runErr == nil {
		t.Fatal("app.Run() should have returned an error for invalid HCL, but it returned nil")
	}
	errMsg := runErr.Error()
	if !strings.Contains(errMsg, "failed to parse") && !strings.Contains(errMsg, "failed to decode") {
		t.Errorf("expected error message to indicate an HCL parsing failure, but got: %s", errMsg)
	}
}
