package error_handling

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/graphflow/internal/app"
	it "github.com/specialistvlad/graphflow/internal/integration_tests"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/modules/action"
	"github.com/specialistvlad/graphflow/modules/print"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingModule struct{}

func (failingModule) Register(r *registry.Registry) {
	r.Register(schema.NewNodeBuilder("fail").Command("run").Event("done").Build(),
		processor.Func(func(context.Context, *processor.Request, schema.PropertyID) ([]schema.PropertyID, error) {
			return nil, errors.New("disk on fire")
		}))
}

// Test for: a failing command stops its branch but not the run
func TestErrorHandling_ProcessorFailureIsContained(t *testing.T) {
	// --- Arrange ---
	hcl := `
instance "action" "a" {}
instance "fail" "f" {}
instance "printer" "after" {
  content = 1
}
instance "printer" "sibling" {
  content = 2
}
connect {
  edge = "a#triggered>f#run"
}
connect {
  edge = "f#done>after#print"
}
connect {
  edge = "a#triggered>sibling#print"
}
`
	cfg := &app.Config{GraphPaths: []string{it.WriteHCL(t, "main.hcl", hcl)}}
	testApp, logs := app.SetupAppTest(t, cfg, &action.Module{}, &print.Module{}, failingModule{})

	// --- Act ---
	res, err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Stats.Failed)
	assert.Equal(t, int64(2), res.Stats.Executed)
	assert.Equal(t, 1, it.CountLines(logs.String(), "sibling: 2"))
	assert.Zero(t, it.CountLines(logs.String(), "after: 1"))
	assert.Contains(t, logs.String(), "disk on fire")
}

// Test for: an input outside the accepted range skips the command
func TestErrorHandling_OutOfRangeInputSkips(t *testing.T) {
	// --- Arrange ---
	hcl := `
instance "action" "a" {}
instance "repeat" "r" {
  times = 20000
}
instance "printer" "p" {
  content = 1
}
connect {
  edge = "a#triggered>r#start"
}
connect {
  edge = "r#executed>p#print"
}
`
	cfg := &app.Config{GraphPaths: []string{it.WriteHCL(t, "main.hcl", hcl)}}
	testApp, logs := app.SetupAppTest(t, cfg)

	// --- Act ---
	res, err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Stats.Skipped, "times above the limit is skipped")
	assert.Zero(t, it.CountLines(logs.String(), "p: 1"))
}
