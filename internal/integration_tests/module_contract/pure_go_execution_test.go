package module_contract

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/specialistvlad/graphflow/internal/app"
	it "github.com/specialistvlad/graphflow/internal/integration_tests"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
	"github.com/specialistvlad/graphflow/modules/action"
	"github.com/specialistvlad/graphflow/modules/integer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterModule is a module defined entirely in Go: "add" accumulates its
// "amount" input and fires "added".
type counterModule struct {
	total atomic.Int64
}

func (m *counterModule) Register(r *registry.Registry) {
	r.Register(
		schema.NewNodeBuilder("counter").
			Command("add").
			Event("added").
			Input("amount", value.Integer, value.NewInteger(1)).
			Build(),
		processor.Func(func(ctx context.Context, req *processor.Request, command schema.PropertyID) ([]schema.PropertyID, error) {
			amount, err := processor.Integer(ctx, req, "amount")
			if err != nil {
				return nil, err
			}
			m.total.Add(amount)
			fmt.Fprintf(req.Out, "%s added %d\n", req.Node.Key(), amount)
			return []schema.PropertyID{"added"}, nil
		}),
	)
}

// Test for: a Go module plugs into the engine without any HCL catalog
func TestModuleContract_PureGoExecution(t *testing.T) {
	// --- Arrange ---
	hcl := `
instance "action" "go" {}
instance "counter" "defaulted" {}
instance "integer" "ten" {
  value = 10
}
instance "counter" "wired" {}
connect {
  edge = "go#triggered>defaulted#add"
}
connect {
  edge = "defaulted#added>wired#add"
}
connect {
  edge = "ten#return-value>wired#amount"
}
`
	mod := &counterModule{}
	cfg := &app.Config{GraphPaths: []string{it.WriteHCL(t, "main.hcl", hcl)}}
	testApp, logs := app.SetupAppTest(t, cfg, &action.Module{}, &integer.Module{}, mod)

	// --- Act ---
	res, err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Stats.Executed)
	assert.Equal(t, int64(11), mod.total.Load(), "default 1 plus wired 10")
	assert.Equal(t, 1, it.CountLines(logs.String(), "defaulted added 1"))
	assert.Equal(t, 1, it.CountLines(logs.String(), "wired added 10"))
}
