// Package integer provides the "integer" literal template: it exposes its
// bound "value" input as the "return-value" output.
package integer

import (
	"context"

	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

const (
	Template    schema.NodeID     = "integer"
	Value       schema.PropertyID = "value"
	ReturnValue schema.PropertyID = "return-value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Node returns the integer template.
func Node() schema.Node {
	return schema.NewNodeBuilder(Template).
		Input(Value, value.Integer).
		Output(ReturnValue, value.Integer).
		Build()
}

// Processor evaluates the integer template. It has no commands.
type Processor struct{}

func (Processor) Execute(_ context.Context, req *processor.Request, command schema.PropertyID) ([]schema.PropertyID, error) {
	return nil, processor.UnknownCommand(req, command)
}

func (Processor) Evaluate(ctx context.Context, req *processor.Request, output schema.PropertyID) (value.Value, error) {
	if output != ReturnValue {
		return value.Value{}, processor.UnknownOutput(req, output)
	}
	v, err := processor.Integer(ctx, req, Value)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewInteger(v), nil
}

// Register registers the template and its processor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Node(), Processor{})
}
