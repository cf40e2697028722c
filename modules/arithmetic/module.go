// Package arithmetic provides the "plus" and "minus" templates. Both read
// integer inputs "a" and "b" and produce output "c".
package arithmetic

import (
	"context"

	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

const (
	Plus  schema.NodeID = "plus"
	Minus schema.NodeID = "minus"

	A schema.PropertyID = "a"
	B schema.PropertyID = "b"
	C schema.PropertyID = "c"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Node returns a binary integer template with the given id.
func Node(id schema.NodeID) schema.Node {
	return schema.NewNodeBuilder(id).
		Input(A, value.Integer).
		Input(B, value.Integer).
		Output(C, value.Integer).
		Build()
}

// Processor evaluates c = op(a, b).
type Processor struct {
	op func(a, b int64) int64
}

func (p Processor) Execute(_ context.Context, req *processor.Request, command schema.PropertyID) ([]schema.PropertyID, error) {
	return nil, processor.UnknownCommand(req, command)
}

func (p Processor) Evaluate(ctx context.Context, req *processor.Request, output schema.PropertyID) (value.Value, error) {
	if output != C {
		return value.Value{}, processor.UnknownOutput(req, output)
	}
	a, err := processor.Integer(ctx, req, A)
	if err != nil {
		return value.Value{}, err
	}
	b, err := processor.Integer(ctx, req, B)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewInteger(p.op(a, b)), nil
}

// Register registers plus and minus.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Node(Plus), Processor{op: func(a, b int64) int64 { return a + b }})
	r.Register(Node(Minus), Processor{op: func(a, b int64) int64 { return a - b }})
}
