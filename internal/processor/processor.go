package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

// ErrSkip reports that a command could not run and should be skipped.
// The worker logs it and continues.
var ErrSkip = errors.New("skipped")

// Inputs resolves the current value of an Input on the request's node,
// following an inbound edge to its producing Output when there is one.
type Inputs interface {
	Resolve(ctx context.Context, id schema.PropertyID) (value.Value, error)
}

// Request carries everything a processor may read while handling one
// command or evaluating one output.
type Request struct {
	RunID  string
	Node   *graph.PlacedNode
	Inputs Inputs
	// Out is where nodes that produce human-readable output write it.
	Out io.Writer
}

// Processor handles the Commands of one template.
type Processor interface {
	// Execute runs command and returns the Events that fired, in order.
	// An Event may appear more than once.
	Execute(ctx context.Context, req *Request, command schema.PropertyID) ([]schema.PropertyID, error)
}

// Evaluator is implemented by processors of templates with Outputs.
type Evaluator interface {
	Evaluate(ctx context.Context, req *Request, output schema.PropertyID) (value.Value, error)
}

// Reentrant is implemented by processors that may run concurrently on the
// same instance. Without it the engine serializes commands per instance.
type Reentrant interface {
	Reentrant() bool
}

// IsReentrant reports whether p declares itself reentrant.
func IsReentrant(p Processor) bool {
	r, ok := p.(Reentrant)
	return ok && r.Reentrant()
}

// Func adapts a plain function to the Processor interface.
type Func func(ctx context.Context, req *Request, command schema.PropertyID) ([]schema.PropertyID, error)

func (f Func) Execute(ctx context.Context, req *Request, command schema.PropertyID) ([]schema.PropertyID, error) {
	return f(ctx, req, command)
}

// Integer resolves an Integer input, turning absence or a type mismatch
// into ErrSkip.
func Integer(ctx context.Context, req *Request, id schema.PropertyID) (int64, error) {
	v, err := req.Inputs.Resolve(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("input '%s': %w", id, err)
	}
	i, ok := v.Integer()
	if !ok {
		return 0, fmt.Errorf("input '%s' is %s, want integer: %w", id, v.DataType(), ErrSkip)
	}
	return i, nil
}

// UnknownCommand builds the error a processor returns for a command it
// does not handle.
func UnknownCommand(req *Request, command schema.PropertyID) error {
	return fmt.Errorf("template '%s' has no handler for command '%s': %w", req.Node.TemplateID(), command, ErrSkip)
}

// UnknownOutput builds the error an evaluator returns for an output it
// does not produce.
func UnknownOutput(req *Request, output schema.PropertyID) error {
	return fmt.Errorf("template '%s' does not produce output '%s': %w", req.Node.TemplateID(), output, ErrSkip)
}

// Values resolves inputs from a fixed map. It is used where no graph
// wiring is involved, such as evaluating a template in isolation.
type Values map[schema.PropertyID]value.Value

func (v Values) Resolve(_ context.Context, id schema.PropertyID) (value.Value, error) {
	val, ok := v[id]
	if !ok {
		return value.Value{}, fmt.Errorf("input '%s' has no value: %w", id, ErrSkip)
	}
	return val, nil
}
