// Package repeat provides the "repeat" template: "start" fires "executed"
// as many times as the "times" input says.
package repeat

import (
	"context"
	"fmt"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

const (
	Template schema.NodeID     = "repeat"
	Start    schema.PropertyID = "start"
	Executed schema.PropertyID = "executed"
	Times    schema.PropertyID = "times"
)

// MaxTimes bounds a single start so one node cannot flood the queue.
const MaxTimes = 10_000

// Module implements the registry.Module interface for this package.
type Module struct{}

// Node returns the repeat template.
func Node() schema.Node {
	return schema.NewNodeBuilder(Template).
		Command(Start).
		Event(Executed).
		Input(Times, value.Integer).
		Build()
}

// Processor handles the repeat template.
type Processor struct{}

func (Processor) Execute(ctx context.Context, req *processor.Request, command schema.PropertyID) ([]schema.PropertyID, error) {
	if command != Start {
		return nil, processor.UnknownCommand(req, command)
	}
	times, err := processor.Integer(ctx, req, Times)
	if err != nil {
		return nil, err
	}
	if times < 0 || times > MaxTimes {
		return nil, fmt.Errorf("times must be within [0, %d], got %d: %w", MaxTimes, times, processor.ErrSkip)
	}

	ctxlog.FromContext(ctx).Debug("Repeating.", "instance", req.Node.Key(), "times", times)
	fired := make([]schema.PropertyID, times)
	for i := range fired {
		fired[i] = Executed
	}
	return fired, nil
}

// Register registers the template and its processor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Node(), Processor{})
}
