// Package action provides the "action" template: a bare trigger that fires
// "triggered" every time its "trigger" command runs.
package action

import (
	"context"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
)

const (
	Template  schema.NodeID     = "action"
	Trigger   schema.PropertyID = "trigger"
	Triggered schema.PropertyID = "triggered"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Node returns the action template.
func Node() schema.Node {
	return schema.NewNodeBuilder(Template).Command(Trigger).Event(Triggered).Build()
}

// Processor handles the action template. It holds no state.
type Processor struct{}

func (Processor) Execute(ctx context.Context, req *processor.Request, command schema.PropertyID) ([]schema.PropertyID, error) {
	if command != Trigger {
		return nil, processor.UnknownCommand(req, command)
	}
	ctxlog.FromContext(ctx).Debug("Action triggered.", "instance", req.Node.Key())
	return []schema.PropertyID{Triggered}, nil
}

// Reentrant reports that triggers may overlap on one instance.
func (Processor) Reentrant() bool { return true }

// Register registers the template and its processor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Node(), Processor{})
}
