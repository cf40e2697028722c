// Package print provides the "printer" template: its "print" command writes
// the integer bound to "content" to the run's output.
package print

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/registry"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

const (
	Template schema.NodeID     = "printer"
	Print    schema.PropertyID = "print"
	Content  schema.PropertyID = "content"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Node returns the printer template.
func Node() schema.Node {
	return schema.NewNodeBuilder(Template).
		Command(Print).
		Input(Content, value.Integer).
		Build()
}

// Processor handles the printer template. It fires no events.
type Processor struct{}

func (Processor) Execute(ctx context.Context, req *processor.Request, command schema.PropertyID) ([]schema.PropertyID, error) {
	if command != Print {
		return nil, processor.UnknownCommand(req, command)
	}
	content, err := processor.Integer(ctx, req, Content)
	if err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Info("Printing input", "instance", req.Node.Key(), "content", content)
	var out io.Writer = os.Stdout
	if req.Out != nil {
		out = req.Out
	}
	if _, err := fmt.Fprintf(out, "%s: %d\n", req.Node.Key(), content); err != nil {
		return nil, fmt.Errorf("printer '%s': %w", req.Node.Key(), err)
	}
	return nil, nil
}

// Register registers the template and its processor.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Node(), Processor{})
}
