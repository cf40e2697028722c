package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

// evaluation is shared by every resolver created while handling one
// instruction, so an Output feeding several Inputs is computed once.
type evaluation struct {
	runID    string
	graph    *graph.Graph
	router   *processor.Router
	out      io.Writer
	cache    map[string]value.Value
	visiting map[string]bool
}

func newEvaluation(runID string, g *graph.Graph, router *processor.Router, out io.Writer) *evaluation {
	return &evaluation{
		runID:    runID,
		graph:    g,
		router:   router,
		out:      out,
		cache:    make(map[string]value.Value),
		visiting: make(map[string]bool),
	}
}

// request builds a processor request for n whose inputs resolve through e.
func (e *evaluation) request(n *graph.PlacedNode) *processor.Request {
	return &processor.Request{
		RunID:  e.runID,
		Node:   n,
		Inputs: &inputs{eval: e, node: n},
		Out:    e.out,
	}
}

// inputs implements processor.Inputs for one node. An inbound edge takes
// precedence over a bound value.
type inputs struct {
	eval *evaluation
	node *graph.PlacedNode
}

func (in *inputs) Resolve(ctx context.Context, id schema.PropertyID) (value.Value, error) {
	prop, ok := in.node.Property(id)
	if !ok || !prop.IsInput() {
		return value.Value{}, fmt.Errorf("'%s' is not an input of '%s': %w", id, in.node.Key(), processor.ErrSkip)
	}

	if src, fed := in.eval.graph.Edges().Input(graph.NewHook(in.node, prop)); fed {
		return in.eval.evaluate(ctx, src)
	}
	if v, ok := in.node.Value(id); ok {
		return v, nil
	}
	return value.Value{}, fmt.Errorf("input '%s' of '%s' has no value: %w", id, in.node.Key(), processor.ErrSkip)
}

// evaluate computes the value of an Output hook, or returns the value bound
// to it.
func (e *evaluation) evaluate(ctx context.Context, src graph.Hook) (value.Value, error) {
	key := src.String()
	if v, ok := e.cache[key]; ok {
		return v, nil
	}
	if e.visiting[key] {
		return value.Value{}, fmt.Errorf("data cycle through '%s': %w", key, processor.ErrSkip)
	}
	e.visiting[key] = true
	defer delete(e.visiting, key)

	n, ok := e.graph.Node(src.Instance)
	if !ok {
		return value.Value{}, fmt.Errorf("edge source '%s' is not in the graph: %w", key, processor.ErrSkip)
	}
	if v, pinned := n.Value(src.Property.ID()); pinned {
		e.cache[key] = v
		return v, nil
	}
	p, ok := e.router.Route(n.TemplateID())
	if !ok {
		return value.Value{}, fmt.Errorf("no processor for template '%s' feeding '%s': %w", n.TemplateID(), key, processor.ErrSkip)
	}
	ev, ok := p.(processor.Evaluator)
	if !ok {
		return value.Value{}, fmt.Errorf("processor for template '%s' cannot evaluate '%s': %w", n.TemplateID(), key, processor.ErrSkip)
	}

	v, err := ev.Evaluate(ctx, e.request(n), src.Property.ID())
	if err != nil {
		return value.Value{}, fmt.Errorf("evaluating '%s': %w", key, err)
	}
	if dt, _ := src.Property.DataType(); v.DataType() != dt {
		return value.Value{}, fmt.Errorf("'%s' produced %s, declared %s: %w", key, v.DataType(), dt, processor.ErrSkip)
	}

	e.cache[key] = v
	return v, nil
}
