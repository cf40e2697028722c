package hcl

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/hookid"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

type graphFile struct {
	Instances []*instanceBlock `hcl:"instance,block"`
	Connects  []*connectBlock  `hcl:"connect,block"`
}

type instanceBlock struct {
	Template string    `hcl:"template,label"`
	Key      string    `hcl:"key,label"`
	Config   hcl.Body  `hcl:",remain"`
	DefRange hcl.Range `hcl:",def_range"`
}

type connectBlock struct {
	From     *string   `hcl:"from,optional"`
	To       *string   `hcl:"to,optional"`
	Edge     *string   `hcl:"edge,optional"`
	DefRange hcl.Range `hcl:",def_range"`
}

// LoadGraph reads every graph file found under paths and builds one graph
// against s.
func LoadGraph(ctx context.Context, s *schema.Schema, paths ...string) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL graph loader started.", "path_count", len(paths))

	files, err := decodeFiles[graphFile](ctx, paths)
	if err != nil {
		return nil, err
	}

	b := graph.NewBuilder(s)
	var instances []*instanceBlock
	var connects []*connectBlock
	for _, f := range files {
		instances = append(instances, f.Instances...)
		connects = append(connects, f.Connects...)
	}

	for _, blk := range instances {
		if _, err := b.Node(schema.NodeID(blk.Template), blk.Key); err != nil {
			return nil, fmt.Errorf("%s: %w", blk.DefRange, err)
		}
	}
	for _, blk := range instances {
		if err := assignAttributes(b, blk); err != nil {
			return nil, err
		}
	}
	for _, blk := range connects {
		if err := connect(b, blk); err != nil {
			return nil, err
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("graph is incomplete: %w", err)
	}
	logger.Debug("HCL graph loading complete.", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// assignAttributes binds every attribute of an instance block to the data
// property of the same name.
func assignAttributes(b *graph.Builder, blk *instanceBlock) error {
	attrs, diags := blk.Config.JustAttributes()
	if diags.HasErrors() {
		return diags
	}
	n, _ := b.Instance(blk.Key)

	for _, attr := range attributesInOrder(attrs) {
		id := schema.PropertyID(attr.Name)
		prop, ok := n.Property(id)
		if !ok || !prop.IsData() {
			// Let the builder report the precise kind of mistake.
			if err := b.Assign(n, id, value.Value{}); err != nil {
				return fmt.Errorf("%s: %w", attr.NameRange, err)
			}
			continue
		}

		dt, _ := prop.DataType()
		v, diags := literalFromExpr(attr.Expr, dt)
		if diags.HasErrors() {
			return fmt.Errorf("%s: %w", attr.NameRange, &graph.Error{
				Kind:     graph.ErrTypeMismatch,
				Instance: blk.Key,
				Template: n.TemplateID(),
				Property: id,
				Detail:   diags.Error(),
			})
		}
		if err := b.Assign(n, id, v); err != nil {
			return fmt.Errorf("%s: %w", attr.NameRange, err)
		}
	}
	return nil
}

func attributesInOrder(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *hcl.Attribute) int {
		return a.NameRange.Start.Byte - b.NameRange.Start.Byte
	})
	return out
}

// connect resolves both hooks of a connect block and wires them.
func connect(b *graph.Builder, blk *connectBlock) error {
	e, err := parseConnect(blk)
	if err != nil {
		return fmt.Errorf("%s: %w", blk.DefRange, err)
	}

	src, _ := b.Instance(e.Source.Instance)
	tgt, _ := b.Instance(e.Target.Instance)
	switch {
	case src == nil:
		err = &graph.Error{Kind: graph.ErrUnknownInstance, Instance: e.Source.Instance, Property: schema.PropertyID(e.Source.Property), Edge: e.String()}
	case tgt == nil:
		err = &graph.Error{Kind: graph.ErrUnknownInstance, Instance: e.Target.Instance, Property: schema.PropertyID(e.Target.Property), Edge: e.String()}
	default:
		err = b.Connect(src, schema.PropertyID(e.Source.Property), tgt, schema.PropertyID(e.Target.Property))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", blk.DefRange, err)
	}
	return nil
}

func parseConnect(blk *connectBlock) (hookid.Edge, error) {
	switch {
	case blk.Edge != nil && blk.From == nil && blk.To == nil:
		return hookid.ParseEdge(*blk.Edge)
	case blk.Edge == nil && blk.From != nil && blk.To != nil:
		from, err := hookid.Parse(*blk.From)
		if err != nil {
			return hookid.Edge{}, fmt.Errorf("from: %w", err)
		}
		to, err := hookid.Parse(*blk.To)
		if err != nil {
			return hookid.Edge{}, fmt.Errorf("to: %w", err)
		}
		return hookid.Edge{Source: from, Target: to}, nil
	}
	return hookid.Edge{}, errors.New("connect needs either 'edge' or both 'from' and 'to'")
}
