package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/hookid"
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

type catalogFile struct {
	Nodes []*nodeBlock `hcl:"node,block"`
}

type nodeBlock struct {
	ID       string          `hcl:"id,label"`
	Commands []*controlBlock `hcl:"command,block"`
	Events   []*controlBlock `hcl:"event,block"`
	Inputs   []*dataBlock    `hcl:"input,block"`
	Outputs  []*outputBlock  `hcl:"output,block"`
	DefRange hcl.Range       `hcl:",def_range"`
}

type controlBlock struct {
	ID       string    `hcl:"id,label"`
	DefRange hcl.Range `hcl:",def_range"`
}

type dataBlock struct {
	ID       string         `hcl:"id,label"`
	Type     hcl.Expression `hcl:"type"`
	Default  hcl.Expression `hcl:"default,optional"`
	DefRange hcl.Range      `hcl:",def_range"`
}

type outputBlock struct {
	ID       string         `hcl:"id,label"`
	Type     hcl.Expression `hcl:"type"`
	DefRange hcl.Range      `hcl:",def_range"`
}

// LoadCatalog reads every `node` block found under paths and returns the
// templates in file order. Template ids must be unique across all files.
func LoadCatalog(ctx context.Context, paths ...string) ([]schema.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL catalog loader started.", "path_count", len(paths))

	files, err := decodeFiles[catalogFile](ctx, paths)
	if err != nil {
		return nil, err
	}

	var nodes []schema.Node
	seen := make(map[string]hcl.Range)
	for _, f := range files {
		for _, blk := range f.Nodes {
			if prev, dup := seen[blk.ID]; dup {
				return nil, hcl.Diagnostics{diagError(blk.DefRange,
					"Duplicate node",
					fmt.Sprintf("Node '%s' was already declared at %s.", blk.ID, prev),
				)}
			}
			seen[blk.ID] = blk.DefRange

			n, diags := translateNode(blk)
			if diags.HasErrors() {
				return nil, diags
			}
			logger.Debug("Loaded template.", "template", n.ID(), "properties", len(n.Properties()))
			nodes = append(nodes, n)
		}
	}

	logger.Debug("HCL catalog loading complete.", "templates", len(nodes))
	return nodes, nil
}

// translateNode validates a node block and builds its template. Problems
// that schema.NodeBuilder would panic on are reported as diagnostics.
func translateNode(blk *nodeBlock) (schema.Node, hcl.Diagnostics) {
	if !hookid.ValidName(blk.ID) {
		return schema.Node{}, hcl.Diagnostics{diagError(blk.DefRange, "Invalid node id",
			fmt.Sprintf("'%s' is not a valid template id.", blk.ID))}
	}

	var diags hcl.Diagnostics
	seen := make(map[string]struct{})
	claim := func(id string, rng hcl.Range) bool {
		if !hookid.ValidName(id) {
			diags = append(diags, diagError(rng, "Invalid property id",
				fmt.Sprintf("'%s' is not a valid property id.", id)))
			return false
		}
		if _, dup := seen[id]; dup {
			diags = append(diags, diagError(rng, "Duplicate property",
				fmt.Sprintf("Property '%s' is declared more than once on node '%s'.", id, blk.ID)))
			return false
		}
		seen[id] = struct{}{}
		return true
	}

	b := schema.NewNodeBuilder(schema.NodeID(blk.ID))
	for _, c := range blk.Commands {
		if claim(c.ID, c.DefRange) {
			b.Command(schema.PropertyID(c.ID))
		}
	}
	for _, e := range blk.Events {
		if claim(e.ID, e.DefRange) {
			b.Event(schema.PropertyID(e.ID))
		}
	}
	for _, in := range blk.Inputs {
		if !claim(in.ID, in.DefRange) {
			continue
		}
		dt, typeDiags := dataTypeFromExpr(in.Type)
		if typeDiags.HasErrors() {
			diags = append(diags, typeDiags...)
			continue
		}
		if isNullExpr(in.Default) {
			b.Input(schema.PropertyID(in.ID), dt)
			continue
		}
		def, defDiags := literalFromExpr(in.Default, dt)
		if defDiags.HasErrors() {
			diags = append(diags, defDiags...)
			continue
		}
		b.Input(schema.PropertyID(in.ID), dt, def)
	}
	for _, out := range blk.Outputs {
		if !claim(out.ID, out.DefRange) {
			continue
		}
		dt, typeDiags := dataTypeFromExpr(out.Type)
		if typeDiags.HasErrors() {
			diags = append(diags, typeDiags...)
			continue
		}
		b.Output(schema.PropertyID(out.ID), dt)
	}

	if diags.HasErrors() {
		return schema.Node{}, diags
	}
	return b.Build(), nil
}

// isNullExpr reports whether an optional attribute was left out. gohcl
// fills missing expression fields with a static null.
func isNullExpr(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	v, diags := expr.Value(nil)
	return !diags.HasErrors() && v.IsNull() && v.Type() == cty.DynamicPseudoType
}
