package graph

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

// Builder accumulates instances, assignments and edges and validates each
// step against the schema. It is open until Build is called; afterwards
// every method fails with ErrBuilderClosed.
//
// Builder is not safe for concurrent use.
type Builder struct {
	schema *schema.Schema
	nodes  map[string]*PlacedNode
	order  []string
	edges  *EdgeMap
	closed bool
}

// NewBuilder starts a graph over s.
func NewBuilder(s *schema.Schema) *Builder {
	return &Builder{
		schema: s,
		nodes:  make(map[string]*PlacedNode),
		edges:  NewEdgeMap(),
	}
}

// Node places a new instance of template under key. Inputs with a default
// are pre-bound.
func (b *Builder) Node(template schema.NodeID, key string) (*PlacedNode, error) {
	if b.closed {
		return nil, &Error{Kind: ErrBuilderClosed, Instance: key}
	}
	if _, exists := b.nodes[key]; exists {
		return nil, &Error{Kind: ErrDuplicateKey, Instance: key, Template: template}
	}
	tmpl, ok := b.schema.Node(template)
	if !ok {
		return nil, &Error{Kind: ErrUnknownTemplate, Instance: key, Template: template}
	}

	n := newPlacedNode(tmpl, key)
	b.nodes[key] = n
	b.order = append(b.order, key)
	return n, nil
}

// Instance returns the builder's current copy of an instance. Handles
// returned by Node go stale after Assign; every Builder method resolves
// handles by key, so stale handles remain valid arguments.
func (b *Builder) Instance(key string) (*PlacedNode, bool) {
	n, ok := b.nodes[key]
	return n, ok
}

// Assign binds v to a data property of instance, replacing any earlier
// binding. A value bound to an Output pins it: the engine reads the bound
// value instead of asking the node's processor to evaluate it.
func (b *Builder) Assign(instance *PlacedNode, property schema.PropertyID, v value.Value) error {
	if b.closed {
		return &Error{Kind: ErrBuilderClosed, Instance: instance.Key(), Property: property}
	}
	n, err := b.resolve(instance, property)
	if err != nil {
		return err
	}

	prop, ok := n.Property(property)
	if !ok {
		return &Error{Kind: ErrUnknownProperty, Instance: n.Key(), Template: n.TemplateID(), Property: property}
	}
	if prop.IsControl() {
		return &Error{Kind: ErrNotADataProperty, Instance: n.Key(), Template: n.TemplateID(), Property: property,
			Detail: fmt.Sprintf("property is a %s", prop.Kind())}
	}
	if dt, _ := prop.DataType(); dt != v.DataType() {
		return &Error{Kind: ErrTypeMismatch, Instance: n.Key(), Template: n.TemplateID(), Property: property,
			Detail: fmt.Sprintf("expected %s, got %s", dt, v.DataType())}
	}

	b.nodes[n.Key()] = n.withValue(property, v)
	return nil
}

// Connect wires source.sourceProp to target.targetProp. Checks run in a
// fixed order so that a given mistake always reports the same error kind.
// After every role and type check has passed, the edge map rejects an exact
// duplicate with ErrDuplicateEdge and a second feed into an Input that
// already has a source with ErrInputAlreadyConnected, since one Input reads
// from exactly one Output.
func (b *Builder) Connect(source *PlacedNode, sourceProp schema.PropertyID, target *PlacedNode, targetProp schema.PropertyID) error {
	if b.closed {
		return &Error{Kind: ErrBuilderClosed, Instance: source.Key(), Property: sourceProp}
	}
	src, err := b.resolve(source, sourceProp)
	if err != nil {
		return err
	}
	tgt, err := b.resolve(target, targetProp)
	if err != nil {
		return err
	}

	sp, ok := src.Property(sourceProp)
	if !ok {
		return &Error{Kind: ErrUnknownProperty, Instance: src.Key(), Template: src.TemplateID(), Property: sourceProp}
	}
	tp, ok := tgt.Property(targetProp)
	if !ok {
		return &Error{Kind: ErrUnknownProperty, Instance: tgt.Key(), Template: tgt.TemplateID(), Property: targetProp}
	}

	edge := Edge{Source: NewHook(src, sp), Target: NewHook(tgt, tp)}
	fail := func(kind error, instance string, prop schema.PropertyID, detail string) error {
		return &Error{Kind: kind, Instance: instance, Property: prop, Edge: edge.Key(), Detail: detail}
	}

	switch {
	case src.Key() == tgt.Key():
		return fail(ErrSelfConnection, src.Key(), sourceProp, "")
	case !sp.IsTarget():
		return fail(ErrInvalidSourceRole, src.Key(), sourceProp, fmt.Sprintf("a %s cannot drive other properties", sp.Kind()))
	case !tp.IsSource():
		return fail(ErrInvalidTargetRole, tgt.Key(), targetProp, fmt.Sprintf("a %s cannot be driven", tp.Kind()))
	case sp.IsEvent() && !tp.IsCommand():
		return fail(ErrEventRequiresCommand, tgt.Key(), targetProp, fmt.Sprintf("target is a %s", tp.Kind()))
	case tp.IsCommand() && !sp.IsEvent():
		return fail(ErrCommandRequiresEvent, src.Key(), sourceProp, fmt.Sprintf("source is a %s", sp.Kind()))
	}
	if sp.IsData() && tp.IsData() {
		sdt, _ := sp.DataType()
		tdt, _ := tp.DataType()
		if sdt != tdt {
			return fail(ErrTypeMismatch, tgt.Key(), targetProp, fmt.Sprintf("%s output feeds %s input", sdt, tdt))
		}
	}

	if err := b.edges.Insert(edge); err != nil {
		return fail(err, tgt.Key(), targetProp, "")
	}
	return nil
}

// Build validates that every Input is satisfied by a default, an
// assignment or an inbound edge, and closes the builder. All missing
// values are reported together.
func (b *Builder) Build() (*Graph, error) {
	if b.closed {
		return nil, &Error{Kind: ErrBuilderClosed}
	}

	var errs []error
	for _, key := range b.order {
		n := b.nodes[key]
		for _, p := range n.Template().Inputs() {
			if _, bound := n.Value(p.ID()); bound {
				continue
			}
			if b.edges.HasInbound(NewHook(n, p)) {
				continue
			}
			errs = append(errs, &Error{Kind: ErrMissingValue, Instance: key, Template: n.TemplateID(), Property: p.ID()})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	b.closed = true
	return &Graph{nodes: b.nodes, order: b.order, edges: b.edges}, nil
}

func (b *Builder) resolve(handle *PlacedNode, property schema.PropertyID) (*PlacedNode, error) {
	if handle == nil {
		return nil, &Error{Kind: ErrUnknownInstance, Property: property}
	}
	n, ok := b.nodes[handle.Key()]
	if !ok {
		return nil, &Error{Kind: ErrUnknownInstance, Instance: handle.Key(), Property: property}
	}
	return n, nil
}
