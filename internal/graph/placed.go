package graph

import (
	"github.com/specialistvlad/graphflow/internal/schema"
	"github.com/specialistvlad/graphflow/internal/value"
)

// PropertyValue is the value currently bound to an instance's data property.
type PropertyValue struct {
	Property schema.PropertyID
	Value    value.Value
}

// PlacedNode is one keyed instance of a template inside a Graph. It is an
// immutable value: Builder.Assign replaces the instance rather than mutating
// it, so a *PlacedNode handed to a worker never changes underneath it.
type PlacedNode struct {
	template schema.Node
	key      string
	values   map[schema.PropertyID]value.Value
}

func newPlacedNode(tmpl schema.Node, key string) *PlacedNode {
	n := &PlacedNode{
		template: tmpl,
		key:      key,
		values:   make(map[schema.PropertyID]value.Value),
	}
	for _, p := range tmpl.Inputs() {
		if def, ok := p.Default(); ok {
			n.values[p.ID()] = def
		}
	}
	return n
}

// Key returns the instance key, unique within one graph.
func (n *PlacedNode) Key() string { return n.key }

// Template returns the instance's copy of its template.
func (n *PlacedNode) Template() schema.Node { return n.template }

// TemplateID returns the id of the instance's template.
func (n *PlacedNode) TemplateID() schema.NodeID { return n.template.ID() }

// Property looks up a property on the instance's template.
func (n *PlacedNode) Property(id schema.PropertyID) (schema.Property, bool) {
	return n.template.Property(id)
}

// Value returns the value bound to a data property, either assigned or
// defaulted from an Input's template default.
func (n *PlacedNode) Value(id schema.PropertyID) (value.Value, bool) {
	v, ok := n.values[id]
	return v, ok
}

// Values returns the bound values in template declaration order.
func (n *PlacedNode) Values() []PropertyValue {
	var out []PropertyValue
	for _, p := range n.template.Properties() {
		if !p.IsData() {
			continue
		}
		if v, ok := n.values[p.ID()]; ok {
			out = append(out, PropertyValue{Property: p.ID(), Value: v})
		}
	}
	return out
}

// Equal compares instances by key only.
func (n *PlacedNode) Equal(other *PlacedNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.key == other.key
}

func (n *PlacedNode) String() string { return n.key }

// withValue returns a copy of n with one more bound value.
func (n *PlacedNode) withValue(id schema.PropertyID, v value.Value) *PlacedNode {
	values := make(map[schema.PropertyID]value.Value, len(n.values)+1)
	for k, val := range n.values {
		values[k] = val
	}
	values[id] = v
	return &PlacedNode{template: n.template, key: n.key, values: values}
}
