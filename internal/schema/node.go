package schema

import (
	"fmt"

	"github.com/specialistvlad/graphflow/internal/value"
)

// NodeID names a template within a Schema.
type NodeID string

// Node is an immutable template. Copying a Node is cheap and safe; the
// copies share read-only property tables.
type Node struct {
	id         NodeID
	properties map[PropertyID]Property
	order      []PropertyID
}

// ID returns the template id.
func (n Node) ID() NodeID { return n.id }

// Property looks up a property by id.
func (n Node) Property(id PropertyID) (Property, bool) {
	p, ok := n.properties[id]
	return p, ok
}

// Properties returns all properties in declaration order.
func (n Node) Properties() []Property {
	out := make([]Property, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, n.properties[id])
	}
	return out
}

// Inputs returns the template's Input properties in declaration order.
func (n Node) Inputs() []Property {
	var out []Property
	for _, id := range n.order {
		if p := n.properties[id]; p.IsInput() {
			out = append(out, p)
		}
	}
	return out
}

// NodeBuilder assembles a Node. Every method panics on a duplicate
// property id.
type NodeBuilder struct {
	node  Node
	built bool
}

// NewNodeBuilder starts a template with the given id.
func NewNodeBuilder(id NodeID) *NodeBuilder {
	return &NodeBuilder{node: Node{id: id, properties: make(map[PropertyID]Property)}}
}

// Property adds an already constructed property.
func (b *NodeBuilder) Property(p Property) *NodeBuilder {
	if b.built {
		panic(fmt.Sprintf("schema: node '%s' already built", b.node.id))
	}
	if _, exists := b.node.properties[p.id]; exists {
		panic(fmt.Sprintf("schema: duplicate property '%s' on node '%s'", p.id, b.node.id))
	}
	b.node.properties[p.id] = p
	b.node.order = append(b.node.order, p.id)
	return b
}

// Command adds a Command property.
func (b *NodeBuilder) Command(id PropertyID) *NodeBuilder {
	return b.Property(Command(id))
}

// Event adds an Event property.
func (b *NodeBuilder) Event(id PropertyID) *NodeBuilder {
	return b.Property(Event(id))
}

// Input adds an Input property. At most one default may be given and it
// must match dt.
func (b *NodeBuilder) Input(id PropertyID, dt value.DataType, def ...value.Value) *NodeBuilder {
	switch len(def) {
	case 0:
		return b.Property(Input(id, dt))
	case 1:
		if def[0].DataType() != dt {
			panic(fmt.Sprintf("schema: default for input '%s' on node '%s' is %s, want %s", id, b.node.id, def[0].DataType(), dt))
		}
		return b.Property(InputWithDefault(id, def[0]))
	default:
		panic(fmt.Sprintf("schema: input '%s' on node '%s' has more than one default", id, b.node.id))
	}
}

// Output adds an Output property.
func (b *NodeBuilder) Output(id PropertyID, dt value.DataType) *NodeBuilder {
	return b.Property(Output(id, dt))
}

// Build returns the finished template. The builder cannot be used afterwards.
func (b *NodeBuilder) Build() Node {
	b.built = true
	return b.node
}
