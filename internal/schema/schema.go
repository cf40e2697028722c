package schema

import (
	"fmt"
	"sort"
)

// Schema maps template ids to templates. It is immutable and safe for
// concurrent reads.
type Schema struct {
	nodes map[NodeID]Node
}

// Node looks up a template.
func (s *Schema) Node(id NodeID) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Nodes returns every template sorted by id.
func (s *Schema) Nodes() []Node {
	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Len returns the number of templates.
func (s *Schema) Len() int { return len(s.nodes) }

// Builder assembles a Schema; Node panics on a duplicate template id.
type Builder struct {
	nodes map[NodeID]Node
}

// NewBuilder returns an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make(map[NodeID]Node)}
}

// Node adds a template.
func (b *Builder) Node(n Node) *Builder {
	if _, exists := b.nodes[n.id]; exists {
		panic(fmt.Sprintf("schema: duplicate node '%s'", n.id))
	}
	b.nodes[n.id] = n
	return b
}

// Has reports whether a template id has already been added.
func (b *Builder) Has(id NodeID) bool {
	_, ok := b.nodes[id]
	return ok
}

// Build returns the immutable Schema.
func (b *Builder) Build() *Schema {
	nodes := make(map[NodeID]Node, len(b.nodes))
	for id, n := range b.nodes {
		nodes[id] = n
	}
	return &Schema{nodes: nodes}
}
