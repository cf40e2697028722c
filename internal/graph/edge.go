package graph

import (
	"github.com/specialistvlad/graphflow/internal/hookid"
	"github.com/specialistvlad/graphflow/internal/schema"
)

// Hook is one endpoint of a wire: an instance key plus one of its
// template's properties.
type Hook struct {
	Instance string
	Property schema.Property
}

// NewHook binds a property of n into a Hook.
func NewHook(n *PlacedNode, p schema.Property) Hook {
	return Hook{Instance: n.Key(), Property: p}
}

// Address returns the hook's parsed canonical form.
func (h Hook) Address() hookid.Address {
	return hookid.Address{Instance: h.Instance, Property: string(h.Property.ID())}
}

// String renders "<instance-key>#<property-id>".
func (h Hook) String() string { return h.Address().String() }

// Edge is a validated wire from a producing property (Event or Output) to a
// requiring one (Command or Input).
type Edge struct {
	Source Hook
	Target Hook
}

// Key renders the canonical "<source-hook>><target-hook>" key.
func (e Edge) Key() string {
	return hookid.Edge{Source: e.Source.Address(), Target: e.Target.Address()}.String()
}

func (e Edge) String() string { return e.Key() }

// EdgeMap is the set of edges of a graph plus the reverse indexes used for
// routing. Indexes are updated on every Insert.
type EdgeMap struct {
	edges   map[string]Edge
	order   []string
	inputs  map[string]Hook
	outputs map[string][]Hook
	inbound map[string]int
}

// NewEdgeMap returns an empty EdgeMap.
func NewEdgeMap() *EdgeMap {
	return &EdgeMap{
		edges:   make(map[string]Edge),
		inputs:  make(map[string]Hook),
		outputs: make(map[string][]Hook),
		inbound: make(map[string]int),
	}
}

// Insert adds e. It fails with ErrDuplicateEdge if the identical edge is
// present, and with ErrInputAlreadyConnected if e targets an Input that is
// already fed by another Output. On failure the map is unchanged.
func (m *EdgeMap) Insert(e Edge) error {
	key := e.Key()
	if _, exists := m.edges[key]; exists {
		return ErrDuplicateEdge
	}
	target := e.Target.String()
	if e.Target.Property.IsInput() {
		if _, fed := m.inputs[target]; fed {
			return ErrInputAlreadyConnected
		}
		m.inputs[target] = e.Source
	}

	source := e.Source.String()
	m.outputs[source] = append(m.outputs[source], e.Target)
	m.inbound[target]++
	m.edges[key] = e
	m.order = append(m.order, key)
	return nil
}

// Contains reports whether the identical edge is present.
func (m *EdgeMap) Contains(e Edge) bool {
	_, ok := m.edges[e.Key()]
	return ok
}

// ContainsKey reports whether an edge with the canonical key is present.
func (m *EdgeMap) ContainsKey(key string) bool {
	_, ok := m.edges[key]
	return ok
}

// Input returns the single Hook feeding the target Input hook.
func (m *EdgeMap) Input(target Hook) (Hook, bool) {
	h, ok := m.inputs[target.String()]
	return h, ok
}

// Outputs returns every Hook fed by source, in insertion order. The
// returned slice must not be modified.
func (m *EdgeMap) Outputs(source Hook) []Hook {
	return m.outputs[source.String()]
}

// HasInbound reports whether any edge targets the hook.
func (m *EdgeMap) HasInbound(target Hook) bool {
	return m.inbound[target.String()] > 0
}

// Edges returns all edges in insertion order.
func (m *EdgeMap) Edges() []Edge {
	out := make([]Edge, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.edges[k])
	}
	return out
}

// Len returns the number of edges.
func (m *EdgeMap) Len() int { return len(m.edges) }
