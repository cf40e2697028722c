package graph

// Graph is an immutable, validated program. It is safe for concurrent
// reads.
type Graph struct {
	nodes map[string]*PlacedNode
	order []string
	edges *EdgeMap
}

// Node looks up an instance by key.
func (g *Graph) Node(key string) (*PlacedNode, bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// Nodes returns all instances in the order they were placed.
func (g *Graph) Nodes() []*PlacedNode {
	out := make([]*PlacedNode, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, g.nodes[k])
	}
	return out
}

// Edges returns the graph's edge map.
func (g *Graph) Edges() *EdgeMap { return g.edges }

// NodeCount returns the number of instances.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// EntryCommands returns the Commands that no Event drives. These are the
// graph's entry points: nothing inside the graph will ever invoke them, so
// an execution has to seed them.
func (g *Graph) EntryCommands() []Hook {
	var out []Hook
	for _, n := range g.Nodes() {
		for _, p := range n.Template().Properties() {
			if !p.IsCommand() {
				continue
			}
			h := NewHook(n, p)
			if !g.edges.HasInbound(h) {
				out = append(out, h)
			}
		}
	}
	return out
}
