package processor

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/graphflow/internal/schema"
)

// Router maps template ids to processors. Registration happens once at
// startup; afterwards the Router is read-only and safe for concurrent use.
type Router struct {
	processors map[schema.NodeID]Processor
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{processors: make(map[schema.NodeID]Processor)}
}

// Register binds p to template. It panics if template already has one.
func (r *Router) Register(template schema.NodeID, p Processor) {
	if _, exists := r.processors[template]; exists {
		panic(fmt.Sprintf("processor: duplicate processor for template '%s'", template))
	}
	r.processors[template] = p
}

// Route returns the processor for template.
func (r *Router) Route(template schema.NodeID) (Processor, bool) {
	p, ok := r.processors[template]
	return p, ok
}

// Templates returns the ids of every routed template, sorted.
func (r *Router) Templates() []schema.NodeID {
	out := make([]schema.NodeID, 0, len(r.processors))
	for id := range r.processors {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
