package registry

import (
	"fmt"

	"github.com/specialistvlad/graphflow/internal/processor"
	"github.com/specialistvlad/graphflow/internal/schema"
)

// Module is the interface that all node modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the templates and processors for a single application
// instance. Registration is single-threaded startup code; duplicates panic.
type Registry struct {
	schema *schema.Builder
	router *processor.Router
	nodes  []schema.Node
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		schema: schema.NewBuilder(),
		router: processor.NewRouter(),
	}
}

// RegisterNode adds a template. It panics if the id is already taken.
func (r *Registry) RegisterNode(n schema.Node) {
	r.schema.Node(n)
	r.nodes = append(r.nodes, n)
}

// RegisterProcessor binds the behavior of a template. It panics if the
// template already has a processor.
func (r *Registry) RegisterProcessor(template schema.NodeID, p processor.Processor) {
	r.router.Register(template, p)
}

// Register is a shorthand for RegisterNode plus RegisterProcessor.
func (r *Registry) Register(n schema.Node, p processor.Processor) {
	r.RegisterNode(n)
	r.RegisterProcessor(n.ID(), p)
}

// HasNode reports whether a template id is registered.
func (r *Registry) HasNode(id schema.NodeID) bool {
	return r.schema.Has(id)
}

// Load registers every module in order.
func (r *Registry) Load(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry{templates: %d, processors: %d}", len(r.nodes), len(r.router.Templates()))
}
