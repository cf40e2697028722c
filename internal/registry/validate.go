package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/library"
	"github.com/specialistvlad/graphflow/internal/processor"
)

// ValidateRegistry performs a parity check between templates and processors.
//
// A processor without a template is an error. A template with Outputs whose
// processor cannot evaluate them is an error. A template without any
// processor is only a warning: instances of it can still feed or consume
// data, but any Instruction sent to it will be dropped at run time.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, id := range r.router.Templates() {
		if !r.schema.Has(id) {
			errs = append(errs, fmt.Sprintf("processor registered for unknown template '%s'", id))
		}
	}

	for _, n := range r.nodes {
		p, ok := r.router.Route(n.ID())
		if !ok {
			logger.Warn("Template has no processor; its commands will be dropped.", "template", n.ID())
			continue
		}
		hasOutputs := false
		for _, prop := range n.Properties() {
			if prop.IsOutput() {
				hasOutputs = true
				break
			}
		}
		if _, canEvaluate := p.(processor.Evaluator); hasOutputs && !canEvaluate {
			errs = append(errs, fmt.Sprintf("template '%s' declares outputs but its processor cannot evaluate them", n.ID()))
		}
	}

	if len(errs) > 0 {
		return errors.New("registry validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	logger.Debug("Registry validation passed.", "templates", len(r.nodes))
	return nil
}

// Build validates the registry and returns the shared Library and Router.
func (r *Registry) Build(ctx context.Context) (*library.Library, *processor.Router, error) {
	if err := r.ValidateRegistry(ctx); err != nil {
		return nil, nil, err
	}
	return library.New(r.schema.Build()), r.router, nil
}
