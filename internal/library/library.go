// Package library wraps a Schema with typed property lookups used by the
// engine's workers.
package library

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/graphflow/internal/schema"
)

var (
	// ErrNotFound is returned when a template or property does not exist.
	ErrNotFound = errors.New("not found")
	// ErrWrongKind is returned when a property exists but is of another kind.
	ErrWrongKind = errors.New("wrong property kind")
)

// Ref is a resolved (template, property) pair.
type Ref struct {
	Node     schema.Node
	Property schema.Property
}

// Library is the shared, read-only catalog of templates.
type Library struct {
	schema *schema.Schema
}

// New wraps s.
func New(s *schema.Schema) *Library {
	return &Library{schema: s}
}

// Schema returns the wrapped schema.
func (l *Library) Schema() *schema.Schema { return l.schema }

// Node looks up a template.
func (l *Library) Node(id schema.NodeID) (schema.Node, error) {
	n, ok := l.schema.Node(id)
	if !ok {
		return schema.Node{}, fmt.Errorf("template '%s': %w", id, ErrNotFound)
	}
	return n, nil
}

// Command resolves a Command property.
func (l *Library) Command(template schema.NodeID, id schema.PropertyID) (Ref, error) {
	return l.lookup(template, id, schema.KindCommand)
}

// Event resolves an Event property.
func (l *Library) Event(template schema.NodeID, id schema.PropertyID) (Ref, error) {
	return l.lookup(template, id, schema.KindEvent)
}

// Input resolves an Input property.
func (l *Library) Input(template schema.NodeID, id schema.PropertyID) (Ref, error) {
	return l.lookup(template, id, schema.KindInput)
}

// Output resolves an Output property.
func (l *Library) Output(template schema.NodeID, id schema.PropertyID) (Ref, error) {
	return l.lookup(template, id, schema.KindOutput)
}

func (l *Library) lookup(template schema.NodeID, id schema.PropertyID, kind schema.Kind) (Ref, error) {
	n, err := l.Node(template)
	if err != nil {
		return Ref{}, err
	}
	p, ok := n.Property(id)
	if !ok {
		return Ref{}, fmt.Errorf("property '%s' on template '%s': %w", id, template, ErrNotFound)
	}
	if p.Kind() != kind {
		return Ref{}, fmt.Errorf("'%s' on template '%s' is not a %s but a %s: %w", id, template, kind, p.Kind(), ErrWrongKind)
	}
	return Ref{Node: n, Property: p}, nil
}
