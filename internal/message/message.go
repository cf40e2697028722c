// Package message defines the units of work sent over the engine's dispatch
// channel.
package message

import (
	"github.com/specialistvlad/graphflow/internal/graph"
	"github.com/specialistvlad/graphflow/internal/schema"
)

// Context addresses an instruction: which run, which graph, which instance.
// The graph is shared read-only by every worker.
type Context struct {
	RunID string
	Graph *graph.Graph
	Node  *graph.PlacedNode
}

// Message is the closed set of envelopes a worker can receive.
type Message interface {
	isMessage()
}

// Instruction asks a worker to invoke Command on Context.Node.
type Instruction struct {
	Context Context
	Command schema.PropertyID
}

func (Instruction) isMessage() {}

// Hook returns the instruction's target as "instance#command".
func (i Instruction) Hook() string {
	return i.Context.Node.Key() + "#" + string(i.Command)
}

// Shutdown tells the receiving worker to leave its loop.
type Shutdown struct{}

func (Shutdown) isMessage() {}
