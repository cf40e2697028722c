// Package engine executes built graphs on a fixed pool of workers.
//
// # Architecture
//
//	Execute ──seed──▶ ┌──────────────────────┐ ──▶ worker 0 ─┐
//	                  │ bounded Message chan │ ──▶ worker 1 ─┤ Processor via Router
//	   route ◀────────└──────────────────────┘ ──▶ worker N ─┘
//	     ▲                                                  │
//	     └──────────── fired Event → EdgeMap.Outputs ───────┘
//
// Every worker pulls a message, resolves the target node's Processor through
// the Router, executes the Command, and turns each fired Event into one new
// Instruction per downstream Command. Inputs are not pushed along edges;
// a processor pulls them, and the resolver walks EdgeMap.Input back to the
// producing Output and evaluates it on the spot. Because graphs are
// immutable, this observes every value a completed upstream node could have
// delivered.
//
// # Termination
//
// A Run counts the instructions it has queued or in flight. Seeds are counted
// before they are sent and children before their parent is released, so the
// count reaches zero exactly once, when the run has gone quiet. Run.Wait
// returns at that point.
//
// # Backpressure
//
// External seeding blocks while the channel is full. Workers never block on
// the channel: when it is full, a routed instruction is handed to a detached
// sender so that a pool whose workers are all producing cannot deadlock.
//
// # Ownership
//
// The Engine holds the only strong reference to the Library. Workers hold a
// weak.Pointer and stop if it resolves to nil.
package engine
