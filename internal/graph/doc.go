// Package graph instantiates concrete, executable graphs from a schema.
//
// # Model
//
// A Graph is an arena of PlacedNodes keyed by instance key plus one EdgeMap.
// Instances hold a value copy of their template and never point at each
// other; edges address instances by key. A built Graph is immutable and is
// read concurrently by every worker without locking.
//
//	 schema.Schema ──▶ Builder ──▶ Graph
//	                   │  Node      ├─ map[key]*PlacedNode
//	                   │  Assign    └─ EdgeMap
//	                   │  Connect       ├─ edges   "src>tgt" -> Edge
//	                   └─ Build         ├─ inputs  "key#input" -> source Hook
//	                                    └─ outputs "key#prop"  -> []target Hook
//
// # Wiring rules
//
// Only two wire shapes are legal: Event -> Command (control) and
// Output -> Input of the same DataType (data). Builder.Connect rejects
// everything else with a typed *Error that unwraps to one of the Err*
// sentinels, so callers match with errors.Is and inspect the instance key and
// property id with errors.As.
package graph
