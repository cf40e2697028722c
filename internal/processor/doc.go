/*
Package processor defines the per-template behavior contract used by the
engine's workers, and the Router that maps template ids to processors.

A Processor executes Commands and reports which Events fired. Templates that
declare Outputs also implement Evaluator so that downstream Inputs can pull
their values on demand. Processors must not retain the Request after
returning.
*/
package processor
