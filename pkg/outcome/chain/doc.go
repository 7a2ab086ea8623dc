// Package chain provides a fluent wrapper around outcome.Result[T, F]
// for building synchronous pipelines without branching on the result at
// each step.
//
// The chain carries a context.Context and hands it to every callback; it
// imposes no cancellation semantics of its own.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, F] or value
// - Then/TryThen: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Recover: handle the failure channel, possibly failing again
// - Ensure: trigger side effects without changing the result
// - Or/And: pick the first success / stop at the first failure
// - Switch/MapTo: move to a chain over a new success type
// - Finally/FinallyTo: reduce to a concrete value via handlers
package chain
