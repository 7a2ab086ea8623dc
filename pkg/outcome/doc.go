// Package outcome provides Result[T, F], an immutable value that is
// either a success carrying T or a failure carrying F, together with the
// combinators to compose fallible computations without exceptions.
//
// Highlights:
// - Success/Failure: construct a Result
// - Value/FailureValue, Get/GetFailure: inspect without panicking
// - OnSuccess/OnFailure: side effects that keep the result unchanged
// - Map/MapFailure, FlatMap/FlatMapFailure: transform either channel
// - Recover/FlatRecover: turn failures back into successes
// - Combine2..5, CombineAll (and Flat variants): fold several results
//   into one, first failure in argument order winning
// - Try/Catch: bridge (value, error) returns and panics into Results
//
// Failures short-circuit; they are never collected or aggregated.
package outcome
