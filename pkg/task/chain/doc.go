// Package chain provides a fluent wrapper around Task[T] for composing
// asynchronous steps without handling each settlement by hand.
//
// Every step returns a new Chain backed by an in-flight task; the pipeline
// only blocks at Await. A failed step short-circuits everything after it.
//
// Key operations:
// - Start/FromValue/Go: begin a chain from a task, value or function
// - Then/Map: compose over the previous value
// - Returns/ReturnsAs: override the carried value
// - Sleep: value-preserving delay
// - Print/PrintWith: value-preserving text emission
// - Retry: re-invoke a step with the carried value as fixed input
// - Each/FanOut: serial or concurrent element-wise steps over collections
// - Switch: move the chain to a new value type
package chain
