// Package task provides a single-resolution asynchronous value, Task[T],
// and the primitives the combinator packages build on.
//
// A Task settles exactly once, with a value or an error, and can be awaited
// any number of times afterwards. Combinators never cancel a running
// computation; an expired context only abandons the wait for it.
//
// Key operations:
// - Go/Resolve/Reject: start or pre-settle a task
// - After: timer task resolving once a duration has elapsed
// - Await/Outcome: block for the value or the full Result snapshot
// - Continue: derive a task from another's successful value
// - Join: wait for all, values in input order, first failure rejects
// - SetDefaultPrinter/Emit: process-wide text sink used by Print steps
// - SetUnobservedHandler: best-effort logging of never-awaited failures
//
// Higher-level composition lives in the subpackages chain, seq, retry and
// race.
package task
