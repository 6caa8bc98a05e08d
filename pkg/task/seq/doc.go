// Package seq provides strictly ordered composition of tasks.
//
// A sequence is a list of tagged Source steps: plain values, callables fed
// the previous result, or already-started tasks, freely mixed. Run executes
// them one at a time; a step never starts before the previous one has
// settled, and the first failure aborts the rest.
//
// Key operations:
// - Value/Func/From: build a tagged step
// - Run: execute steps in order, threading results, seed feeds step 0
// - Each: serial element-wise mapping over a collection-valued task
// - FanOut: concurrent element-wise mapping, join on all, index-aligned
// - AutoEach/AutoFanOut: untyped wrappers that fall back to a single call
//   when the settled value is not a collection
package seq
