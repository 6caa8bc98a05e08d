// Package retry repeats a callable until it succeeds or its attempt budget
// runs out, waiting a fixed delay between attempts and collecting every
// error along the way.
//
// Attempts are strictly sequential. The delay happens only between a failure
// and the next attempt, never before the first attempt and never after the
// last failure. A budget of 0 fails immediately without invoking the
// callable. Success discards the collected errors; exhaustion surfaces all
// of them through *ExhaustedError.
//
// Key operations:
// - Do: run a callable under a Config
// - DefaultConfig: one attempt, 500ms delay
// - IsExhausted: detect the budget-spent failure
//
// Configs are copied on entry, so a single Config value may drive concurrent
// runs. Optional Prometheus instrumentation attaches via Config.Metrics.
package retry
