// Package race resolves a group of independently running tasks to the first
// one that succeeds.
//
// Success has race semantics: whichever participant settles successfully
// first, by wall-clock settlement and not by input position, supplies the
// value. Total failure has collect-all semantics: only after every
// participant has failed does the race reject, with *AllFailedError holding
// all errors in settlement order.
//
// Key operations:
// - FirstSuccess: race already-started tasks
// - FirstSuccessInstrumented: same, with Prometheus win/failure counters
// - IsAllFailed: detect the everyone-failed outcome
package race
