package race

import (
	"context"
	"errors"
	"strings"

	"github.com/ib-77/taskflow/pkg/metrics"
	"github.com/ib-77/taskflow/pkg/task"
)

// AllFailedError is the failure returned when every race participant fails.
// Errs holds each participant's error in settlement order, not input order.
type AllFailedError struct {
	Errs []error
}

func (e *AllFailedError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "all tasks failed: " + strings.Join(msgs, "\n")
}

// Unwrap allows errors.Is/As to reach the underlying participant errors.
func (e *AllFailedError) Unwrap() []error {
	return e.Errs
}

// IsAllFailed returns true if err reports a race with no successful participant.
func IsAllFailed(err error) bool {
	var afe *AllFailedError
	return errors.As(err, &afe)
}

// FirstSuccess races already-started tasks and resolves to the value of
// whichever succeeds first by settlement time, regardless of input order.
// Failures keep accumulating until either one participant succeeds or all
// have failed, in which case the task rejects with an *AllFailedError
// carrying every error in settlement order.
//
// An empty input rejects immediately with an empty *AllFailedError.
func FirstSuccess[T any](ctx context.Context, tasks ...task.Awaitable[T]) *task.Task[T] {
	return firstSuccess(ctx, nil, "", tasks)
}

// FirstSuccessInstrumented is FirstSuccess with win/all-failed counters
// recorded on reg under name.
func FirstSuccessInstrumented[T any](ctx context.Context, reg *metrics.Registry, name string, tasks ...task.Awaitable[T]) *task.Task[T] {
	if name == "" {
		name = "default"
	}
	return firstSuccess(ctx, reg, name, tasks)
}

func firstSuccess[T any](ctx context.Context, reg *metrics.Registry, name string, tasks []task.Awaitable[T]) *task.Task[T] {
	type settlement struct {
		value T
		err   error
	}

	ch := make(chan settlement, len(tasks))
	for _, in := range tasks {
		go func(in task.Awaitable[T]) {
			v, err := in.Await(ctx)
			ch <- settlement{value: v, err: err}
		}(in)
	}

	return task.Go(func() (T, error) {
		var failed []error
		for range tasks {
			s := <-ch
			if s.err == nil {
				if reg != nil {
					reg.RaceWins.WithLabelValues(name).Inc()
				}
				return s.value, nil
			}
			failed = append(failed, s.err)
		}
		if reg != nil {
			reg.RaceAllFailed.WithLabelValues(name).Inc()
		}
		var zero T
		return zero, &AllFailedError{Errs: failed}
	})
}
