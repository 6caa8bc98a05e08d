package task

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Task is a single-resolution asynchronous value: it settles exactly once,
// either with a value or with an error, and every Await after that returns
// the same settlement.
type Task[T any] struct {
	done     chan struct{}
	mu       sync.Mutex
	settled  bool
	res      Result[T]
	observed atomic.Bool
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

// Go starts fn in its own goroutine and returns the in-flight Task for it.
func Go[T any](fn func() (T, error)) *Task[T] {
	t := newTask[T]()
	go func() {
		t.settle(fn())
	}()
	return t
}

// Resolve returns an already-settled successful Task.
func Resolve[T any](v T) *Task[T] {
	t := newTask[T]()
	t.settle(v, nil)
	return t
}

// Reject returns an already-settled failed Task.
func Reject[T any](err error) *Task[T] {
	t := newTask[T]()
	var zero T
	t.settle(zero, err)
	return t
}

// After returns a Task that resolves to d once d has elapsed.
func After(d time.Duration) *Task[time.Duration] {
	t := newTask[time.Duration]()
	time.AfterFunc(d, func() {
		t.settle(d, nil)
	})
	return t
}

func (t *Task[T]) settle(v T, err error) {
	t.mu.Lock()
	if t.settled {
		t.mu.Unlock()
		return
	}
	t.settled = true
	if err != nil {
		t.res = Failure[T](err)
		watchUnobserved(t, err)
	} else {
		t.res = Success(v)
	}
	t.mu.Unlock()
	close(t.done)
}

// Done is closed once the task has settled.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await blocks until the task settles or ctx expires. The running computation
// is never interrupted; an expired ctx only abandons the wait.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	t.observed.Store(true)
	select {
	case <-t.done:
		return t.res.Result(), t.res.Err()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Outcome is Await returning the full settled Result snapshot.
func (t *Task[T]) Outcome(ctx context.Context) (Result[T], error) {
	t.observed.Store(true)
	select {
	case <-t.done:
		return t.res, nil
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}
}

// Continue derives a new Task that awaits in, then applies onSuccess to its
// value. A failure of in short-circuits: onSuccess is not called and the
// derived Task fails with the same error.
func Continue[In, Out any](ctx context.Context, in Awaitable[In], onSuccess func(ctx context.Context, r In) (Out, error)) *Task[Out] {
	return Go(func() (Out, error) {
		v, err := in.Await(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		return onSuccess(ctx, v)
	})
}

// Join awaits every input and resolves to their values in input order, once
// all have settled. The first failure to settle rejects the joined Task
// immediately with that error.
func Join[T any](ctx context.Context, tasks ...Awaitable[T]) *Task[[]T] {
	out := newTask[[]T]()

	type settlement struct {
		index int
		value T
		err   error
	}

	ch := make(chan settlement, len(tasks))
	for i, in := range tasks {
		go func(i int, in Awaitable[T]) {
			v, err := in.Await(ctx)
			ch <- settlement{index: i, value: v, err: err}
		}(i, in)
	}

	go func() {
		values := make([]T, len(tasks))
		for range tasks {
			s := <-ch
			if s.err != nil {
				var zero []T
				out.settle(zero, s.err)
				return
			}
			values[s.index] = s.value
		}
		out.settle(values, nil)
	}()

	return out
}
