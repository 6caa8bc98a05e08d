package chain

import (
	"context"
	"time"

	"github.com/ib-77/taskflow/pkg/task"
	"github.com/ib-77/taskflow/pkg/task/retry"
)

// Chain wraps a Task with context to enable fluent chaining. Every step
// derives a new in-flight Task; nothing blocks until Await.
type Chain[T any] struct {
	ctx context.Context
	t   *task.Task[T]
}

// Start creates a new chain from an already-started task.
func Start[T any](ctx context.Context, t *task.Task[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, t: t}
}

// FromValue creates a new chain from an already-resolved value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{ctx: ctx, t: task.Resolve(value)}
}

// Go creates a new chain by starting fn in its own goroutine.
func Go[T any](ctx context.Context, fn func() (T, error)) *Chain[T] {
	return &Chain[T]{ctx: ctx, t: task.Go(fn)}
}

// Task returns the underlying task of the last step.
func (c *Chain[T]) Task() *task.Task[T] {
	return c.t
}

// Await blocks for the last step's settlement.
func (c *Chain[T]) Await() (T, error) {
	return c.t.Await(c.ctx)
}

func (c *Chain[T]) next(t *task.Task[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, t: t}
}

// Then chains a function over the previous step's successful value.
func (c *Chain[T]) Then(onSuccess func(ctx context.Context, t T) (T, error)) *Chain[T] {
	return c.next(task.Continue(c.ctx, c.t, onSuccess))
}

// Map chains a pure transformation function.
func (c *Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) *Chain[T] {
	return c.Then(func(ctx context.Context, v T) (T, error) {
		return onSuccess(ctx, v), nil
	})
}

// Returns discards the previous step's value and resolves to v instead.
// The previous step is still awaited first; its failure still propagates.
func (c *Chain[T]) Returns(v T) *Chain[T] {
	return c.Then(func(context.Context, T) (T, error) {
		return v, nil
	})
}

// Sleep waits d after the previous step settles, then resolves to the same
// value unchanged.
func (c *Chain[T]) Sleep(d time.Duration) *Chain[T] {
	return c.Then(func(ctx context.Context, v T) (T, error) {
		if _, err := task.After(d).Await(ctx); err != nil {
			return v, err
		}
		return v, nil
	})
}

// Print emits text after the previous step settles and resolves to the
// step's value unchanged. The text goes to the first given printer, else the
// process-wide default, else standard diagnostic output.
func (c *Chain[T]) Print(text string, printers ...task.Printer) *Chain[T] {
	return c.PrintWith(func(T) string { return text }, printers...)
}

// PrintWith is Print with the text computed from the settled value.
func (c *Chain[T]) PrintWith(fn func(v T) string, printers ...task.Printer) *Chain[T] {
	return c.Ensure(func(_ context.Context, v T) {
		task.Emit(fn(v), printers...)
	})
}

// Ensure performs a side effect on success without changing the result.
func (c *Chain[T]) Ensure(onSuccess func(ctx context.Context, t T)) *Chain[T] {
	return c.Then(func(ctx context.Context, v T) (T, error) {
		onSuccess(ctx, v)
		return v, nil
	})
}

// Retry re-invokes fn with the previous step's settled value as its fixed
// input until it succeeds or cfg's attempt budget is spent. Only the
// remaining-attempts count changes between invocations.
func (c *Chain[T]) Retry(fn func(ctx context.Context, v T, remaining int) (T, error), cfg retry.Config) *Chain[T] {
	return c.next(task.Continue(c.ctx, c.t, func(ctx context.Context, v T) (T, error) {
		return retry.Do(ctx, func(ctx context.Context, remaining int) (T, error) {
			return fn(ctx, v, remaining)
		}, cfg).Await(ctx)
	}))
}
