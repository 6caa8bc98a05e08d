package chain

import (
	"context"

	"github.com/ib-77/taskflow/pkg/task"
	"github.com/ib-77/taskflow/pkg/task/seq"
)

// Switch chains a function that moves the chain to a new value type.
func Switch[T, U any](c *Chain[T], onSuccess func(ctx context.Context, t T) (U, error)) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, t: task.Continue(c.ctx, c.t, onSuccess)}
}

// ReturnsAs discards the previous step's value and resolves to v, switching
// the chain's value type. The previous failure still propagates.
func ReturnsAs[T, U any](c *Chain[T], v U) *Chain[U] {
	return Switch(c, func(context.Context, T) (U, error) {
		return v, nil
	})
}

// Each applies fn to a collection-valued chain's elements one at a time, in
// order, resolving to the index-aligned outputs.
func Each[In, Out any](c *Chain[[]In], fn func(ctx context.Context, v In, i int) (Out, error)) *Chain[[]Out] {
	return &Chain[[]Out]{ctx: c.ctx, t: seq.Each(c.ctx, c.t, fn)}
}

// FanOut applies fn to every element of a collection-valued chain
// concurrently, resolving to the index-aligned outputs once all settle.
func FanOut[In, Out any](c *Chain[[]In], fn func(ctx context.Context, v In) (Out, error)) *Chain[[]Out] {
	return &Chain[[]Out]{ctx: c.ctx, t: seq.FanOut(c.ctx, c.t, fn)}
}
