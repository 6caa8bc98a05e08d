package seq

import (
	"context"

	"github.com/ib-77/taskflow/pkg/task"
)

type sourceKind int

const (
	kindValue sourceKind = iota
	kindFunc
	kindTask
)

// Source is one step of a sequence: a plain value, a callable fed the
// previous step's result, or an already-started task. The three are distinct
// constructors on purpose; there is no runtime guessing about what a step is.
type Source[T any] struct {
	kind  sourceKind
	value T
	fn    func(ctx context.Context, prev T, i int) (T, error)
	task  task.Awaitable[T]
}

// Value is a step that settles to v, ignoring the previous result.
func Value[T any](v T) Source[T] {
	return Source[T]{kind: kindValue, value: v}
}

// Func is a step computed from the previous step's result and its own index.
func Func[T any](fn func(ctx context.Context, prev T, i int) (T, error)) Source[T] {
	return Source[T]{kind: kindFunc, fn: fn}
}

// From is a step that awaits an already-started task.
func From[T any](t task.Awaitable[T]) Source[T] {
	return Source[T]{kind: kindTask, task: t}
}

func (s Source[T]) next(ctx context.Context, prev T, i int) (T, error) {
	switch s.kind {
	case kindFunc:
		return s.fn(ctx, prev, i)
	case kindTask:
		return s.task.Await(ctx)
	default:
		return s.value, nil
	}
}

// Run executes sources strictly in order, threading each settled value into
// the next callable step (seed feeds the step at index 0), and resolves to
// all step values in input order. A step is not started until the one before
// it has settled successfully; the first failure rejects the whole run and
// later steps never execute.
func Run[T any](ctx context.Context, sources []Source[T], seed T) *task.Task[[]T] {
	return task.Go(func() ([]T, error) {
		results := make([]T, 0, len(sources))
		prev := seed
		for i, s := range sources {
			v, err := s.next(ctx, prev, i)
			if err != nil {
				return nil, err
			}
			results = append(results, v)
			prev = v
		}
		return results, nil
	})
}

// Each awaits a collection-valued input and applies fn to its elements one at
// a time, in order, resolving to the index-aligned outputs. The first failure
// rejects the whole task; later elements are never visited.
func Each[In, Out any](ctx context.Context, in task.Awaitable[[]In], fn func(ctx context.Context, v In, i int) (Out, error)) *task.Task[[]Out] {
	return task.Continue(ctx, in, func(ctx context.Context, items []In) ([]Out, error) {
		results := make([]Out, 0, len(items))
		for i, item := range items {
			v, err := fn(ctx, item, i)
			if err != nil {
				return nil, err
			}
			results = append(results, v)
		}
		return results, nil
	})
}

// FanOut awaits a collection-valued input, starts fn for every element
// concurrently and resolves to the index-aligned outputs once all have
// settled. Any element's failure rejects the whole task with that error.
func FanOut[In, Out any](ctx context.Context, in task.Awaitable[[]In], fn func(ctx context.Context, v In) (Out, error)) *task.Task[[]Out] {
	return task.Continue(ctx, in, func(ctx context.Context, items []In) ([]Out, error) {
		parts := make([]task.Awaitable[Out], len(items))
		for i, item := range items {
			item := item
			parts[i] = task.Go(func() (Out, error) {
				return fn(ctx, item)
			})
		}
		return task.Join(ctx, parts...).Await(ctx)
	})
}
