package seq

import (
	"context"
	"reflect"

	"github.com/ib-77/taskflow/pkg/task"
)

// AutoEach is the untyped convenience form of Each. If the input settles to a
// slice or array, fn runs over its elements in order and the task resolves to
// []any; any other value is handed to fn once, as-is with index 0, and the
// task resolves to fn's bare result. Prefer the typed Each and Run entry
// points; this wrapper exists for callers holding a Task[any] of unknown
// shape.
func AutoEach(ctx context.Context, in task.Awaitable[any], fn func(ctx context.Context, v any, i int) (any, error)) *task.Task[any] {
	return task.Continue(ctx, in, func(ctx context.Context, v any) (any, error) {
		items, ok := asSlice(v)
		if !ok {
			return fn(ctx, v, 0)
		}
		results := make([]any, 0, len(items))
		for i, item := range items {
			out, err := fn(ctx, item, i)
			if err != nil {
				return nil, err
			}
			results = append(results, out)
		}
		return results, nil
	})
}

// AutoFanOut is the untyped convenience form of FanOut, with the same
// degraded single-call behavior as AutoEach for non-collection input.
func AutoFanOut(ctx context.Context, in task.Awaitable[any], fn func(ctx context.Context, v any) (any, error)) *task.Task[any] {
	return task.Continue(ctx, in, func(ctx context.Context, v any) (any, error) {
		items, ok := asSlice(v)
		if !ok {
			return fn(ctx, v)
		}
		parts := make([]task.Awaitable[any], len(items))
		for i, item := range items {
			item := item
			parts[i] = task.Go(func() (any, error) {
				return fn(ctx, item)
			})
		}
		results, err := task.Join(ctx, parts...).Await(ctx)
		if err != nil {
			return nil, err
		}
		return results, nil
	})
}

func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
