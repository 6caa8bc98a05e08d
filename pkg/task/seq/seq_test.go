package seq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ib-77/taskflow/pkg/task"
)

func TestRunThreadsResultsInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sources := []Source[string]{
		Value("a"),
		Func(func(_ context.Context, prev string, _ int) (string, error) { return prev + "1", nil }),
		Func(func(_ context.Context, prev string, _ int) (string, error) { return prev + "2", nil }),
	}

	got, err := Run(ctx, sources, "").Await(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "a1", "a12"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRunMixedSourceKinds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sources := []Source[any]{
		Value[any]("domain.com"),
		Func(func(_ context.Context, _ any, _ int) (any, error) { return 10, nil }),
		Func(func(_ context.Context, prev any, _ int) (any, error) { return prev.(int) + 1, nil }),
		Func(func(_ context.Context, prev any, _ int) (any, error) { return prev.(int) + 1, nil }),
	}

	got, err := Run(ctx, sources, nil).Await(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{"domain.com", 10, 11, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRunSeedFeedsFirstStep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sources := []Source[int]{
		Func(func(_ context.Context, prev int, i int) (int, error) { return prev + i, nil }),
	}
	got, err := Run(ctx, sources, 40).Await(ctx)
	if err != nil || got[0] != 40 {
		t.Fatalf("expected [40], got: %v, err=%v", got, err)
	}
}

func TestRunAwaitsTaskSources(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inflight := task.Go(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 5, nil
	})
	sources := []Source[int]{
		From[int](inflight),
		Func(func(_ context.Context, prev int, _ int) (int, error) { return prev * 2, nil }),
	}

	got, err := Run(ctx, sources, 0).Await(ctx)
	if err != nil || got[0] != 5 || got[1] != 10 {
		t.Fatalf("expected [5 10], got: %v, err=%v", got, err)
	}
}

func TestRunStrictOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var order []int
	step := func(n int) Source[int] {
		return Func(func(_ context.Context, prev int, _ int) (int, error) {
			// step n must observe every step before it already finished
			order = append(order, n)
			time.Sleep(5 * time.Millisecond)
			return prev + 1, nil
		})
	}

	_, err := Run(ctx, []Source[int]{step(0), step(1), step(2)}, 0).Await(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("steps ran out of order: %v", order)
	}
}

func TestRunShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	laterRan := false
	sources := []Source[int]{
		Value(1),
		Func(func(_ context.Context, _ int, _ int) (int, error) { return 0, boom }),
		Func(func(_ context.Context, prev int, _ int) (int, error) {
			laterRan = true
			return prev, nil
		}),
	}

	_, err := Run(ctx, sources, 0).Await(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}
	if laterRan {
		t.Fatalf("steps after a failure must never run")
	}
}

func TestEachMapsSerially(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := task.Resolve([]int{1, 2, 3})
	got, err := Each(ctx, in, func(_ context.Context, v int, i int) (int, error) {
		return v * 10, nil
	}).Await(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Fatalf("expected [10 20 30], got: %v", got)
	}
}

func TestEachStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	visited := 0
	_, err := Each(ctx, task.Resolve([]int{1, 2, 3}), func(_ context.Context, v int, _ int) (int, error) {
		visited++
		if v == 2 {
			return 0, boom
		}
		return v, nil
	}).Await(ctx)

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}
	if visited != 2 {
		t.Fatalf("expected 2 elements visited, got %d", visited)
	}
}

func TestFanOutRunsConcurrently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	start := time.Now()
	got, err := FanOut(ctx, task.Resolve([]int{1, 2, 3}), func(_ context.Context, v int) (int, error) {
		time.Sleep(50 * time.Millisecond)
		return v + 1, nil
	}).Await(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 2 || got[1] != 3 || got[2] != 4 {
		t.Fatalf("expected [2 3 4], got: %v", got)
	}
	if elapsed := time.Since(start); elapsed > 120*time.Millisecond {
		t.Fatalf("elements should run concurrently, took %v", elapsed)
	}
}

func TestFanOutRejectsOnElementFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := FanOut(ctx, task.Resolve([]int{1, 2, 3}), func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	}).Await(ctx)

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}
}

func TestAutoEachDegradedSingleCall(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	got, err := AutoEach(ctx, task.Resolve[any]("plain"), func(_ context.Context, v any, i int) (any, error) {
		calls++
		if i != 0 {
			t.Fatalf("degraded call must use index 0, got %d", i)
		}
		return v.(string) + "!", nil
	}).Await(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("callback must run exactly once, ran %d times", calls)
	}
	if got != "plain!" {
		t.Fatalf("result must not be wrapped in a collection, got: %v", got)
	}
}

func TestAutoEachCollection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := AutoEach(ctx, task.Resolve[any]([]int{1, 2}), func(_ context.Context, v any, i int) (any, error) {
		return v.(int) + i, nil
	}).Await(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, ok := got.([]any)
	if !ok || len(items) != 2 || items[0] != 1 || items[1] != 3 {
		t.Fatalf("expected [1 3], got: %v", got)
	}
}

func TestAutoFanOutDegradedSingleCall(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := AutoFanOut(ctx, task.Resolve[any](21), func(_ context.Context, v any) (any, error) {
		return v.(int) * 2, nil
	}).Await(ctx)

	if err != nil || got != 42 {
		t.Fatalf("expected 42, got: %v, err=%v", got, err)
	}
}
