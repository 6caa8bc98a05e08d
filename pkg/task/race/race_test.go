package race

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ib-77/taskflow/pkg/metrics"
	"github.com/ib-77/taskflow/pkg/task"
)

func delayed[T any](d time.Duration, v T, err error) *task.Task[T] {
	return task.Go(func() (T, error) {
		time.Sleep(d)
		return v, err
	})
}

func TestMixedResolvesToSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, err := FirstSuccess[int](ctx,
		task.Reject[int](errors.New("down")),
		task.Resolve(20),
	).Await(ctx)

	if err != nil || v != 20 {
		t.Fatalf("expected 20, got: val=%v, err=%v", v, err)
	}
}

func TestFirstBySettlementTimeWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, err := FirstSuccess[string](ctx,
		delayed(60*time.Millisecond, "slow", nil),
		delayed(5*time.Millisecond, "fast", nil),
	).Await(ctx)

	if err != nil || v != "fast" {
		t.Fatalf("expected the first settled success, got: val=%q, err=%v", v, err)
	}
}

func TestSuccessDoesNotWaitForStragglers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	start := time.Now()
	_, err := FirstSuccess[int](ctx,
		task.Resolve(1),
		delayed(300*time.Millisecond, 2, nil),
	).Await(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("a win should settle the race immediately, took %v", elapsed)
	}
}

func TestAllFailedCollectsInSettlementOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e10 := errors.New("10")
	e20 := errors.New("20")

	_, err := FirstSuccess[int](ctx,
		delayed(30*time.Millisecond, 0, e20),
		delayed(5*time.Millisecond, 0, e10),
	).Await(ctx)

	var afe *AllFailedError
	if !errors.As(err, &afe) {
		t.Fatalf("expected *AllFailedError, got: %v", err)
	}
	if len(afe.Errs) != 2 || !errors.Is(afe.Errs[0], e10) || !errors.Is(afe.Errs[1], e20) {
		t.Fatalf("expected settlement order [10 20], got: %v", afe.Errs)
	}
	if !IsAllFailed(err) {
		t.Fatalf("IsAllFailed should report true")
	}
	if got := task.GetErrors(err); len(got) != 2 {
		t.Fatalf("aggregate should unwrap to 2 errors, got %d", len(got))
	}
}

func TestEmptyInputRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := FirstSuccess[int](ctx).Await(ctx)
	var afe *AllFailedError
	if !errors.As(err, &afe) || len(afe.Errs) != 0 {
		t.Fatalf("expected empty *AllFailedError, got: %v", err)
	}
}

func TestInstrumentedCounters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg := metrics.NewRegistry(prometheus.NewRegistry())

	_, err := FirstSuccessInstrumented[int](ctx, reg, "probe", task.Resolve(1)).Await(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = FirstSuccessInstrumented[int](ctx, reg, "probe", task.Reject[int](errors.New("down"))).Await(ctx)
	if !IsAllFailed(err) {
		t.Fatalf("expected all-failed, got: %v", err)
	}

	if got := testutil.ToFloat64(reg.RaceWins.WithLabelValues("probe")); got != 1 {
		t.Fatalf("expected 1 win recorded, got %v", got)
	}
	if got := testutil.ToFloat64(reg.RaceAllFailed.WithLabelValues("probe")); got != 1 {
		t.Fatalf("expected 1 all-failed recorded, got %v", got)
	}
}
