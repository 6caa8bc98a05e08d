package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/ib-77/taskflow/pkg/metrics"
	"github.com/ib-77/taskflow/pkg/task"
)

const (
	DefaultTimes = 1
	DefaultDelay = 500 * time.Millisecond
)

// Config controls one retry run. The zero value is honored literally: a
// Times of 0 exhausts immediately without ever invoking the callable. Use
// DefaultConfig for the conventional one-attempt, 500ms-delay settings.
//
// Do copies the config on entry, so one Config value can safely drive any
// number of concurrent runs.
type Config struct {
	// Times is the number of attempts remaining, not extra retries:
	// Times 1 means one attempt and no retry after failure.
	Times int
	// Delay is the wait between a failed attempt and the next one. There is
	// no wait before the first attempt or after the last failure.
	Delay time.Duration
	// PrintErrors emits each attempt's error on the diagnostic channel.
	PrintErrors bool
	// ErrorPrefix prefixes both printed errors and the exhaustion error.
	ErrorPrefix string
	// Printer overrides the diagnostic sink used by PrintErrors.
	Printer task.Printer
	// Metrics, when set, records attempts, waits and outcomes under Name.
	Metrics *metrics.Registry
	// Name labels this run's metrics. Empty means "default".
	Name string
}

func DefaultConfig() Config {
	return Config{Times: DefaultTimes, Delay: DefaultDelay}
}

func (c Config) normalized() Config {
	if c.Times < 0 {
		c.Times = 0
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.Name == "" {
		c.Name = "default"
	}
	return c
}

// Do invokes fn until it succeeds or the attempt budget is spent, waiting
// cfg.Delay between attempts. fn receives the count of attempts still
// available, including the one being made. Attempts are strictly sequential.
//
// On success the task resolves to fn's value and every collected error is
// discarded. Once the budget is spent the task rejects with an
// *ExhaustedError carrying all attempt errors in order. An expired ctx is
// only honored while waiting between attempts; it never interrupts fn.
func Do[T any](ctx context.Context, fn func(ctx context.Context, remaining int) (T, error), cfg Config) *task.Task[T] {
	cfg = cfg.normalized()

	return task.Go(func() (T, error) {
		var zero T
		var collected []error

		timer := time.NewTimer(cfg.Delay)
		if !timer.Stop() {
			<-timer.C
		}

		for remaining := cfg.Times; ; remaining-- {
			if remaining <= 0 {
				if cfg.Metrics != nil {
					cfg.Metrics.RetryExhausted.WithLabelValues(cfg.Name).Inc()
				}
				return zero, &ExhaustedError{Prefix: cfg.ErrorPrefix, Errs: collected}
			}

			if cfg.Metrics != nil {
				cfg.Metrics.RetryAttempts.WithLabelValues(cfg.Name).Inc()
			}

			v, err := fn(ctx, remaining)
			if err == nil {
				if cfg.Metrics != nil {
					cfg.Metrics.RetrySuccesses.WithLabelValues(cfg.Name).Inc()
				}
				return v, nil
			}

			collected = append(collected, err)
			if cfg.Metrics != nil {
				cfg.Metrics.RetryFailures.WithLabelValues(cfg.Name).Inc()
			}
			if cfg.PrintErrors {
				task.Emit(fmt.Sprintf("%s%v", cfg.ErrorPrefix, err), cfg.Printer)
			}

			// no wait after the final failed attempt
			if remaining == 1 {
				continue
			}

			waitStart := time.Now()
			timer.Reset(cfg.Delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return zero, ctx.Err()
			case <-timer.C:
			}
			if cfg.Metrics != nil {
				cfg.Metrics.RetryWaitTime.WithLabelValues(cfg.Name).Observe(time.Since(waitStart).Seconds())
			}
		}
	})
}
