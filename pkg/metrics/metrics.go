// Package metrics provides Prometheus instrumentation for taskflow
// combinators.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for taskflow components.
type Registry struct {
	// Retry metrics
	RetryAttempts  *prometheus.CounterVec
	RetryFailures  *prometheus.CounterVec
	RetrySuccesses *prometheus.CounterVec
	RetryExhausted *prometheus.CounterVec
	RetryWaitTime  *prometheus.HistogramVec

	// Race metrics
	RaceWins      *prometheus.CounterVec
	RaceAllFailed *prometheus.CounterVec
}

// DefaultRegistry is the registry used when a component is instrumented
// without an explicit one. Built lazily so that programs that never opt into
// metrics register nothing on the global registerer.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry bound to prometheus.DefaultRegisterer.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		RetryAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskflow",
				Subsystem: "retry",
				Name:      "attempts_total",
				Help:      "Total number of retry attempts started",
			},
			[]string{"name"},
		),

		RetryFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskflow",
				Subsystem: "retry",
				Name:      "failures_total",
				Help:      "Total number of failed attempts",
			},
			[]string{"name"},
		),

		RetrySuccesses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskflow",
				Subsystem: "retry",
				Name:      "successes_total",
				Help:      "Total number of retry runs that settled successfully",
			},
			[]string{"name"},
		),

		RetryExhausted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskflow",
				Subsystem: "retry",
				Name:      "exhausted_total",
				Help:      "Total number of retry runs whose attempt budget ran out",
			},
			[]string{"name"},
		),

		RetryWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "taskflow",
				Subsystem: "retry",
				Name:      "wait_seconds",
				Help:      "Time spent waiting between failed attempts",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"name"},
		),

		RaceWins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskflow",
				Subsystem: "race",
				Name:      "wins_total",
				Help:      "Total number of races settled by a successful participant",
			},
			[]string{"name"},
		),

		RaceAllFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskflow",
				Subsystem: "race",
				Name:      "all_failed_total",
				Help:      "Total number of races where every participant failed",
			},
			[]string{"name"},
		),
	}
}
