package geodes

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/pdrpinto/geodes"

// Package-level meter for search operations.
var meter = otel.Meter(instrumentationName)

var (
	frontierStates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "geodes_frontier_states",
		Help:    "Frontier size after each simulated minute",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
	prunedStates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geodes_pruned_states_total",
		Help: "States discarded by the pruning policy",
	})
)

var (
	searchLatency metric.Float64Histogram
	searchTotal   metric.Int64Counter
	searchYield   metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the otel instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"geodes_search_duration_seconds",
			metric.WithDescription("Duration of one blueprint search"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"geodes_search_total",
			metric.WithDescription("Total number of blueprint searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchYield, err = meter.Int64Histogram(
			"geodes_search_yield",
			metric.WithDescription("Geode yield reported per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func observeFrontier(size int) {
	frontierStates.Observe(float64(size))
}

func addPruned(n int) {
	if n > 0 {
		prunedStates.Add(float64(n))
	}
}

// recordSearchMetrics records metrics for a finished search.
func recordSearchMetrics(ctx context.Context, horizon int, duration time.Duration, yield uint32, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Int("horizon", horizon),
		attribute.Bool("success", success),
	)

	searchLatency.Record(ctx, duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	if success {
		searchYield.Record(ctx, int64(yield), metric.WithAttributes(attribute.Int("horizon", horizon)))
	}
}
