package removal

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for removal operations.
var (
	tracer = otel.Tracer("mazepath.removal")
	meter  = otel.Meter("mazepath.removal")
)

// Metrics for removal operations.
var (
	searchesTotal   metric.Int64Counter
	candidatesFound metric.Int64Histogram
	runLatency      metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchesTotal, err = meter.Int64Counter(
			"removal_searches_total",
			metric.WithDescription("Total number of bounded searches run by the enumerator"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		candidatesFound, err = meter.Int64Histogram(
			"removal_candidates",
			metric.WithDescription("Number of candidate walls surviving the approach prune"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runLatency, err = meter.Float64Histogram(
			"removal_duration_seconds",
			metric.WithDescription("Duration of enumerator and disconnection runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startSpan creates a span for a removal operation.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// recordRun records metrics for one enumerator or disconnection run.
func recordRun(ctx context.Context, op string, duration time.Duration, searches, candidates int) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("op", op))
	searchesTotal.Add(ctx, int64(searches), attrs)
	runLatency.Record(ctx, duration.Seconds(), attrs)
	if candidates >= 0 {
		candidatesFound.Record(ctx, int64(candidates), attrs)
	}
}
