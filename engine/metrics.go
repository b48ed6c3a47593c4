package engine

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Result sources for metric and span attributes.
const (
	sourceCache      = "cache"
	sourceClosedForm = "closedform"
	sourceEvaluate   = "evaluate"
)

// engineMetrics records computation metrics.
type engineMetrics struct {
	totalCount     metric.Int64Counter
	errorCount     metric.Int64Counter
	durationHist   metric.Float64Histogram
	cacheHits      metric.Int64Counter
	cacheMisses    metric.Int64Counter
	closedFormHits metric.Int64Counter
	fullEvals      metric.Int64Counter
}

// newEngineMetrics creates the instrument set on the given meter.
func newEngineMetrics(meter metric.Meter) (*engineMetrics, error) {
	totalCount, err := meter.Int64Counter(
		"ackermann.compute.total",
		metric.WithDescription("Total number of computations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"ackermann.compute.errors",
		metric.WithDescription("Total number of computation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"ackermann.compute.duration_ms",
		metric.WithDescription("Computation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"ackermann.cache.hits",
		metric.WithDescription("Computations answered from the result cache"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter(
		"ackermann.cache.misses",
		metric.WithDescription("Cache lookups that found no entry"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	closedFormHits, err := meter.Int64Counter(
		"ackermann.closedform.hits",
		metric.WithDescription("Computations answered by closed form"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	fullEvals, err := meter.Int64Counter(
		"ackermann.evaluate.full",
		metric.WithDescription("Computations requiring full evaluation"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	return &engineMetrics{
		totalCount:     totalCount,
		errorCount:     errorCount,
		durationHist:   durationHist,
		cacheHits:      cacheHits,
		cacheMisses:    cacheMisses,
		closedFormHits: closedFormHits,
		fullEvals:      fullEvals,
	}, nil
}

// recordCompute records a finished computation with its answering source.
func (m *engineMetrics) recordCompute(ctx context.Context, source string, duration time.Duration) {
	opt := metric.WithAttributes(attribute.String("ackermann.source", source))
	m.totalCount.Add(ctx, 1, opt)
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

func (m *engineMetrics) recordError(ctx context.Context) {
	m.errorCount.Add(ctx, 1)
}

func (m *engineMetrics) recordCacheHit(ctx context.Context) {
	m.cacheHits.Add(ctx, 1)
}

func (m *engineMetrics) recordCacheMiss(ctx context.Context) {
	m.cacheMisses.Add(ctx, 1)
}

func (m *engineMetrics) recordClosedFormHit(ctx context.Context) {
	m.closedFormHits.Add(ctx, 1)
}

func (m *engineMetrics) recordFullEvaluation(ctx context.Context) {
	m.fullEvals.Add(ctx, 1)
}
