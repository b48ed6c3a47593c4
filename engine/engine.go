package engine

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/ackermann"
	"github.com/jonwraymond/ackermann/cache"
	"github.com/jonwraymond/ackermann/closedform"
	"github.com/jonwraymond/ackermann/observe"
)

// Sentinel errors for engine operations.
var (
	ErrNilEngine = errors.New("engine: engine is nil")
)

// Config holds everything a Compute call needs. It is threaded through the
// engine explicitly; there is no package-level state.
type Config struct {
	// Strategy selects the evaluation path for full computation. Required:
	// the zero value is rejected by New.
	Strategy ackermann.Strategy

	// Optimize enables the cache lookup and closed-form fast path ahead of
	// full evaluation. Enabled in DefaultConfig.
	Optimize bool

	// Store persists computed results across invocations. Nil disables
	// persistence; results are then recomputed every time.
	Store cache.Store

	// Keyer derives cache keys from input pairs. Nil selects
	// cache.NewDefaultKeyer.
	Keyer cache.Keyer

	// Meter records computation metrics. Nil disables metrics.
	Meter metric.Meter

	// Tracer records a span per computation. Nil disables tracing.
	Tracer trace.Tracer

	// Logger receives structured engine logs. Nil discards them.
	Logger observe.Logger
}

// DefaultConfig returns the default engine configuration: iterative
// strategy, optimization on, no persistence, no telemetry.
func DefaultConfig() Config {
	return Config{
		Strategy: ackermann.Iterative,
		Optimize: true,
	}
}

// Engine computes Ackermann values through the cache → closed form → full
// evaluation pipeline.
//
// Contract:
// - Concurrency: safe for concurrent use; concurrent Compute calls for the
//   same pair are collapsed into one computation.
// - Context: the context is passed through to the store and recorded on
//   telemetry; the computation itself runs to completion once started.
type Engine struct {
	cfg     Config
	keyer   cache.Keyer
	logger  observe.Logger
	tracer  trace.Tracer
	metrics *engineMetrics
	group   singleflight.Group
}

// New creates an Engine from the configuration. The strategy must be set
// explicitly; an unset or unknown strategy is a configuration error.
func New(cfg Config) (*Engine, error) {
	if !cfg.Strategy.Valid() {
		return nil, fmt.Errorf("engine: %w: %d", ackermann.ErrUnknownStrategy, int(cfg.Strategy))
	}

	if cfg.Keyer == nil {
		cfg.Keyer = cache.NewDefaultKeyer()
	}
	if cfg.Logger == nil {
		cfg.Logger = observe.NopLogger()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = tracenoop.NewTracerProvider().Tracer("noop")
	}
	meter := cfg.Meter
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter("noop")
	}

	metrics, err := newEngineMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("engine: create metrics: %w", err)
	}

	return &Engine{
		cfg:     cfg,
		keyer:   cfg.Keyer,
		logger:  cfg.Logger,
		tracer:  cfg.Tracer,
		metrics: metrics,
	}, nil
}

// Compute returns A(m, n).
//
// Inputs must be non-negative; the result is a fresh big.Int owned by the
// caller. Under the recursive strategy, inputs with m >= 4 and n > 0
// exhaust the call stack and terminate the process — that failure cannot
// propagate as an error.
func (e *Engine) Compute(ctx context.Context, m int, n *big.Int) (*big.Int, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	if n == nil {
		return nil, ackermann.ErrNilOperand
	}
	if m < 0 || n.Sign() < 0 {
		return nil, ackermann.ErrNegativeInput
	}

	pair := cache.NewPair(m, n)
	key, err := e.keyer.Key(pair)
	if err != nil {
		return nil, fmt.Errorf("engine: derive key for %s: %w", pair, err)
	}

	// The cache key doubles as the singleflight key: identical concurrent
	// callers share one computation and one store write.
	v, err, _ := e.group.Do(key, func() (any, error) {
		return e.compute(ctx, pair, key)
	})
	if err != nil {
		return nil, err
	}
	// Each caller gets a private copy.
	return new(big.Int).Set(v.(*big.Int)), nil
}

// compute runs the linear state machine for one pair.
func (e *Engine) compute(ctx context.Context, pair cache.Pair, key string) (*big.Int, error) {
	start := time.Now()

	ctx, span := e.tracer.Start(ctx, "ackermann.compute", trace.WithAttributes(
		attribute.Int("ackermann.m", pair.M()),
		attribute.String("ackermann.n", pair.N().String()),
		attribute.String("ackermann.strategy", e.cfg.Strategy.String()),
		attribute.Bool("ackermann.optimize", e.cfg.Optimize),
	))
	defer span.End()

	// CacheCheck: a hit is already stored, so it skips straight to Done.
	if e.cfg.Optimize && e.cfg.Store != nil {
		if v, ok := e.cfg.Store.Lookup(ctx, key); ok {
			e.metrics.recordCacheHit(ctx)
			e.finish(ctx, span, sourceCache, start)
			e.logger.Debug(ctx, "cache hit",
				observe.Field{Key: "key", Value: key})
			return v, nil
		}
		e.metrics.recordCacheMiss(ctx)
	}

	// OptimizeCheck: closed form for m <= 5.
	var result *big.Int
	source := sourceEvaluate
	if e.cfg.Optimize {
		v, err := closedform.Try(pair.M(), pair.N())
		switch {
		case err == nil:
			result = v
			source = sourceClosedForm
			e.metrics.recordClosedFormHit(ctx)
		case errors.Is(err, closedform.ErrNoClosedForm):
			// Expected for m > 5; fall through to full evaluation.
		default:
			e.metrics.recordError(ctx)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("engine: closed form for %s: %w", pair, err)
		}
	}

	// FullEvaluate with the configured strategy.
	if result == nil {
		v, err := ackermann.Evaluate(pair.M(), pair.N(), e.cfg.Strategy)
		if err != nil {
			e.metrics.recordError(ctx)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("engine: evaluate %s: %w", pair, err)
		}
		result = v
		e.metrics.recordFullEvaluation(ctx)
	}

	// StoreAndReturn. A failed write degrades to computing without
	// persistence; the result is still correct.
	if e.cfg.Store != nil {
		if err := e.cfg.Store.Put(ctx, key, result); err != nil {
			e.logger.Warn(ctx, "result not persisted",
				observe.Field{Key: "key", Value: key},
				observe.Field{Key: "error", Value: err.Error()})
		}
	}

	e.finish(ctx, span, source, start)
	e.logger.Info(ctx, "computed",
		observe.Field{Key: "pair", Value: pair.String()},
		observe.Field{Key: "source", Value: source},
		observe.Field{Key: "digits", Value: len(result.String())})
	return result, nil
}

func (e *Engine) finish(ctx context.Context, span trace.Span, source string, start time.Time) {
	span.SetAttributes(attribute.String("ackermann.source", source))
	span.SetStatus(codes.Ok, "")
	e.metrics.recordCompute(ctx, source, time.Since(start))
}
