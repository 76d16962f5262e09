package asynciter

import (
	"context"
	"time"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/resilience"
)

// Middleware transforms a Source by wrapping it.
// The returned source typically delegates to the original while
// adding cross-cutting behavior (logging, metrics, tracing, etc.).
type Middleware[T any] func(Source[T]) Source[T]

// Chain composes multiple middlewares into one. The first middleware is
// outermost: it sees each pull first and its result last.
//
// Chain(a, b, c)(src) is equivalent to a(b(c(src))).
func Chain[T any](middlewares ...Middleware[T]) Middleware[T] {
	return func(inner Source[T]) Source[T] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// Use wraps src with the given middlewares.
func Use[T any](src Source[T], middlewares ...Middleware[T]) *Iterator[T] {
	if len(middlewares) == 0 {
		return From(src)
	}
	return From(Chain(middlewares...)(src))
}

// WithLogging returns a Middleware that logs each pull under the given stage
// name. Successful pulls and exhaustion are logged at debug, failures at error.
func WithLogging[T any](log *logger.Logger, stage string) Middleware[T] {
	return func(inner Source[T]) Source[T] {
		return &loggingSource[T]{inner: inner, log: log, stage: stage}
	}
}

type loggingSource[T any] struct {
	inner Source[T]
	log   *logger.Logger
	stage string
	index int
}

func (l *loggingSource[T]) Next(ctx context.Context) (T, bool, error) {
	start := time.Now()
	val, ok, err := l.inner.Next(ctx)
	duration := time.Since(start)

	if err != nil {
		fields := logger.ErrorFields(l.stage, err)
		fields[logger.FieldIndex] = l.index
		fields[logger.FieldDuration] = duration.Milliseconds()
		l.log.Error("pull failed", fields)
		return val, ok, err
	}
	if !l.log.DebugEnabled() {
		if ok {
			l.index++
		}
		return val, ok, err
	}

	fields := logger.DurationFields(l.stage, duration)
	fields[logger.FieldIndex] = l.index
	if ok {
		l.log.Debug("pull ok", fields)
		l.index++
	} else {
		fields[logger.FieldDone] = true
		l.log.Debug("sequence exhausted", fields)
	}
	return val, ok, err
}

// WithTracing returns a Middleware that creates an OpenTelemetry span around
// each pull using the observability package.
func WithTracing[T any](stage string) Middleware[T] {
	return func(inner Source[T]) Source[T] {
		return &tracingSource[T]{inner: inner, stage: stage}
	}
}

type tracingSource[T any] struct {
	inner Source[T]
	stage string
	index int
}

func (t *tracingSource[T]) Next(ctx context.Context) (T, bool, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanPull)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrStage, t.stage)
	observability.SetSpanAttribute(ctx, observability.AttrIndex, t.index)

	val, ok, err := t.inner.Next(ctx)
	switch {
	case err != nil:
		observability.SetSpanError(ctx, err)
	case ok:
		t.index++
	default:
		observability.SetSpanAttribute(ctx, observability.AttrDone, true)
	}
	return val, ok, err
}

// WithMetrics returns a Middleware that records pull count, duration and
// errors on the given instruments.
func WithMetrics[T any](metrics *observability.PullMetrics, stage string) Middleware[T] {
	return func(inner Source[T]) Source[T] {
		return &metricsSource[T]{inner: inner, metrics: metrics, stage: stage}
	}
}

type metricsSource[T any] struct {
	inner   Source[T]
	metrics *observability.PullMetrics
	stage   string
}

func (m *metricsSource[T]) Next(ctx context.Context) (T, bool, error) {
	m.metrics.RecordPullStart(ctx, m.stage)
	start := time.Now()
	val, ok, err := m.inner.Next(ctx)
	duration := time.Since(start)

	status := observability.StatusOK
	switch {
	case err != nil:
		status = observability.StatusError
		m.metrics.RecordError(ctx, m.stage, err)
	case !ok:
		status = observability.StatusDone
	}
	m.metrics.RecordPull(ctx, m.stage, status, duration)

	return val, ok, err
}

// WithRateLimit returns a Middleware that takes a token from limiter before
// every pull.
func WithRateLimit[T any](limiter *resilience.RateLimiter) Middleware[T] {
	return func(inner Source[T]) Source[T] {
		return SourceFunc[T](func(ctx context.Context) (T, bool, error) {
			if err := limiter.Wait(ctx); err != nil {
				var zero T
				return zero, false, err
			}
			return inner.Next(ctx)
		})
	}
}
