// Package observability provides OpenTelemetry tracing and metrics for
// instrumented sequences.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("ingest"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanPull)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("ingest"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewPullMetrics(observability.Meter("ingest"))
//	metrics.RecordPull(ctx, "decode", observability.StatusOK, duration)
package observability
