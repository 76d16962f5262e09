// Package asynciter provides lazy, pull-based sequences whose pulls block on
// I/O or other goroutines.
//
// A pull is Next(ctx), which returns (value, true, nil) for a value,
// (zero, false, nil) once exhausted and (zero, false, err) on failure. Errors
// from sources and callbacks surface at the pull that hit them; the iterator
// is only fused on exhaustion, so a caller may pull again after an error.
//
//	src := asynciter.FromSlice([]string{"a.json", "b.json"})
//	docs := asynciter.Map(src, func(ctx context.Context, path string) (Doc, error) {
//	    return load(ctx, path)
//	})
//	all, err := docs.Collect(ctx)
//
// Zip and Eq issue both upstream pulls concurrently and pair the results in
// order. Buffer adds an ordered prefetch goroutine between stages and Batch
// groups values by size or time.
//
// # Instrumentation
//
// Middleware wraps a Source with cross-cutting behaviour. WithLogging,
// WithTracing and WithMetrics mirror the provider middleware in the rest of the
// stack; Instrument wires them, together with Buffer, from a Config:
//
//	it, err := asynciter.Instrument(src, cfg, asynciter.Deps{Logger: log, Metrics: m})
package asynciter
