// Package trace records what the axscript driver is doing: which command
// runs, how long loading, tokenizing and parsing take, and which files were
// recovered from syntax errors.
//
// # Usage
//
//	axscript check --trace=- --trace-level=detail scripts/
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: formats each event into a buffered writer (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits driver and pass spans (load, tokenize, parse),
// LevelDetail adds per-file spans, LevelDebug adds a point event for every
// reported diagnostic.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.SpanFromContext(ctx)).
//		WithPath(file.Path)
//	defer span.End("")
package trace
