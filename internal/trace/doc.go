// Package trace records pipeline spans for the quill interpreter.
//
// Tracing is opt-in via the CLI:
//
//	quill run --trace=phase prog.ql
//	quill check --trace=detail --trace-output=trace.ndjson src/
//	quill run --trace=debug --trace-ring-size=256 prog.ql
//
// With a ring size the events stay in memory and are written out only when
// the command fails.
//
// A Tracer travels through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// Levels gate scopes: phase emits driver and pass boundaries, detail adds
// per-file events, debug adds one span per statement.
package trace
