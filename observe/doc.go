// Package observe provides observability primitives for the computation
// engine.
//
// It is a pure instrumentation library: no computation, no transport, no I/O
// beyond exporter setup. Consumers wire the observer's meter, tracer, and
// logger into the engine.
package observe
