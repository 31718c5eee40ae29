// Package observability defines the tracing, metrics and logging interfaces
// the scene linter reports through, along with the attribute keys, span names
// and metric names it uses.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into one injectable
// dependency. A nil Provider is valid everywhere a linter accepts one and
// disables reporting. An active Provider and [Span] travel through a
// [context.Context] via [ContextWithObserver] and [ContextWithSpan] and are
// read back with [ObserverFromContext] and [SpanFromContext].
package observability
