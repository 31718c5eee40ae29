// Package overview aggregates lint outcomes across a batch of responses.
//
// A [Stats] accumulates [Outcome] values and produces a [Summary] with the
// success rate, average confidence, fallback count, and histograms of result
// sources and fix types. A Stats can ride along a [context.Context] through
// [FromContext] so that several batches feed one summary.
package overview
