package lint

import (
	"context"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/providers/observability"
)

// observation carries the provider and span of one lint call. A nil
// *observation means reporting is disabled; every method is a no-op then.
type observation struct {
	provider observability.Provider
	span     observability.Span
	timer    *utils.Timer
}

// resolveObserver prefers the configured observer over one found in ctx.
func (l *Linter) resolveObserver(ctx context.Context) observability.Provider {
	if l.cfg.observer != nil {
		return l.cfg.observer
	}
	return observability.ObserverFromContext(ctx)
}

// observed wraps body in a scene.lint span and records the final metrics.
func (l *Linter) observed(ctx context.Context, response string, body func(context.Context, *observation) *Result) *Result {
	if ctx == nil {
		ctx = context.Background()
	}
	provider := l.resolveObserver(ctx)
	if provider == nil {
		return body(ctx, nil)
	}

	length := len([]rune(response))
	obs := &observation{provider: provider, timer: utils.NewTimer()}
	ctx, obs.span = provider.StartSpan(ctx, observability.SpanLint,
		observability.Int(observability.AttrResponseLength, length))
	ctx = observability.ContextWithSpan(ctx, obs.span)
	ctx = observability.ContextWithObserver(ctx, provider)

	provider.Debug(ctx, "scene lint started",
		observability.Int(observability.AttrResponseLength, length),
		observability.String(observability.AttrPreview, utils.Preview(response)),
	)

	result := body(ctx, obs)
	obs.finish(ctx, result)
	return result
}

func (o *observation) stage(name string, attrs ...observability.Attribute) {
	if o == nil {
		return
	}
	o.span.AddEvent(observability.EventStage+name, attrs...)
}

// stageDone records a completed stage and its fix count.
func (o *observation) stageDone(ctx context.Context, name string, fixes, warnings int) {
	if o == nil {
		return
	}
	o.stage(name,
		observability.Int(observability.AttrFixes, fixes),
		observability.Int(observability.AttrWarnings, warnings))
	if fixes > 0 {
		o.provider.Counter(observability.MetricFixes).Add(ctx, int64(fixes),
			observability.String(observability.AttrStage, name))
	}
}

func (o *observation) stageError(name, reason string) {
	if o == nil {
		return
	}
	o.stage(name, observability.String(observability.AttrError, reason))
}

func (o *observation) finish(ctx context.Context, r *Result) {
	elapsed := o.timer.Stop()

	attrs := []observability.Attribute{
		observability.String(observability.AttrSource, r.Source),
		observability.Int(observability.AttrConfidence, r.Confidence),
		observability.Bool(observability.AttrFallback, r.Diagnostics.FallbackUsed),
		observability.Int(observability.AttrFixes, len(r.Fixes)),
		observability.Int(observability.AttrWarnings, len(r.Warnings)),
	}
	if r.Scene != nil {
		attrs = append(attrs,
			observability.Int(observability.AttrCharacters, len(r.Scene.Characters)),
			observability.Int(observability.AttrChoices, len(r.Scene.Choices)))
	}
	o.span.SetAttributes(attrs...)

	status := "ok"
	if !r.Succeeded() {
		status = "failed"
	}
	o.provider.Counter(observability.MetricRequests).Add(ctx, 1,
		observability.String(observability.AttrStatus, status))
	o.provider.Histogram(observability.MetricConfidence).Record(ctx, float64(r.Confidence))
	o.provider.Histogram(observability.MetricDuration).Record(ctx, float64(elapsed.Microseconds())/1000)
	if r.Diagnostics.FallbackUsed {
		o.provider.Counter(observability.MetricFallbacks).Add(ctx, 1)
	}

	if r.Succeeded() {
		o.span.SetStatus(observability.StatusOK, "scene recovered")
		o.provider.Info(ctx, "scene linted", append(attrs,
			observability.Duration(observability.AttrDuration, elapsed))...)
	} else {
		o.provider.Counter(observability.MetricFailures).Add(ctx, 1)
		o.span.SetStatus(observability.StatusError, "no scene recovered")
		o.provider.Warn(ctx, "scene lint failed", append(attrs,
			observability.StringSlice(observability.AttrWarningList, r.Warnings),
			observability.Duration(observability.AttrDuration, elapsed))...)
	}
	o.span.End()
}

// observeBatch opens a scene.lint.batch span around LintMany. The returned
// function ends it.
func (l *Linter) observeBatch(ctx context.Context, size int) (context.Context, func(succeeded int)) {
	provider := l.resolveObserver(ctx)
	if provider == nil {
		return ctx, func(int) {}
	}

	timer := utils.NewTimer()
	ctx, span := provider.StartSpan(ctx, observability.SpanBatch,
		observability.Int(observability.AttrBatchSize, size))
	ctx = observability.ContextWithSpan(ctx, span)
	ctx = observability.ContextWithObserver(ctx, provider)

	return ctx, func(succeeded int) {
		elapsed := timer.Stop()
		span.SetAttributes(observability.Int(observability.AttrBatchSucceeded, succeeded))
		span.SetStatus(observability.StatusOK, "")
		span.End()
		provider.Info(ctx, "scene batch linted",
			observability.Int(observability.AttrBatchSize, size),
			observability.Int(observability.AttrBatchSucceeded, succeeded),
			observability.Duration(observability.AttrDuration, elapsed),
		)
	}
}
