package lint

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/overview"
)

// LintMany lints every response, at most WithConcurrency at a time, and
// returns the results in input order with a batch summary.
//
// Items are independent; one item's content never affects another. If ctx
// is cancelled, items not yet started are left nil and ctx's error is
// returned. The summary is taken from the overview.Stats carried by ctx when
// there is one, so successive batches accumulate into it.
func (l *Linter) LintMany(ctx context.Context, responses []string) ([]*Result, overview.Summary, error) {
	return l.lintAll(ctx, len(responses), func(ctx context.Context, i int) *Result {
		return l.Lint(ctx, responses[i])
	})
}

// LintValues is LintMany for decoded JSON values. See LintValue.
func (l *Linter) LintValues(ctx context.Context, items []any) ([]*Result, overview.Summary, error) {
	return l.lintAll(ctx, len(items), func(ctx context.Context, i int) *Result {
		return l.LintValue(ctx, items[i])
	})
}

func (l *Linter) lintAll(ctx context.Context, n int, lintOne func(context.Context, int) *Result) ([]*Result, overview.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	stats := overview.FromContext(&ctx)
	stats.Start()

	ctx, endBatch := l.observeBatch(ctx, n)

	results := make([]*Result, n)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(l.limit())
	for i := range n {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[i] = lintOne(groupCtx, i)
			return nil
		})
	}
	err := group.Wait()

	succeeded := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		stats.Add(r.Outcome())
		if r.Succeeded() {
			succeeded++
		}
	}
	stats.End()
	endBatch(succeeded)

	return results, stats.Summary(), err
}

func (l *Linter) limit() int {
	if l.cfg.concurrency > 0 {
		return l.cfg.concurrency
	}
	return runtime.GOMAXPROCS(0)
}
