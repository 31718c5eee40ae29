// Package lint recovers a structured visual-novel scene from free-form LLM
// output.
//
// [Linter.Lint] drives the recovery pipeline in a fixed order:
//
//	preprocess -> extract -> repair -> schema -> values
//
// and falls back to mining the prose directly when no usable JSON survives.
// It never returns an error for bad content. Every outcome is a [Result]
// whose Scene is nil on failure, with the reason recorded in Warnings and
// every change recorded in Fixes.
//
// A Linter is immutable after [New] and safe for concurrent use.
//
//	linter := lint.New(
//	    lint.WithExpressions("happy", "sad", "angry"),
//	    lint.WithObserver(slogobs.New()),
//	)
//	result := linter.Lint(ctx, response)
//	if result.Scene != nil {
//	    render(result.Scene)
//	}
//
// The package-level helpers [LintSceneResponse], [HasSceneData],
// [StripSceneJSON] and [DiagnoseResponse] cover one-off calls.
package lint
