package lint

import (
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/parse"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/providers/observability"
)

// Option configures a Linter.
type Option func(*config)

type config struct {
	vocabulary    scene.Vocabulary
	allowFallback bool
	strict        bool
	observer      observability.Provider
	repairer      parse.Repairer
	concurrency   int
}

func defaultConfig() config {
	return config{
		allowFallback: true,
		repairer:      parse.Default,
	}
}

// WithVocabulary replaces all three vocabulary lists at once.
func WithVocabulary(vocabulary scene.Vocabulary) Option {
	return func(c *config) {
		c.vocabulary = scene.Vocabulary{
			Expressions: append([]string(nil), vocabulary.Expressions...),
			Backgrounds: append([]string(nil), vocabulary.Backgrounds...),
			Characters:  append([]string(nil), vocabulary.Characters...),
		}
	}
}

// WithExpressions sets the valid expression labels. Resolved expressions are
// mapped onto this list whenever an exact, synonym or substring match exists.
func WithExpressions(expressions ...string) Option {
	return func(c *config) {
		c.vocabulary.Expressions = append([]string(nil), expressions...)
	}
}

// WithBackgrounds sets the valid background identifiers.
func WithBackgrounds(backgrounds ...string) Option {
	return func(c *config) {
		c.vocabulary.Backgrounds = append([]string(nil), backgrounds...)
	}
}

// WithCharacters sets the known character names.
func WithCharacters(characters ...string) Option {
	return func(c *config) {
		c.vocabulary.Characters = append([]string(nil), characters...)
	}
}

// WithFallback enables or disables prose mining when no JSON survives.
// It is enabled by default.
func WithFallback(enabled bool) Option {
	return func(c *config) {
		c.allowFallback = enabled
	}
}

// WithStrict records the strict flag. The pipeline always degrades
// gracefully; the flag is reported by [Linter.Strict] and has no other effect.
func WithStrict(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithObserver reports spans, metrics and logs to observer. Without it the
// linter falls back to an observer found in the call's context, if any.
func WithObserver(observer observability.Provider) Option {
	return func(c *config) {
		c.observer = observer
	}
}

// WithRepairer replaces the syntax-repair collaborator. A nil repairer
// restores the default.
func WithRepairer(repairer parse.Repairer) Option {
	return func(c *config) {
		if repairer == nil {
			repairer = parse.Default
		}
		c.repairer = repairer
	}
}

// WithConcurrency bounds how many responses LintMany processes at once.
// Zero or negative means one goroutine per CPU.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}
