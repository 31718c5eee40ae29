package lint

import (
	"context"
	"fmt"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/extract"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/narrative"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/preprocess"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/schema"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/shape"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/values"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/providers/observability"
)

// Confidence bounds.
const (
	// ConfidenceFloor is the minimum confidence of a JSON-path result that
	// carries scene data, however many fixes it needed.
	ConfidenceFloor = 50
	// FixPenalty is subtracted from the extractor's confidence per fix.
	FixPenalty = 2
)

// Linter runs the recovery pipeline with a fixed configuration.
type Linter struct {
	cfg config
}

// New builds a Linter. With no options it has no vocabulary, fallback
// enabled, the jsonrepair-backed repairer and no observer.
func New(opts ...Option) *Linter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Linter{cfg: cfg}
}

// Strict reports the value passed to WithStrict.
func (l *Linter) Strict() bool {
	return l.cfg.strict
}

// AllowsFallback reports whether prose mining is enabled.
func (l *Linter) AllowsFallback() bool {
	return l.cfg.allowFallback
}

// Vocabulary returns a copy of the configured vocabulary.
func (l *Linter) Vocabulary() scene.Vocabulary {
	v := l.cfg.vocabulary
	return scene.Vocabulary{
		Expressions: append([]string(nil), v.Expressions...),
		Backgrounds: append([]string(nil), v.Backgrounds...),
		Characters:  append([]string(nil), v.Characters...),
	}
}

// Lint recovers a scene from response. It never panics on malformed content
// and never returns nil.
func (l *Linter) Lint(ctx context.Context, response string) *Result {
	return l.observed(ctx, response, func(ctx context.Context, obs *observation) *Result {
		return l.pipeline(ctx, obs, response)
	})
}

// LintValue lints a decoded JSON value, typically one element of a batch.
// Strings and byte slices go through Lint. Null and every other type yield
// an empty result with a warning.
func (l *Linter) LintValue(ctx context.Context, v any) *Result {
	switch x := v.(type) {
	case string:
		return l.Lint(ctx, x)
	case []byte:
		return l.Lint(ctx, string(x))
	}
	return l.observed(ctx, "", func(context.Context, *observation) *Result {
		result := newResult("")
		if v == nil {
			result.warn("Response is null")
		} else {
			result.warn(fmt.Sprintf("Response must be a string, got %s", shape.TypeName(v)))
		}
		return result
	})
}

// pipeline is the state machine: each stage either hands over to the next
// or ends in the fallback branch, which never re-enters the forward path.
func (l *Linter) pipeline(ctx context.Context, obs *observation, response string) *Result {
	result := newResult(response)
	if strings.TrimSpace(response) == "" {
		result.warn("Empty response")
		return result
	}

	text := preprocess.Clean(response)
	obs.stage(observability.StagePreprocess,
		observability.Int(observability.AttrResponseLength, len([]rune(text))))

	ex := extract.Best(text)
	result.Narrative = ex.Narrative
	result.Diagnostics.ExtractionAttempts = ex.Attempts
	obs.stage(observability.StageExtract,
		observability.Int(observability.AttrCandidates, ex.Attempts),
		observability.String(observability.AttrSource, ex.Source))
	if !ex.Found() {
		return l.fallback(obs, result, response, "No JSON block found in response")
	}
	result.Source = ex.Source
	result.fix(ex.Fixes...)

	repaired, err := l.cfg.repairer.Repair(ex.RawJSON)
	if err != nil || repaired == nil {
		reason := "JSON repair failed"
		if err != nil {
			reason = fmt.Sprintf("JSON repair failed: %v", err)
		}
		obs.stageError(observability.StageRepair, reason)
		return l.fallback(obs, result, response, reason)
	}
	result.fix(repaired.Fixes...)
	result.Diagnostics.SyntaxFixesApplied = len(repaired.Fixes)
	obs.stageDone(ctx, observability.StageRepair, len(repaired.Fixes), 0)

	shaped, err := schema.Normalize(repaired.Value)
	if err != nil {
		reason := fmt.Sprintf("Schema normalization failed: %v", err)
		obs.stageError(observability.StageSchema, reason)
		return l.fallback(obs, result, response, reason)
	}
	result.fix(shaped.Fixes...)
	result.warn(shaped.Warnings...)
	result.Diagnostics.SchemaFixesApplied = len(shaped.Fixes)
	obs.stageDone(ctx, observability.StageSchema, len(shaped.Fixes), len(shaped.Warnings))
	if shaped.Result.IsEmpty() {
		reason := "Schema normalization failed: no scene, characters or choices in parsed JSON"
		obs.stageError(observability.StageSchema, reason)
		return l.fallback(obs, result, response, reason)
	}

	normalized := values.Normalize(shaped.Result, l.cfg.vocabulary)
	result.fix(normalized.Fixes...)
	result.warn(normalized.Warnings...)
	result.Diagnostics.ValueNormalizationsApplied = len(normalized.Fixes)
	obs.stageDone(ctx, observability.StageValues, len(normalized.Fixes), len(normalized.Warnings))

	if normalized.Result.IsEmpty() {
		reason := "Value normalization left no scene, characters or choices"
		obs.stageError(observability.StageValues, reason)
		return l.fallback(obs, result, response, reason)
	}

	result.Scene = normalized.Result
	result.Confidence = finalConfidence(ex.Confidence, len(result.Fixes), !result.Scene.IsEmpty())
	return result
}

// fallback is the terminal branch. reason is always recorded; the mined
// result replaces nothing unless its confidence exceeds FallbackThreshold.
func (l *Linter) fallback(obs *observation, result *Result, original, reason string) *Result {
	result.warn(reason)
	if !l.cfg.allowFallback {
		return result
	}

	mined := narrative.Extract(original, l.cfg.vocabulary)
	obs.stage(observability.StageFallback,
		observability.Int(observability.AttrConfidence, mined.Confidence),
		observability.Int(observability.AttrFixes, len(mined.Extractions)))

	switch {
	case mined.Result == nil:
		result.warn("Fallback text extraction found no scene data")
	case mined.Confidence <= FallbackThreshold:
		result.warn(fmt.Sprintf("Fallback text extraction confidence too low (%d <= %d)", mined.Confidence, FallbackThreshold))
	default:
		result.Scene = mined.Result
		result.Source = SourceFallback
		result.Confidence = clamp(mined.Confidence)
		result.Diagnostics.FallbackUsed = true
		result.fix(mined.Extractions...)
		result.warn(fmt.Sprintf("Used fallback text extraction (confidence %d)", mined.Confidence))
	}
	return result
}

// finalConfidence subtracts FixPenalty per fix and floors at
// ConfidenceFloor when the result carries scene data.
func finalConfidence(base, fixes int, hasData bool) int {
	c := base - FixPenalty*fixes
	if hasData && c < ConfidenceFloor {
		c = ConfidenceFloor
	}
	return clamp(c)
}

func clamp(v int) int {
	return min(100, max(0, v))
}
