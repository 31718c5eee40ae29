package lint

import (
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/overview"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
)

// Sources that do not name an extraction pattern.
const (
	SourceNone     = "none"
	SourceFallback = "fallback-text"
)

// FallbackThreshold is the confidence a prose-mined result must exceed to
// be accepted.
const FallbackThreshold = 30

// Result is the outcome of one lint call.
type Result struct {
	// Scene is nil when nothing could be recovered.
	Scene *scene.Result `json:"scene"`
	// Narrative is the response text with the selected JSON span removed.
	Narrative   string      `json:"narrative"`
	Source      string      `json:"source"`
	Confidence  int         `json:"confidence"`
	Fixes       []string    `json:"fixes"`
	Warnings    []string    `json:"warnings"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Diagnostics counts what each stage did.
type Diagnostics struct {
	OriginalLength             int  `json:"original_length"`
	ExtractionAttempts         int  `json:"extraction_attempts"`
	SyntaxFixesApplied         int  `json:"syntax_fixes_applied"`
	SchemaFixesApplied         int  `json:"schema_fixes_applied"`
	ValueNormalizationsApplied int  `json:"value_normalizations_applied"`
	FallbackUsed               bool `json:"fallback_used"`
}

func newResult(text string) *Result {
	return &Result{
		Source:   SourceNone,
		Fixes:    []string{},
		Warnings: []string{},
		Diagnostics: Diagnostics{
			OriginalLength: len([]rune(text)),
		},
	}
}

// Succeeded reports whether a scene was recovered.
func (r *Result) Succeeded() bool {
	return r != nil && r.Scene != nil
}

// Outcome converts r for aggregation in an overview.Stats.
func (r *Result) Outcome() overview.Outcome {
	return overview.Outcome{
		Succeeded:  r.Succeeded(),
		Fallback:   r.Diagnostics.FallbackUsed,
		Source:     r.Source,
		Confidence: r.Confidence,
		Fixes:      r.Fixes,
		Warnings:   len(r.Warnings),
	}
}

func (r *Result) fix(fixes ...string) {
	r.Fixes = append(r.Fixes, fixes...)
}

func (r *Result) warn(warnings ...string) {
	r.Warnings = append(r.Warnings, warnings...)
}
