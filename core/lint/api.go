package lint

import (
	"context"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/overview"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/extract"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/preprocess"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

var defaultLinter = New()

func linterFor(opts []Option) *Linter {
	if len(opts) == 0 {
		return defaultLinter
	}
	return New(opts...)
}

// LintSceneResponse lints one response with a Linter built from opts.
func LintSceneResponse(response string, opts ...Option) *Result {
	return linterFor(opts).Lint(context.Background(), response)
}

// LintMany lints responses with a Linter built from opts. See Linter.LintMany.
func LintMany(ctx context.Context, responses []string, opts ...Option) ([]*Result, overview.Summary, error) {
	return linterFor(opts).LintMany(ctx, responses)
}

// HasSceneData reports whether text carries a scene marker or is itself a
// scene-shaped JSON object. It is cheap enough to call before deciding
// whether to lint at all.
func HasSceneData(text string) bool {
	return extract.HasSceneData(text)
}

// StripSceneJSON returns text with the selected JSON span removed. Reasoning
// tags and invisible characters are cleaned first. Text without any JSON
// comes back trimmed.
func StripSceneJSON(text string) string {
	return extract.Best(preprocess.Clean(text)).Narrative
}

// Diagnosis is the extraction-level view of a response, for tooling.
type Diagnosis struct {
	OriginalLength     int               `json:"original_length"`
	PreprocessedLength int               `json:"preprocessed_length"`
	HasSceneData       bool              `json:"has_scene_data"`
	Candidates         []CandidateReport `json:"candidates"`
	// Selected is the source the pipeline would pick, empty when no
	// candidate exists.
	Selected           string `json:"selected,omitempty"`
	SelectedConfidence int    `json:"selected_confidence"`
}

// CandidateReport describes one extraction candidate.
type CandidateReport struct {
	Source         string `json:"source"`
	Priority       int    `json:"priority"`
	Length         int    `json:"length"`
	Confidence     int    `json:"confidence"`
	Valid          bool   `json:"valid"`
	LooksLikeScene bool   `json:"looks_like_scene"`
	ParseError     string `json:"parse_error,omitempty"`
	Preview        string `json:"preview"`
}

// DiagnoseResponse lists every extraction candidate in discovery order with
// its score and parse error. Nothing past extraction runs.
func DiagnoseResponse(text string) *Diagnosis {
	cleaned := preprocess.Clean(text)
	d := &Diagnosis{
		OriginalLength:     len([]rune(text)),
		PreprocessedLength: len([]rune(cleaned)),
		HasSceneData:       extract.HasSceneData(text),
		Candidates:         []CandidateReport{},
	}
	for _, c := range extract.All(cleaned) {
		d.Candidates = append(d.Candidates, CandidateReport{
			Source:         c.Source,
			Priority:       c.Priority,
			Length:         len([]rune(c.Raw)),
			Confidence:     c.Confidence,
			Valid:          c.IsValid,
			LooksLikeScene: c.LooksLikeScene,
			ParseError:     c.ParseError,
			Preview:        utils.Preview(c.Raw),
		})
	}
	if best := extract.Best(cleaned); best.Found() {
		d.Selected = best.Source
		d.SelectedConfidence = best.Confidence
	}
	return d
}
