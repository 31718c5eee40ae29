package narrative

import (
	"fmt"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
)

// Confidence contributions.
const (
	backgroundScore    = 15
	characterScore     = 10
	maxScoredCharacter = 3
	choicesScore       = 20
)

// Output is the result of mining prose. Result is nil when nothing was
// found. Extractions describes what was found and how, in order.
type Output struct {
	Result      *scene.Result
	Confidence  int
	Extractions []string
}

// Extract mines text for a background, characters and choices.
func Extract(text string, vocab scene.Vocabulary) *Output {
	out := &Output{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	res := scene.NewResult()

	if bg, how := findBackground(text, vocab.Backgrounds); bg != "" {
		res.Scene = &scene.Scene{Background: &bg}
		out.Confidence += backgroundScore
		out.Extractions = append(out.Extractions, fmt.Sprintf("Background '%s' from %s", bg, how))
	}

	for _, f := range findCharacters(text, vocab) {
		res.Characters = append(res.Characters, f.character)
		out.Extractions = append(out.Extractions, fmt.Sprintf("Character '%s' from %s", f.character.Name, f.how))
	}
	out.Confidence += characterScore * min(len(res.Characters), maxScoredCharacter)

	if choices, how := findChoices(text); len(choices) > 0 {
		res.Choices = choices
		out.Confidence += choicesScore
		out.Extractions = append(out.Extractions, fmt.Sprintf("%d choices from %s", len(choices), how))
	}

	if !res.IsEmpty() {
		out.Result = res
	}
	return out
}
