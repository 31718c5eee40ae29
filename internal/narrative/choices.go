package narrative

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
)

// Accepted label lengths, exclusive, in runes.
const (
	minLabel = 2
	maxLabel = 200
)

var (
	numberedLine = regexp.MustCompile(`(?m)^[ \t]*\(?\d{1,2}[.):][ \t]+(.+?)[ \t]*$`)
	bulletLine   = regexp.MustCompile(`(?m)^[ \t]*[-*•][ \t]+(.+?)[ \t]*$`)
	letteredLine = regexp.MustCompile(`(?m)^[ \t]*\(?[A-Ha-h][.)][ \t]+(.+?)[ \t]*$`)
	markerLine   = regexp.MustCompile(`(?m)^[ \t]*(?:->|=>|→|➤|►|▶|>|[-*•+])[ \t]+(.+?)[ \t]*$`)
)

type choiceMethod struct {
	name string
	find func(text string) []string
}

var choiceMethods = []choiceMethod{
	{"numbered list", func(text string) []string { return captures(numberedLine, text) }},
	{"bullets after a question", bulletsAfterQuestion},
	{"lettered list", func(text string) []string { return captures(letteredLine, text) }},
	{"marker lines", func(text string) []string { return captures(markerLine, text) }},
}

// findChoices returns the choices of the first method yielding at least two
// acceptable labels, with the method name.
func findChoices(text string) ([]scene.Choice, string) {
	for _, m := range choiceMethods {
		var choices []scene.Choice
		for _, label := range m.find(text) {
			label = strings.Trim(strings.TrimSpace(label), "*_\"")
			if n := utf8.RuneCountInString(label); n <= minLabel || n >= maxLabel {
				continue
			}
			choices = append(choices, scene.Choice{Label: label, Prompt: label})
		}
		if len(choices) >= 2 {
			return choices, m.name
		}
	}
	return nil, ""
}

func captures(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

func bulletsAfterQuestion(text string) []string {
	i := strings.LastIndex(text, "?")
	if i < 0 {
		return nil
	}
	return captures(bulletLine, text[i+1:])
}
