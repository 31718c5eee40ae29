package narrative

import (
	"regexp"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

type found struct {
	character scene.Character
	how       string
}

var (
	speechLine = regexp.MustCompile(`(?m)^[ \t]*(?:\*\*)?([A-Z][\p{L}'-]+(?: [A-Z][\p{L}'-]+)?)(?:\*\*)?[ \t]*:[ \t]*(.+)$`)
	actionSpan = regexp.MustCompile(`\*([A-Z][\p{L}'-]+)\s+([^*\n]{3,200})\*`)
	verbLead   = regexp.MustCompile(`(?:^|[.!?]["”]?\s+|\n\s*)([A-Z][\p{L}'-]+)\s+(?:` + strings.Join(expressiveVerbs, "|") + `)\b`)
)

var expressiveVerbs = []string{
	"smiles", "grins", "laughs", "giggles", "chuckles", "beams", "smirks",
	"frowns", "sighs", "cries", "sobs", "weeps", "pouts", "glares", "scowls",
	"growls", "gasps", "blushes", "trembles", "shivers", "yawns", "nods",
	"shrugs", "waves", "winks", "stares", "looks", "glances", "blinks",
	"walks", "steps", "runs", "rushes", "storms", "strides", "wanders",
	"enters", "arrives", "appears", "leaves", "exits", "turns", "sits",
	"stands", "leans", "says", "whispers", "shouts", "yells", "mutters",
	"asks", "replies", "exclaims", "murmurs",
}

// notNames are capitalised words that open sentences or labels without
// naming anyone.
var notNames = map[string]bool{
	"the": true, "she": true, "he": true, "they": true, "it": true, "i": true,
	"we": true, "you": true, "this": true, "that": true, "then": true,
	"suddenly": true, "there": true, "here": true, "a": true, "an": true,
	"someone": true, "everyone": true, "nobody": true, "somebody": true,
	"note": true, "notes": true, "choice": true, "choices": true,
	"option": true, "options": true, "scene": true, "setting": true,
	"location": true, "background": true, "music": true, "time": true,
	"narrator": true, "summary": true, "ooc": true, "what": true,
	"her": true, "his": true, "my": true, "our": true, "your": true,
	"its": true, "when": true, "as": true, "but": true, "and": true,
	"so": true, "if": true, "after": true, "before": true, "now": true,
	"still": true, "yes": true, "no": true, "oh": true, "well": true,
}

var actionCues = []struct {
	action string
	re     *regexp.Regexp
}{
	{scene.ActionEnters, regexp.MustCompile(`(?i)\b(?:enters|entered|arrives|arrived|appears|walks (?:in|into)|steps (?:in|into)|comes in|bursts in)\b`)},
	{scene.ActionExits, regexp.MustCompile(`(?i)\b(?:leaves|left|exits|departs|walks (?:out|away)|storms (?:out|off)|disappears)\b`)},
	{scene.ActionSpeaks, regexp.MustCompile(`(?i)\b(?:says|said|asks|replies|whispers|shouts|yells|mutters|murmurs|exclaims)\b`)},
	{scene.ActionMoves, regexp.MustCompile(`(?i)\b(?:walks|runs|steps|moves|approaches|rushes|strides|wanders)\b`)},
}

func detectAction(text string) *string {
	for _, cue := range actionCues {
		if cue.re.MatchString(text) {
			a := cue.action
			return &a
		}
	}
	return nil
}

// findCharacters runs the four passes and merges their results, dropping
// case-insensitive duplicates so that the earliest pass wins.
func findCharacters(text string, vocab scene.Vocabulary) []found {
	var all []found
	all = append(all, vocabularyMentions(text, vocab)...)
	all = append(all, speechAttributions(text, vocab)...)
	all = append(all, actionSpans(text, vocab)...)
	all = append(all, verbLeads(text, vocab)...)

	seen := make(map[string]bool, len(all))
	out := all[:0]
	for _, f := range all {
		key := strings.ToLower(f.character.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}

func vocabularyMentions(text string, vocab scene.Vocabulary) []found {
	var out []found
	for _, name := range vocab.Characters {
		if strings.TrimSpace(name) == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		out = append(out, found{
			character: newCharacter(name, sentenceAt(text, loc[0]), vocab.Expressions),
			how:       "vocabulary mention",
		})
	}
	return out
}

func speechAttributions(text string, vocab scene.Vocabulary) []found {
	var out []found
	for _, m := range speechLine.FindAllStringSubmatch(text, -1) {
		name := canonicalName(m[1], vocab.Characters)
		if name == "" {
			continue
		}
		c := scene.Character{Name: name, Action: utils.Ptr(scene.ActionSpeaks)}
		if e, ok := ScoreEmotion(m[2], vocab.Expressions); ok {
			c.Expression = &e
		}
		out = append(out, found{character: c, how: "speech attribution"})
	}
	return out
}

func actionSpans(text string, vocab scene.Vocabulary) []found {
	var out []found
	for _, m := range actionSpan.FindAllStringSubmatch(text, -1) {
		name := canonicalName(m[1], vocab.Characters)
		if name == "" {
			continue
		}
		out = append(out, found{
			character: newCharacter(name, m[2], vocab.Expressions),
			how:       "action span",
		})
	}
	return out
}

func verbLeads(text string, vocab scene.Vocabulary) []found {
	var out []found
	for _, loc := range verbLead.FindAllStringSubmatchIndex(text, -1) {
		name := canonicalName(text[loc[2]:loc[3]], vocab.Characters)
		if name == "" {
			continue
		}
		out = append(out, found{
			character: newCharacter(name, sentenceAt(text, loc[2]), vocab.Expressions),
			how:       "narration",
		})
	}
	return out
}

func newCharacter(name, context string, expressions []string) scene.Character {
	c := scene.Character{Name: name, Action: detectAction(context)}
	if e, ok := ScoreEmotion(context, expressions); ok {
		c.Expression = &e
	}
	return c
}

// canonicalName rejects non-names and maps the name onto the vocabulary
// spelling when one matches.
func canonicalName(name string, valid []string) string {
	name = strings.TrimSpace(name)
	if name == "" || notNames[strings.ToLower(name)] {
		return ""
	}
	folded := utils.Fold(name)
	for _, v := range valid {
		if utils.Fold(v) == folded {
			return v
		}
	}
	return name
}

// sentenceAt returns the sentence starting at i.
func sentenceAt(text string, i int) string {
	rest := text[i:]
	if end := strings.IndexAny(rest, ".!?\n"); end >= 0 {
		return rest[:end+1]
	}
	return rest
}
