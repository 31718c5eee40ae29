package values

import (
	"fmt"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/lookup"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

// Output is the result of value normalization.
type Output struct {
	Result   *scene.Result
	Fixes    []string
	Warnings []string
}

type normalizer struct {
	vocab scene.Vocabulary
	out   *Output
}

func (n *normalizer) fix(format string, args ...any) {
	n.out.Fixes = append(n.out.Fixes, fmt.Sprintf(format, args...))
}

func (n *normalizer) warn(format string, args ...any) {
	n.out.Warnings = append(n.out.Warnings, fmt.Sprintf(format, args...))
}

// Normalize canonicalizes every value of r against vocab. r is not modified.
func Normalize(r *scene.Result, vocab scene.Vocabulary) *Output {
	n := &normalizer{vocab: vocab, out: &Output{Result: r.Clone()}}
	res := n.out.Result
	if res == nil {
		return n.out
	}

	if sc := res.Scene; sc != nil {
		n.apply(&sc.Background, "scene.background", n.background)
		n.apply(&sc.Music, "scene.music", cleanAudio)
		n.apply(&sc.SFX, "scene.sfx", cleanAudio)
		if sc.IsEmpty() {
			res.Scene = nil
		}
	}

	for i := range res.Characters {
		c := &res.Characters[i]
		if name := n.name(c.Name); name != c.Name {
			n.fix("Normalized characters[%d].name '%s' to '%s'", i, c.Name, name)
			c.Name = name
		}
		n.apply(&c.Expression, fmt.Sprintf("characters[%d].expression", i), n.expression)
		n.apply(&c.Outfit, fmt.Sprintf("characters[%d].outfit", i), unquote)
		n.position(i, c)
		n.action(i, c)
	}

	for i := range res.Choices {
		ch := &res.Choices[i]
		if label := cleanLabel(ch.Label); label != ch.Label {
			n.fix("Normalized choices[%d].label '%s' to '%s'", i, ch.Label, label)
			ch.Label = label
		}
		if prompt := cleanPrompt(ch.Prompt); prompt != ch.Prompt {
			n.fix("Normalized choices[%d].prompt '%s' to '%s'", i, ch.Prompt, prompt)
			ch.Prompt = prompt
		}
	}

	for _, name := range res.DedupeCharacters() {
		n.fix("Removed duplicate character '%s' after normalization", name)
	}
	return n.out
}

// apply runs fn over an optional field, recording a fix when it changes and
// clearing the field when nothing is left.
func (n *normalizer) apply(field **string, path string, fn func(string) string) {
	if *field == nil {
		return
	}
	before := **field
	after := fn(before)
	switch {
	case after == before:
	case after == "":
		n.fix("Cleared %s '%s'", path, before)
		*field = nil
	default:
		n.fix("Normalized %s '%s' to '%s'", path, before, after)
		*field = &after
	}
}

func (n *normalizer) background(raw string) string {
	v := cleanBackground(raw)
	if v == "" {
		return ""
	}
	if m, ok := MatchVocabulary(v, n.vocab.Backgrounds); ok {
		return m
	}
	return utils.Slug(v)
}

// MatchVocabulary returns the entry of valid that v refers to. It tries
// exact, containment and separator-insensitive matches, in that order, across
// the whole list before moving to the next rule. Containment compares slugs
// so that separators do not matter.
func MatchVocabulary(v string, valid []string) (string, bool) {
	if len(valid) == 0 {
		return "", false
	}
	folded := utils.Fold(v)
	for _, b := range valid {
		if utils.Fold(b) == folded {
			return b, true
		}
	}
	slug := utils.Slug(folded)
	for _, b := range valid {
		sb := utils.Slug(utils.Fold(b))
		if sb != "" && slug != "" && (strings.Contains(slug, sb) || strings.Contains(sb, slug)) {
			return b, true
		}
	}
	compact := utils.Compact(v)
	if compact == "" {
		return "", false
	}
	for _, b := range valid {
		if utils.Compact(b) == compact {
			return b, true
		}
	}
	return "", false
}

func (n *normalizer) name(raw string) string {
	v := cleanName(raw)
	if v == "" {
		return strings.TrimSpace(raw)
	}
	folded := utils.Fold(v)
	for _, c := range n.vocab.Characters {
		if utils.Fold(c) == folded {
			return c
		}
	}
	for _, c := range n.vocab.Characters {
		fc := utils.Fold(c)
		if fc != "" && (strings.Contains(folded, fc) || strings.Contains(fc, folded)) {
			return c
		}
	}
	return v
}

func (n *normalizer) expression(raw string) string {
	return ResolveExpression(raw, n.vocab.Expressions)
}

// ResolveExpression maps raw onto the synonym table and, when valid is not
// empty, onto the caller's vocabulary: an exact entry first, then an entry
// sharing the same canonical label, then a substring match. Without a match
// the cleaned canonical (or cleaned raw) form is returned.
func ResolveExpression(raw string, valid []string) string {
	key := lookup.Key(cleanWord(raw))
	if key == "" {
		return ""
	}
	detected := key
	if canonical, ok := lookup.Expression(key); ok {
		detected = canonical
	}
	if len(valid) == 0 {
		return detected
	}

	for _, e := range valid {
		if lookup.Key(e) == key {
			return e
		}
	}
	for _, e := range valid {
		if canonical, ok := lookup.Expression(e); ok && canonical == detected {
			return e
		}
	}
	for _, e := range valid {
		k := lookup.Key(e)
		if k != "" && (containsEither(key, k) || containsEither(detected, k)) {
			return e
		}
	}
	return detected
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func (n *normalizer) position(i int, c *scene.Character) {
	if c.Position == nil {
		return
	}
	before := *c.Position
	after, ok := resolvePosition(before)
	if !ok {
		n.warn("Unrecognized characters[%d].position '%s', using center", i, before)
	}
	if after != before {
		n.fix("Normalized characters[%d].position '%s' to '%s'", i, before, after)
		c.Position = &after
	}
}

func resolvePosition(raw string) (string, bool) {
	key := lookup.Key(cleanWord(raw))
	if p, ok := lookup.Position(key); ok {
		return p, true
	}
	left := strings.Contains(key, "left")
	right := strings.Contains(key, "right")
	center := strings.Contains(key, "center") || strings.Contains(key, "centre") || strings.Contains(key, "middle")
	switch {
	case left && center:
		return scene.PositionLeftCenter, true
	case right && center:
		return scene.PositionRightCenter, true
	case left && !right:
		return scene.PositionLeft, true
	case right && !left:
		return scene.PositionRight, true
	case center:
		return scene.PositionCenter, true
	}
	return scene.PositionCenter, false
}

func (n *normalizer) action(i int, c *scene.Character) {
	if c.Action == nil {
		return
	}
	before := *c.Action
	after, ok := resolveAction(before)
	switch {
	case !ok:
		n.fix("Dropped unrecognized characters[%d].action '%s'", i, before)
		c.Action = nil
	case after != before:
		n.fix("Normalized characters[%d].action '%s' to '%s'", i, before, after)
		c.Action = &after
	}
}

func resolveAction(raw string) (string, bool) {
	key := lookup.Key(cleanWord(raw))
	if a, ok := lookup.Action(key); ok {
		return a, true
	}
	switch {
	case strings.Contains(key, "enter"):
		return scene.ActionEnters, true
	case strings.Contains(key, "exit"):
		return scene.ActionExits, true
	case strings.Contains(key, "speak"):
		return scene.ActionSpeaks, true
	}
	return "", false
}
