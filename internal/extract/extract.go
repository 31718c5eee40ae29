package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/lookup"
)

// Candidate is a span suspected of being JSON, with provenance and score.
type Candidate struct {
	Raw            string `json:"raw"`
	FullMatch      string `json:"full_match"`
	Source         string `json:"source"`
	Priority       int    `json:"priority"`
	Confidence     int    `json:"confidence"`
	IsValid        bool   `json:"is_valid"`
	LooksLikeScene bool   `json:"looks_like_scene"`
	ParseError     string `json:"parse_error,omitempty"`
	Parsed         any    `json:"-"`
}

// Extraction is the outcome of [Best].
type Extraction struct {
	// Candidate is nil when no JSON-like span was found at all.
	Candidate  *Candidate
	RawJSON    string
	Narrative  string
	Source     string
	Confidence int
	Fixes      []string
	// Attempts is the number of distinct candidates considered.
	Attempts int
}

// Found reports whether a candidate was selected.
func (e *Extraction) Found() bool {
	return e != nil && e.Candidate != nil
}

// All runs every pattern over text and returns the deduplicated candidates
// in discovery order.
func All(text string) []*Candidate {
	seen := make(map[string]bool)
	var out []*Candidate
	for _, p := range patterns {
		for _, m := range p.matches(text) {
			raw := trimFence(m.raw)
			if raw == "" || seen[raw] {
				continue
			}
			seen[raw] = true
			out = append(out, newCandidate(raw, m.full, p))
		}
	}
	return out
}

func newCandidate(raw, full string, p pattern) *Candidate {
	c := &Candidate{
		Raw:       raw,
		FullMatch: full,
		Source:    p.name,
		Priority:  p.priority,
	}
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.ParseError = err.Error()
	} else {
		c.IsValid = true
		c.Parsed = parsed
		c.LooksLikeScene = LooksLikeScene(raw)
	}
	c.Confidence = score(c)
	return c
}

var debugKeys = regexp.MustCompile(`"(?:error|debug)"\s*:`)

func score(c *Candidate) int {
	s := c.Priority * 10
	if c.IsValid {
		s += 20
	}
	for _, key := range []string{`"scene"`, `"characters"`, `"choices"`} {
		if strings.Contains(c.Raw, key) {
			s += 5
		}
	}
	for _, key := range []string{`"background"`, `"expression"`} {
		if strings.Contains(c.Raw, key) {
			s += 3
		}
	}
	if len(c.Raw) < 20 {
		s -= 20
	}
	if debugKeys.MatchString(c.Raw) {
		s -= 30
	}
	return clamp(s)
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// LooksLikeScene reports whether raw is a JSON object carrying a scene or
// background field, or a characters/choices array under any known alias.
// Single envelopes such as {"data": {...}} are looked through.
func LooksLikeScene(raw string) bool {
	return looksLikeScene(gjson.Parse(raw), 0)
}

func looksLikeScene(obj gjson.Result, depth int) bool {
	if !obj.IsObject() || depth > 3 {
		return false
	}
	found := false
	obj.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		switch {
		case lookup.Contains(lookup.SceneKeys, k) && value.IsObject():
			found = true
		case isBackgroundKey(k) && value.Type == gjson.String:
			found = true
		case (lookup.Contains(lookup.CharacterKeys, k) || lookup.Contains(lookup.ChoiceKeys, k)) && value.IsArray():
			found = true
		case lookup.Contains(lookup.SingleCharacterKeys, k) && value.IsObject():
			found = true
		case lookup.Contains(lookup.EnvelopeKeys, k) && value.IsObject():
			found = looksLikeScene(value, depth+1)
		}
		return !found
	})
	return found
}

func isBackgroundKey(k string) bool {
	return k == "scene" || k == "background" || k == "bg" || k == "backdrop"
}

// rank orders candidates by priority, then confidence, both descending.
// Equal candidates keep discovery order.
func rank(cands []*Candidate) []*Candidate {
	ranked := make([]*Candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority > ranked[j].Priority
		}
		return ranked[i].Confidence > ranked[j].Confidence
	})
	return ranked
}

// Best selects the candidate to hand to syntax repair.
func Best(text string) *Extraction {
	cands := All(text)
	out := &Extraction{Attempts: len(cands), Narrative: strings.TrimSpace(text)}
	if len(cands) == 0 {
		return out
	}

	ranked := rank(cands)
	for _, c := range ranked {
		if c.IsValid && c.LooksLikeScene {
			fill(out, c, text, c.Source, c.Confidence)
			if c.Priority <= PriorityWrongLanguage && c.Priority >= PriorityMalformed {
				out.Fixes = append(out.Fixes, fmt.Sprintf("Extracted JSON from non-standard wrapper '%s'", c.Source))
			}
			return out
		}
	}

	top := ranked[0]
	fill(out, top, text, top.Source+"-invalid", max(10, top.Confidence-30))
	return out
}

func fill(out *Extraction, c *Candidate, text, source string, confidence int) {
	out.Candidate = c
	out.RawJSON = c.Raw
	out.Source = source
	out.Confidence = confidence
	out.Narrative = Strip(text, c.FullMatch)
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Strip removes the first occurrence of span from text and tidies the
// whitespace left behind.
func Strip(text, span string) string {
	if span != "" {
		text = strings.Replace(text, span, "", 1)
	}
	return strings.TrimSpace(blankRuns.ReplaceAllString(text, "\n\n"))
}

var sceneMarkers = []*regexp.Regexp{
	regexp.MustCompile("(?i)```+[ \\t]*(?:vn[-_ ]?scene|scene)\\b"),
	regexp.MustCompile(`(?i)<(?:vn[-_]?scene|scene)\b[^>]*>`),
	regexp.MustCompile(`(?i)\[(?:vn[-_]?scene|scene)\]`),
	regexp.MustCompile(`"(?:scene|characters|choices|background)"\s*:`),
	regexp.MustCompile("(?i)```+[ \\t]*json"),
}

// HasSceneData is a cheap pre-check: it reports whether text carries any
// scene marker, or is itself a JSON object that looks like a scene.
func HasSceneData(text string) bool {
	for _, re := range sceneMarkers {
		if re.MatchString(text) {
			return true
		}
	}
	trimmed := strings.TrimSpace(text)
	return gjson.Valid(trimmed) && LooksLikeScene(trimmed)
}
