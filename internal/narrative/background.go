package narrative

import (
	"regexp"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/lookup"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/values"
)

var placePhrase = regexp.MustCompile(`(?i)\b(?:in|at|inside|outside|into|onto|within)\s+(?:the\s+|a\s+|an\s+|her\s+|his\s+|their\s+)?([\p{L}\p{N}' -]{2,40}?)(?:[.,;:!?\n]|\s+(?:and|with|where|while|as|when|to)\b|$)`)

// findBackground returns the background and a description of how it was
// found, or "" when the text names no place.
func findBackground(text string, valid []string) (string, string) {
	bg, how := explicitPlace(text, valid)
	if bg == "" {
		bg, how = keywordPlace(text, valid)
	}
	if bg == "" {
		return "", ""
	}
	for _, t := range lookup.TimesOfDay() {
		if !t.Match(text) {
			continue
		}
		if compound, ok := exactEntry(bg+t.Suffix, valid); ok {
			return compound, how + " with time of day"
		}
	}
	return bg, how
}

// explicitPlace matches "in/at/inside/outside the X" phrases against the
// caller's backgrounds.
func explicitPlace(text string, valid []string) (string, string) {
	if len(valid) == 0 {
		return "", ""
	}
	for _, m := range placePhrase.FindAllStringSubmatch(text, -1) {
		if bg, ok := values.MatchVocabulary(strings.TrimSpace(m[1]), valid); ok {
			return bg, "place phrase (confidence 70)"
		}
	}
	return "", ""
}

// keywordPlace consults the location keyword table.
func keywordPlace(text string, valid []string) (string, string) {
	for _, loc := range lookup.Locations() {
		if !loc.Match(text) {
			continue
		}
		if bg, ok := values.MatchVocabulary(loc.Name, valid); ok {
			return bg, "location keyword (confidence 50)"
		}
		return loc.Name, "location keyword (confidence 50)"
	}
	return "", ""
}

func exactEntry(name string, valid []string) (string, bool) {
	folded := utils.Fold(name)
	for _, v := range valid {
		if utils.Fold(v) == folded {
			return v, true
		}
	}
	return "", false
}
