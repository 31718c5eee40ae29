package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultPreviewLength is the rune budget used by [Preview].
const DefaultPreviewLength = 80

// JSONToString renders object as JSON, pretty-printed when indent is true.
// On marshalling failure it returns a JSON-formatted error string, so the
// result is always safe to print.
func JSONToString(object any, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// TruncateRunes shortens s to at most maxRunes runes. When s is cut, the last
// len(suffix) runes of the budget are replaced by suffix.
func TruncateRunes(s string, maxRunes int, suffix string) string {
	r := []rune(s)
	if maxRunes <= 0 || len(r) <= maxRunes {
		return s
	}
	keep := maxRunes - len([]rune(suffix))
	if keep < 0 {
		keep = 0
	}
	return strings.TrimRightFunc(string(r[:keep]), unicode.IsSpace) + suffix
}

// Preview returns a single-line, truncated rendering of s for diagnostics,
// noting the original length when it had to cut.
func Preview(s string) string {
	flat := strings.Join(strings.Fields(s), " ")
	if len([]rune(flat)) <= DefaultPreviewLength {
		return flat
	}
	return fmt.Sprintf("%s... (%d chars)", string([]rune(flat)[:DefaultPreviewLength]), len(s))
}

// foldTransformer decomposes, drops combining marks and recomposes, turning
// "Café" into "Cafe".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Compact folds s and removes every rune that is not a letter or digit, so
// "Living-Room", "living_room" and "livingroom" compare equal.
func Compact(s string) string {
	var b strings.Builder
	for _, r := range Fold(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slug lowercases s and collapses every run of non-alphanumeric runes into a
// single underscore, trimming underscores at both ends.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// NFC returns s in Unicode normalization form C.
func NFC(s string) string {
	return norm.NFC.String(s)
}
