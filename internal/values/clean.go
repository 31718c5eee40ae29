package values

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

var quotePairs = map[rune]rune{'"': '"', '\'': '\'', '`': '`', '“': '”', '‘': '’', '«': '»'}

// unquote trims whitespace and any number of matching surrounding quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	for {
		r := []rune(s)
		if len(r) < 2 {
			return s
		}
		closing, ok := quotePairs[r[0]]
		if !ok || r[len(r)-1] != closing {
			return s
		}
		s = strings.TrimSpace(string(r[1 : len(r)-1]))
	}
}

// baseName drops any directory or URL prefix.
func baseName(s string) string {
	s = strings.ReplaceAll(s, `\`, "/")
	if !strings.Contains(s, "/") {
		return s
	}
	return path.Base(strings.TrimRight(s, "/"))
}

var (
	imageExt = regexp.MustCompile(`(?i)\.(?:png|jpe?g|webp|gif|bmp|avif|svg)$`)
	audioExt = regexp.MustCompile(`(?i)\.(?:mp3|ogg|wav|m4a|flac|opus|aac|mid|midi)$`)

	backgroundPrefix = regexp.MustCompile(`(?i)^(?:(?:bg|background|scene|location)\s*:\s*)+`)
	audioPrefix      = regexp.MustCompile(`(?i)^(?:(?:bgm|music|sfx|sound|audio)\s*:\s*)+`)
	namePrefix       = regexp.MustCompile(`(?i)^(?:(?:character|char|name|npc|speaker|actor)\s*:\s*)+`)
	expressionPrefix = regexp.MustCompile(`(?i)^(?:(?:expression|emotion|expr|mood|face)\s*[:=]\s*)+`)
	templateBraces   = regexp.MustCompile(`\{\{\s*|\s*\}\}`)
)

func cleanBackground(s string) string {
	s = backgroundPrefix.ReplaceAllString(unquote(s), "")
	return strings.TrimSpace(imageExt.ReplaceAllString(baseName(s), ""))
}

func cleanAudio(s string) string {
	s = audioPrefix.ReplaceAllString(unquote(s), "")
	return strings.TrimSpace(audioExt.ReplaceAllString(baseName(s), ""))
}

func cleanName(s string) string {
	s = namePrefix.ReplaceAllString(unquote(s), "")
	return strings.TrimSpace(templateBraces.ReplaceAllString(s, ""))
}

// cleanWord prepares an expression, position or action for table lookup.
func cleanWord(s string) string {
	s = expressionPrefix.ReplaceAllString(unquote(s), "")
	s = imageExt.ReplaceAllString(baseName(s), "")
	return strings.ToLower(strings.TrimSpace(s))
}

var (
	listMarker = regexp.MustCompile(`^(?:\(?\d{1,2}[.):]|\(?[A-Za-z][.)]|[-*•+>])\s+`)
	emphasis   = regexp.MustCompile(`^(\*{1,3}|_{1,3})(.+?)(\*{1,3}|_{1,3})$`)
)

// MaxLabelLength caps choice labels, in runes.
const MaxLabelLength = 100

func cleanLabel(s string) string {
	s = unquote(s)
	for {
		next := unquote(stripLeadingEmoji(listMarker.ReplaceAllString(s, "")))
		if next == s {
			break
		}
		s = next
	}
	return utils.TruncateRunes(s, MaxLabelLength, "...")
}

func cleanPrompt(s string) string {
	s = unquote(s)
	for {
		m := emphasis.FindStringSubmatch(s)
		if m == nil || m[1] != m[3] {
			return s
		}
		s = strings.TrimSpace(m[2])
	}
}

// stripLeadingEmoji removes a leading pictograph, with its variation
// selector, when text follows it.
func stripLeadingEmoji(s string) string {
	r := []rune(s)
	if len(r) < 2 || !isPictograph(r[0]) {
		return s
	}
	i := 1
	for i < len(r) && (r[i] == '\uFE0F' || r[i] == '\u200D') {
		i++
	}
	rest := strings.TrimSpace(string(r[i:]))
	if rest == "" {
		return s
	}
	return rest
}

func isPictograph(r rune) bool {
	return unicode.Is(unicode.So, r) || (r >= 0x1F000 && r <= 0x1FAFF)
}
