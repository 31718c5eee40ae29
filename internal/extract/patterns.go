package extract

import (
	"regexp"
	"strings"
)

// Priority tiers, highest first.
const (
	PrioritySceneTag      = 10
	PriorityHintedFence   = 9
	PriorityJSONFence     = 8
	PriorityWrongLanguage = 7
	PriorityMalformed     = 6
	PriorityBareObject    = 5
	PriorityBalanced      = 3
)

// match is one hit of a pattern: the whole matched span and the captured
// JSON-like text inside it.
type match struct {
	full string
	raw  string
}

// pattern is a named extraction rule. Regex rules capture group `group`;
// rules with a custom finder ignore re.
type pattern struct {
	name     string
	priority int
	re       *regexp.Regexp
	group    int
	find     func(text string) []match
}

func (p pattern) matches(text string) []match {
	if p.find != nil {
		return p.find(text)
	}
	var out []match
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		if p.group < len(m) {
			out = append(out, match{full: m[0], raw: m[p.group]})
		}
	}
	return out
}

func rx(name string, priority int, expr string) pattern {
	return pattern{name: name, priority: priority, re: regexp.MustCompile(expr), group: 1}
}

// patterns is evaluated top to bottom. All entries run; priority only
// affects ranking. Discovery order decides which source keeps a duplicate.
var patterns = []pattern{
	rx("vn-scene-block", PrioritySceneTag, "(?is)```+[ \\t]*(?:vn[-_ ]?scene|scene)[ \\t]*\\r?\\n(.*?)```+"),
	rx("scene-xml-tag", PrioritySceneTag, `(?is)<(?:vn[-_]?scene|scene(?:[-_]?data)?)(?:\s[^>]*)?>(.*?)</(?:vn[-_]?scene|scene(?:[-_]?data)?)\s*>`),
	rx("scene-bracket-tag", PrioritySceneTag, `(?is)\[(?:vn[-_]?scene|scene)\](.*?)\[/(?:vn[-_]?scene|scene)\]`),

	rx("json-fence-hinted", PriorityHintedFence, "(?is)```+[ \\t]*json[c5]?[ \\t]*\\r?\\n[ \\t]*(?://|#|/\\*)[^\\n]*?scene[^\\n]*\\n(.*?)```+"),

	rx("json-fence", PriorityJSONFence, "(?is)```+[ \\t]*json[c5]?[ \\t]*\\r?\\n(.*?)```+"),
	rx("plain-fence", PriorityJSONFence, "(?s)```+[ \\t]*\\r?\\n(\\s*[\\[{].*?)```+"),

	rx("js-fence", PriorityWrongLanguage, "(?is)```+[ \\t]*(?:javascript|js|typescript|ts|jsx|tsx)[ \\t]*\\r?\\n(.*?)```+"),
	rx("text-fence", PriorityWrongLanguage, "(?is)```+[ \\t]*(?:plaintext|plain|text|txt)[ \\t]*\\r?\\n(.*?)```+"),

	rx("unclosed-fence", PriorityMalformed, "(?is)```+[ \\t]*[a-z0-9_-]*[ \\t]*\\r?\\n(\\s*\\{[^`]*)\\z"),
	rx("double-backtick-fence", PriorityMalformed, "(?is)(?:\\A|[^`])``[ \\t]*(?:json)?[ \\t]*\\r?\\n(\\s*\\{.*?)``(?:[^`]|\\z)"),
	rx("extra-backtick-fence", PriorityMalformed, "(?is)````+[ \\t]*(?:json[c5]?)?[ \\t]*\\r?\\n(.*?)````+"),
	rx("inline-fence", PriorityMalformed, "(?s)```+[ \\t]*(?:json)?[ \\t]*(\\{.*?\\})[ \\t]*```+"),
	rx("tilde-fence", PriorityMalformed, "(?is)~~~+[ \\t]*(?:json[c5]?)?[ \\t]*\\r?\\n(.*?)~~~+"),

	rx("bare-json", PriorityBareObject, `(?s)\A\s*(\{.*\})\s*\z`),
	{name: "json-after-intro", priority: PriorityBareObject, re: regexp.MustCompile(`(?s)\A([^{]*\S[^{]*?)(\{.*\})\s*\z`), group: 2},

	{name: "balanced-object", priority: PriorityBalanced, find: findBalancedObjects},
}

// findBalancedObjects scans for top-level brace-balanced objects, skipping
// braces inside JSON strings. When an opening brace never closes, scanning
// resumes just after it so that complete inner objects are still found.
func findBalancedObjects(text string) []match {
	var out []match
	pos := 0
	for pos < len(text) {
		start := strings.IndexByte(text[pos:], '{')
		if start < 0 {
			break
		}
		start += pos
		end := closingBrace(text, start)
		if end < 0 {
			pos = start + 1
			continue
		}
		span := text[start : end+1]
		out = append(out, match{full: span, raw: span})
		pos = end + 1
	}
	return out
}

// closingBrace returns the index of the brace closing the object opened at
// start, or -1.
func closingBrace(text string, start int) int {
	depth := 0
	inString := false
	escape := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escape {
			escape = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escape = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

var (
	fenceOpen  = regexp.MustCompile("(?i)\\A\\s*(?:```+|~~~+)[ \\t]*[a-z0-9_-]*[ \\t]*\\r?\\n")
	fenceClose = regexp.MustCompile("(?:```+|~~~+)\\s*\\z")
)

// trimFence strips a fence wrapped around the captured text, as happens when
// a scene tag encloses a ```json block.
func trimFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if loc := fenceOpen.FindStringIndex(raw); loc != nil {
		raw = raw[loc[1]:]
		raw = fenceClose.ReplaceAllString(raw, "")
	}
	return strings.TrimSpace(raw)
}
