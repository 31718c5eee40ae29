// Package preprocess cleans raw LLM response text before candidate
// extraction: it removes byte-order marks and zero-width characters, drops
// reasoning blocks such as <thinking>...</thinking>, turns HTML-rendered code
// blocks back into markdown fences, and decodes a small fixed set of HTML
// entities.
//
// Unicode escape sequences (\uXXXX) are deliberately left alone: inside JSON
// strings they are meaningful and are resolved by the syntax repairer.
package preprocess

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

// step is one cleaning pass. Steps run in declaration order.
type step struct {
	name  string
	apply func(string) string
}

var steps = []step{
	{"invisible", stripInvisible},
	{"reasoning", stripReasoning},
	{"html-code", unwrapHTMLCode},
	{"entities", decodeEntities},
	{"reasoning-decoded", stripReasoning},
	{"nfc", utils.NFC},
}

// Clean runs every cleaning pass over text. It never fails.
func Clean(text string) string {
	for _, s := range steps {
		text = s.apply(text)
	}
	return text
}

var invisibleReplacer = strings.NewReplacer(
	"\uFEFF", "",
	"\u200B", "",
	"\u200C", "",
	"\u200D", "",
	"\u2060", "",
)

func stripInvisible(text string) string {
	return invisibleReplacer.Replace(text)
}

// Go's regexp has no backreferences, so each tag gets its own pattern.
var reasoningPatterns = func() []*regexp.Regexp {
	tags := []string{"thinking", "reasoning", "internal", "thought"}
	out := make([]*regexp.Regexp, len(tags))
	for i, tag := range tags {
		out[i] = regexp.MustCompile(`(?is)<` + tag + `\b[^>]*>.*?</` + tag + `\s*>`)
	}
	return out
}()

func stripReasoning(text string) string {
	for _, re := range reasoningPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

var htmlCodeBlock = regexp.MustCompile(`(?is)<pre\b[^>]*>.*?</pre\s*>`)

// unwrapHTMLCode converts <pre><code class="language-json">...</code></pre>
// fragments produced by chat front-ends into fenced markdown. Fragments the
// converter rejects are kept verbatim.
func unwrapHTMLCode(text string) string {
	if !strings.Contains(strings.ToLower(text), "<pre") {
		return text
	}
	return htmlCodeBlock.ReplaceAllStringFunc(text, func(fragment string) string {
		md, err := htmltomarkdown.ConvertString(fragment)
		if err != nil || strings.TrimSpace(md) == "" {
			return fragment
		}
		return "\n" + strings.TrimSpace(md) + "\n"
	})
}

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

func decodeEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}
	return entityReplacer.Replace(text)
}
