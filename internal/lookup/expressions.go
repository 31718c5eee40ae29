package lookup

import (
	"regexp"
	"strings"
)

var expressionTable = []synonymSet{
	{"neutral", []string{"normal", "default", "idle", "blank", "base", "none", "calm", "serious", "stoic", "expressionless", "plain", "resting"}},
	{"happy", []string{"joy", "joyful", "smile", "smiling", "smiles", "glad", "cheerful", "pleased", "grin", "grinning", "laugh", "laughing", "content", "delighted", "amused", "amusement", "happiness", "joyous"}},
	{"sad", []string{"unhappy", "crying", "cry", "cries", "tearful", "tears", "upset", "depressed", "sorrow", "sorrowful", "gloomy", "melancholy", "sadness", "grief", "grieving", "disappointed", "disappointment", "hurt", "remorse"}},
	{"angry", []string{"mad", "furious", "annoyed", "irritated", "rage", "enraged", "frustrated", "irate", "anger", "annoyance", "livid", "glaring", "scowl", "scowling"}},
	{"surprised", []string{"shocked", "astonished", "amazed", "startled", "surprise", "stunned", "shock", "gasp", "wide_eyed", "realization"}},
	{"scared", []string{"afraid", "fear", "fearful", "frightened", "terrified", "nervous", "anxious", "worried", "panicked", "panic", "nervousness", "scared_face"}},
	{"embarrassed", []string{"blush", "blushing", "flustered", "shy", "bashful", "sheepish", "embarrassment", "awkward", "ashamed"}},
	{"confused", []string{"puzzled", "perplexed", "uncertain", "unsure", "thinking", "thoughtful", "pondering", "confusion", "curious", "curiosity", "questioning"}},
	{"love", []string{"loving", "affectionate", "adoring", "infatuated", "smitten", "lovestruck", "caring", "desire", "admiration", "heart_eyes"}},
	{"smug", []string{"confident", "proud", "pride", "smirk", "smirking", "cocky", "arrogant", "teasing", "sly"}},
	{"excited", []string{"excitement", "eager", "thrilled", "ecstatic", "enthusiastic", "hyped", "elated", "optimism", "optimistic"}},
	{"tired", []string{"sleepy", "exhausted", "weary", "drowsy", "fatigued", "yawning", "bored", "boredom"}},
	{"disgusted", []string{"disgust", "grossed_out", "repulsed", "revolted", "disdain", "contempt"}},
}

var expressionIndex = reverseIndex(expressionTable)

// Expression resolves an expression word or synonym to its canonical label.
// The input is normalized with [Key] before lookup.
func Expression(word string) (string, bool) {
	canonical, ok := expressionIndex[Key(word)]
	return canonical, ok
}

// EmotionCategory pairs a canonical expression with the narrative keywords
// that suggest it.
type EmotionCategory struct {
	Name     string
	Keywords []string
	pattern  *regexp.Regexp
}

// Count returns how many keyword occurrences appear in text.
func (c EmotionCategory) Count(text string) int {
	return len(c.pattern.FindAllStringIndex(text, -1))
}

var emotionTable = []struct {
	name     string
	keywords []string
}{
	{"happy", []string{"smile", "smiles", "smiled", "smiling", "grin", "grins", "grinned", "grinning", "laugh", "laughs", "laughed", "laughing", "giggle", "giggles", "giggled", "beam", "beams", "beamed", "beaming", "chuckle", "chuckles", "chuckled", "happy", "happily", "joy", "joyful", "cheerful", "cheerfully", "delighted", "glad", "pleased"}},
	{"sad", []string{"cry", "cries", "cried", "crying", "tear", "tears", "tearful", "sob", "sobs", "sobbed", "sobbing", "weep", "weeps", "wept", "sad", "sadly", "sigh", "sighs", "sighed", "frown", "frowns", "frowned", "downcast", "sorrow", "heartbroken", "mourn", "mourns"}},
	{"angry", []string{"angry", "angrily", "glare", "glares", "glared", "glaring", "scowl", "scowls", "scowled", "growl", "growls", "growled", "snarl", "snarls", "snap", "snaps", "snapped", "furious", "furiously", "shout", "shouts", "shouted", "yell", "yells", "yelled", "slam", "slams", "slammed", "clench", "clenches", "rage", "annoyed", "irritated"}},
	{"surprised", []string{"gasp", "gasps", "gasped", "startle", "startled", "surprise", "surprised", "shock", "shocked", "stunned", "blink", "blinks", "wide-eyed", "astonished", "jaw drops", "eyes widen", "eyes widened"}},
	{"scared", []string{"tremble", "trembles", "trembled", "trembling", "shiver", "shivers", "shivered", "flinch", "flinches", "flinched", "afraid", "scared", "terrified", "fear", "fearful", "nervous", "nervously", "anxious", "cower", "cowers", "panic", "panics", "panicked"}},
	{"embarrassed", []string{"blush", "blushes", "blushed", "blushing", "fluster", "flustered", "stammer", "stammers", "stammered", "embarrassed", "sheepish", "sheepishly", "shy", "shyly", "looks away", "fidget", "fidgets"}},
	{"love", []string{"love", "loves", "loving", "adore", "adores", "embrace", "embraces", "hug", "hugs", "hugged", "kiss", "kisses", "kissed", "tenderly", "affection", "affectionately", "cuddle", "cuddles"}},
	{"confused", []string{"confused", "puzzled", "frown in confusion", "tilts her head", "tilts his head", "tilts their head", "scratch", "scratches", "ponder", "ponders", "wonder", "wonders", "bewildered", "uncertain", "hesitate", "hesitates", "hesitantly"}},
	{"smug", []string{"smirk", "smirks", "smirked", "smirking", "smug", "smugly", "proud", "proudly", "confident", "confidently", "cocky", "tease", "teases", "teasing"}},
	{"excited", []string{"excited", "excitedly", "bounce", "bounces", "bouncing", "cheer", "cheers", "cheered", "squeal", "squeals", "eager", "eagerly", "thrilled"}},
	{"tired", []string{"yawn", "yawns", "yawned", "yawning", "tired", "sleepy", "exhausted", "stretch", "stretches", "rubs her eyes", "rubs his eyes", "drowsy"}},
	{"disgusted", []string{"disgust", "disgusted", "grimace", "grimaces", "grimaced", "recoil", "recoils", "gag", "gags", "wrinkles her nose", "wrinkles his nose"}},
}

var emotionCategories = buildEmotionCategories()

func buildEmotionCategories() []EmotionCategory {
	out := make([]EmotionCategory, 0, len(emotionTable))
	for _, row := range emotionTable {
		quoted := make([]string, len(row.keywords))
		for i, k := range row.keywords {
			quoted[i] = regexp.QuoteMeta(k)
		}
		out = append(out, EmotionCategory{
			Name:     row.name,
			Keywords: row.keywords,
			pattern:  regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
		})
	}
	return out
}

// EmotionCategories returns the ordered keyword table. Order matters: score
// ties are resolved in favour of the earlier category. Callers must not
// modify the returned slice.
func EmotionCategories() []EmotionCategory {
	return emotionCategories
}

var canonicalExpressions = func() []string {
	out := make([]string, len(expressionTable))
	for i, set := range expressionTable {
		out[i] = set.canonical
	}
	return out
}()

// CanonicalExpressions returns the canonical expression labels in table
// order. Callers must not modify the returned slice.
func CanonicalExpressions() []string {
	return canonicalExpressions
}
