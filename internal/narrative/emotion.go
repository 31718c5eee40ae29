package narrative

import (
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/lookup"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

// ScoreEmotion counts emotion keywords in text and returns the category with
// the highest non-zero count; ties go to the earlier category. When valid is
// not empty the category is mapped onto it by exact or substring match.
func ScoreEmotion(text string, valid []string) (string, bool) {
	best, bestCount := "", 0
	for _, c := range lookup.EmotionCategories() {
		if n := c.Count(text); n > bestCount {
			best, bestCount = c.Name, n
		}
	}
	if bestCount == 0 {
		return "", false
	}
	return mapExpression(best, valid), true
}

func mapExpression(emotion string, valid []string) string {
	for _, v := range valid {
		if utils.Fold(v) == emotion {
			return v
		}
	}
	for _, v := range valid {
		fv := utils.Fold(v)
		if fv != "" && (strings.Contains(fv, emotion) || strings.Contains(emotion, fv)) {
			return v
		}
	}
	return emotion
}
