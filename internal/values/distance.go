package values

import (
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/lookup"
)

// MaxDistance is the largest edit distance [Distance] reports exactly.
const MaxDistance = 3

// Distance returns the Levenshtein distance between a and b, counted in
// runes. Distances above MaxDistance are reported as MaxDistance+1.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if d := len(ra) - len(rb); d > MaxDistance || -d > MaxDistance {
		return MaxDistance + 1
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > MaxDistance {
			return MaxDistance + 1
		}
		prev, cur = cur, prev
	}
	return min(prev[len(rb)], MaxDistance+1)
}

// SuggestExpression returns the closest expression to word within
// MaxDistance edits. Candidates are the entries of valid, or the canonical
// expression labels when valid is empty. Ties go to the earlier candidate.
func SuggestExpression(word string, valid []string) (string, bool) {
	key := lookup.Key(cleanWord(word))
	if key == "" {
		return "", false
	}
	candidates := valid
	if len(candidates) == 0 {
		candidates = lookup.CanonicalExpressions()
	}

	best, bestDist := "", MaxDistance+1
	for _, c := range candidates {
		if d := Distance(key, lookup.Key(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= MaxDistance
}
