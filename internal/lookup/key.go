package lookup

import "strings"

// Key normalizes a vocabulary word for index lookups: lowercase, trimmed,
// with spaces and dashes turned into single underscores.
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_", "\t", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// reverseIndex maps every synonym (and the canonical label itself) to its
// canonical label. The first table entry claiming a key wins.
func reverseIndex(table []synonymSet) map[string]string {
	idx := make(map[string]string)
	for _, set := range table {
		for _, word := range append([]string{set.canonical}, set.synonyms...) {
			k := Key(word)
			if _, taken := idx[k]; !taken {
				idx[k] = set.canonical
			}
		}
	}
	return idx
}

type synonymSet struct {
	canonical string
	synonyms  []string
}
