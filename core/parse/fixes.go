package parse

import (
	"fmt"
	"unicode"
)

// syntaxIssues counts the mistakes found while scanning malformed JSON.
type syntaxIssues struct {
	trailingCommas int
	singleQuotes   int
	smartQuotes    int
	comments       int
	unquotedKeys   int
	unclosed       int
	openString     bool
}

// describeFixes scans the text handed to jsonrepair and names what it must
// have fixed. The scan is approximate; when it recognises nothing a generic
// description is returned.
func describeFixes(raw string) []string {
	s := scanIssues(raw)

	var fixes []string
	if s.comments > 0 {
		fixes = append(fixes, "Removed comments from JSON")
	}
	if s.smartQuotes > 0 {
		fixes = append(fixes, "Replaced smart quotes with straight quotes")
	}
	if s.singleQuotes > 0 {
		fixes = append(fixes, "Replaced single quotes with double quotes")
	}
	if s.unquotedKeys > 0 {
		fixes = append(fixes, fmt.Sprintf("Quoted %d unquoted key(s)", s.unquotedKeys))
	}
	if s.trailingCommas > 0 {
		fixes = append(fixes, fmt.Sprintf("Removed %d trailing comma(s)", s.trailingCommas))
	}
	if s.openString {
		fixes = append(fixes, "Closed unterminated string")
	}
	if s.unclosed > 0 {
		fixes = append(fixes, fmt.Sprintf("Closed %d unbalanced bracket(s)", s.unclosed))
	}
	if len(fixes) == 0 {
		fixes = append(fixes, "Repaired malformed JSON syntax")
	}
	return fixes
}

func scanIssues(raw string) syntaxIssues {
	var (
		s         syntaxIssues
		runes     = []rune(raw)
		stack     []rune
		closer    rune // closing delimiter of the current string, 0 outside
		escape    bool
		expectKey bool
	)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if closer != 0 {
			switch {
			case escape:
				escape = false
			case r == '\\':
				escape = true
			case r == closer || (closer == '”' && r == '“') || (closer == '’' && r == '‘'):
				closer = 0
			}
			continue
		}

		switch {
		case r == '"':
			closer = '"'
			expectKey = false
		case r == '\'':
			s.singleQuotes++
			closer = '\''
			expectKey = false
		case r == '“' || r == '”':
			s.smartQuotes++
			closer = '”'
			expectKey = false
		case r == '‘' || r == '’':
			s.smartQuotes++
			closer = '’'
			expectKey = false
		case r == '/' && i+1 < len(runes) && (runes[i+1] == '/' || runes[i+1] == '*'):
			s.comments++
			i = skipComment(runes, i)
		case r == '{' || r == '[':
			stack = append(stack, r)
			expectKey = r == '{'
		case r == '}' || r == ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			expectKey = false
		case r == ',':
			if nextSignificant(runes, i+1) == '}' || nextSignificant(runes, i+1) == ']' {
				s.trailingCommas++
			}
			expectKey = len(stack) > 0 && stack[len(stack)-1] == '{'
		case unicode.IsSpace(r):
		case expectKey && (unicode.IsLetter(r) || r == '_' || r == '$'):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_' || runes[j] == '-' || runes[j] == '$') {
				j++
			}
			if nextSignificant(runes, j) == ':' {
				s.unquotedKeys++
			}
			i = j - 1
			expectKey = false
		default:
			expectKey = false
		}
	}

	s.openString = closer != 0
	s.unclosed = len(stack)
	return s
}

// skipComment returns the index of the last rune of the comment starting at i.
func skipComment(runes []rune, i int) int {
	if runes[i+1] == '/' {
		for i < len(runes) && runes[i] != '\n' {
			i++
		}
		return i
	}
	for j := i + 2; j+1 < len(runes); j++ {
		if runes[j] == '*' && runes[j+1] == '/' {
			return j + 1
		}
	}
	return len(runes) - 1
}

// nextSignificant returns the first non-space rune at or after i, or 0.
func nextSignificant(runes []rune, i int) rune {
	for ; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) {
			return runes[i]
		}
	}
	return 0
}
