package missingness

import "strings"

// WrapperPunctuation lists the characters stripped from the edges of a cell.
const WrapperPunctuation = "?!.*-_~#"

// Normalize returns the canonical form of a raw cell string.
//
// Trimming and edge stripping repeat until the string stops changing, so a
// value like "-- n/a --" reduces to "n/a" and Normalize is idempotent.
// Interior punctuation and interior whitespace are left untouched.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for {
		stripped := strings.TrimSpace(strings.Trim(s, WrapperPunctuation))
		if stripped == s {
			return s
		}
		s = stripped
	}
}

// Canonical normalizes v when it holds a string. Any other value, including
// nil, is not normalized and ok is false.
func Canonical(v any) (canonical string, ok bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return Normalize(s), true
}
