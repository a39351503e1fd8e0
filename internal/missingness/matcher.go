package missingness

// vocabulary holds the canonical placeholder keywords. It is built once and
// only ever read.
var vocabulary = newKeywordSet(
	"missing",
	"lost",
	"unknown",
	"unavailable",
	"undefined",
	"not available",
	"not applicable",
	"blank",
	"empty",
	"none",
	"null",
	"nil",
	"n/a",
	"na",
	"n.a.",
	"n.a",
	"no data",
	"no value",
	"tbd",
	"tba",
)

type keywordSet map[string]struct{}

func newKeywordSet(words ...string) keywordSet {
	set := make(keywordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (k keywordSet) contains(s string) bool {
	_, ok := k[s]
	return ok
}

// Vocabulary returns the placeholder keywords in a fresh slice.
func Vocabulary() []string {
	words := make([]string, 0, len(vocabulary))
	for w := range vocabulary {
		words = append(words, w)
	}
	return words
}

// IsPlaceholder reports whether a canonical form denotes a missing value:
// either nothing is left after edge stripping, or the whole form equals a
// vocabulary keyword.
func IsPlaceholder(canonical string) bool {
	if canonical == "" {
		return true
	}
	return vocabulary.contains(canonical)
}

// IsMissingToken normalizes raw and matches the result.
func IsMissingToken(raw string) bool {
	return IsPlaceholder(Normalize(raw))
}
