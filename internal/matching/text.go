package matching

import (
	"strings"
	"unicode"
)

// Stopwords stripped during tokenization. Deliberately small: the goal is to
// keep filler out of the BM25 query, not full linguistic stopping.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {},
	"you": {}, "your": {}, "our": {}, "we": {},
	"is": {}, "are": {}, "to": {}, "in": {},
	"on": {}, "at": {}, "of": {},
}

const minTokenLen = 3

// Tokenize lower-cases the input, strips non-alphanumeric characters, splits
// on whitespace and drops stopwords and tokens shorter than three runes.
// It is a pure function and safe for concurrent use.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTokenLen {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
