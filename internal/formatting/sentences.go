// Package formatting holds the pure text-structuring functions used to
// turn free-form interview answers into resume content: sentence
// splitting, bullet grouping, skill extraction, and summary integration.
// Nothing in this package touches the network or session state.
package formatting

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on sentence-ending punctuation and returns
// the trimmed, non-empty fragments.
func SplitSentences(text string) []string {
	parts := sentenceBoundaryRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
