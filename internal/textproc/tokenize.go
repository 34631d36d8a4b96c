package textproc

import (
	"regexp"
	"strings"
)

var nonWordRun = regexp.MustCompile(`\W+`)

// Tokenize lowercases text and splits it on runs of non-word characters,
// discarding tokens of one or two characters. It is the shared word
// splitter for the sentence index and for question analysis.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	parts := nonWordRun.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) > 2 {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
