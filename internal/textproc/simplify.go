package textproc

import (
	"regexp"
	"strings"
)

const summaryWordLimit = 40

var (
	clausePunct = regexp.MustCompile(`[,;]`)
	connectives = regexp.MustCompile(`(?i)\b(however|therefore|moreover|furthermore|additionally)\b`)
	danglingDot = regexp.MustCompile(`\s+\.`)
)

// SummarizeText produces a short extractive summary: the first two
// sentences when supplied, otherwise the first 40 whitespace-delimited
// words of text. Empty input yields "".
func SummarizeText(text string, sentences []string) string {
	if text == "" {
		return ""
	}
	if len(sentences) > 0 {
		n := min(2, len(sentences))
		return strings.TrimSpace(strings.Join(sentences[:n], " "))
	}
	words := strings.Fields(text)
	if len(words) > summaryWordLimit {
		words = words[:summaryWordLimit]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// SimplifyText rewrites text sentence by sentence: commas and semicolons
// become periods, formal connectives are dropped, and the results are
// rejoined with ". " with any stranded " ." runs collapsed. When no
// sentences are supplied the text is segmented first.
func SimplifyText(text string, sentences []string) string {
	if text == "" {
		return ""
	}
	if len(sentences) == 0 {
		for _, s := range SplitSentences(text) {
			sentences = append(sentences, s.Text)
		}
	}
	simplified := make([]string, 0, len(sentences))
	for _, s := range sentences {
		s = clausePunct.ReplaceAllString(s, ".")
		s = connectives.ReplaceAllString(s, "")
		simplified = append(simplified, strings.TrimSpace(s))
	}
	joined := strings.Join(simplified, ". ")
	return strings.TrimSpace(danglingDot.ReplaceAllString(joined, "."))
}
