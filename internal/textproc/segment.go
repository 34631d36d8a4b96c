package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is one segment of the input with byte offsets into the
// original, untrimmed text. Start/End always index the exact characters
// the caller passed in, so highlight rendering and TTS sync stay aligned
// with what the user typed.
type Sentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Words that end with a period without ending a sentence: titles, units,
// ordinals and Latin abbreviations.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "vs": true, "etc": true, "inc": true,
	"ltd": true, "corp": true, "co": true, "st": true, "ave": true,
	"blvd": true, "rd": true, "apt": true, "no": true, "vol": true,
	"pp": true, "ed": true, "am": true, "pm": true, "e.g": true,
	"i.e": true, "cf": true, "ca": true, "approx": true, "est": true,
	"min": true, "max": true,
}

func isAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	lower := strings.ToLower(word)
	if n := len(lower); n > 0 {
		switch lower[n-1] {
		case '.', '!', '?':
			lower = lower[:n-1]
		}
	}
	return abbreviations[lower]
}

// SplitSentences splits text into ordered sentences with byte offsets
// into the original input. A '.', '!' or '?' ends a sentence unless the
// word before it is a known abbreviation or the period sits between two
// digits; the boundary is confirmed only when the next non-whitespace
// character is an ASCII uppercase letter or digit, or the text ends.
// Input with no terminator at all comes back as a single sentence.
// Empty or whitespace-only input returns nil.
func SplitSentences(text string) []Sentence {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var sentences []Sentence

	// Cursor into the original text; begins at the first non-whitespace
	// character so offsets survive leading padding.
	sentenceStart := skipSpace(text, 0)
	curStart := 0 // index into trimmed where the pending sentence begins

	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}

		// The whitespace-delimited word immediately before the terminator.
		fields := strings.Fields(trimmed[curStart : i+1])
		var beforePunct string
		if len(fields) > 0 {
			beforePunct = fields[len(fields)-1]
		}
		if isAbbreviation(beforePunct) {
			continue
		}

		// A period between two digits is a decimal point, not a boundary.
		if c == '.' && i > 0 && isASCIIDigit(trimmed[i-1]) &&
			i+1 < len(trimmed) && isASCIIDigit(trimmed[i+1]) {
			continue
		}

		j := skipSpace(trimmed, i+1)
		if j < len(trimmed) && !startsSentence(trimmed[j]) {
			continue
		}

		if sentence := strings.TrimSpace(trimmed[curStart : i+1]); sentence != "" {
			start := sentenceStart
			end := start + len(sentence)
			sentences = append(sentences, Sentence{Text: sentence, Start: start, End: end})
			sentenceStart = skipSpace(text, end)
		}
		curStart = i + 1
	}

	if rest := strings.TrimSpace(trimmed[curStart:]); rest != "" {
		sentences = append(sentences, Sentence{
			Text:  rest,
			Start: sentenceStart,
			End:   sentenceStart + len(rest),
		})
	}

	if len(sentences) == 0 {
		sentences = []Sentence{{Text: trimmed, Start: 0, End: len(trimmed)}}
	}
	return sentences
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func startsSentence(c byte) bool {
	return (c >= 'A' && c <= 'Z') || isASCIIDigit(c)
}
