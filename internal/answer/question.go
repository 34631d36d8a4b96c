// Package answer scores the sentences of an analyzed document against a
// free-text question and picks a best answer with a heuristic 0-100
// confidence. Everything here is pure: no state survives a call.
package answer

import (
	"regexp"
	"strings"

	"github.com/readable-app/readable/internal/textproc"
)

// QuestionType is the detected intent of a question, used to pick
// type-specific scoring boosts and fallbacks.
type QuestionType string

const (
	TypeDate     QuestionType = "date"
	TypeAmount   QuestionType = "amount"
	TypePerson   QuestionType = "person"
	TypeLocation QuestionType = "location"
	TypeDetail   QuestionType = "detail"
	TypeGeneral  QuestionType = "general"
)

// Cue patterns are tried in priority order; the first hit wins.
var (
	dateCues     = regexp.MustCompile(`\b(when|what time|what date|which day)\b`)
	amountCues   = regexp.MustCompile(`\b(how much|what.*cost|price|fee|amount|dollar|money)\b`)
	personCues   = regexp.MustCompile(`\b(who|whom|whose)\b`)
	locationCues = regexp.MustCompile(`\b(where|location|place)\b`)
	detailCues   = regexp.MustCompile(`\b(how|why|what|which)\b`)
)

// Question words and copulas that carry no lexical signal.
var stopWords = map[string]bool{
	"the": true, "is": true, "are": true, "was": true, "were": true,
	"what": true, "when": true, "where": true, "who": true, "how": true,
	"why": true, "which": true, "can": true, "will": true, "does": true,
	"do": true,
}

// analysis is the ephemeral per-question breakdown. It is computed fresh
// for every call and never persisted.
type analysis struct {
	questionType QuestionType
	keywords     []string
	tokens       []string
	dates        []string
	amounts      []string
}

func analyzeQuestion(question string) analysis {
	lower := strings.ToLower(question)
	tokens := textproc.Tokenize(question)

	questionType := TypeGeneral
	switch {
	case dateCues.MatchString(lower):
		questionType = TypeDate
	case amountCues.MatchString(lower):
		questionType = TypeAmount
	case personCues.MatchString(lower):
		questionType = TypePerson
	case locationCues.MatchString(lower):
		questionType = TypeLocation
	case detailCues.MatchString(lower):
		questionType = TypeDetail
	}

	keywords := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !stopWords[t] {
			keywords = append(keywords, t)
		}
	}

	return analysis{
		questionType: questionType,
		keywords:     keywords,
		tokens:       tokens,
		dates:        textproc.FindDates(question),
		amounts:      textproc.FindAmounts(question),
	}
}

// questionBigrams forms consecutive word pairs from the first three
// question words longer than three characters. A verbatim bigram hit in
// a sentence is a strong relevance signal ("due date", "late fees").
func questionBigrams(question string) []string {
	cleaned := strings.NewReplacer("?", "", "!", "").Replace(strings.ToLower(question))
	var meaningful []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) > 3 {
			meaningful = append(meaningful, w)
			if len(meaningful) == 3 {
				break
			}
		}
	}
	var bigrams []string
	for i := 0; i+1 < len(meaningful); i++ {
		bigrams = append(bigrams, meaningful[i]+" "+meaningful[i+1])
	}
	return bigrams
}
