package answer

import (
	"math"
	"strings"

	"github.com/readable-app/readable/internal/document"
	"github.com/readable-app/readable/internal/textproc"
)

// Scoring weights, kept in one place so the heuristic stays auditable.
// Changing any of these changes observable answers.
const (
	keywordWeight      = 3.0  // per question keyword present in the sentence
	tokenFreqWeight    = 2.0  // per occurrence of any question token
	typedEntityBoost   = 5.0  // sentence has an entity of the question's type
	literalEntityBoost = 10.0 // sentence contains an entity quoted in the question
	phraseBoost        = 8.0  // per verbatim question bigram in the sentence
	positionWeight     = 2.0  // scaled by how early the sentence appears

	// Confidence blend: the top score saturates at scoreCeiling, the gap
	// to the runner-up saturates above gapSaturation.
	scoreCeiling  = 20.0
	gapSaturation = 3.0

	acceptThreshold = 1.0 // top sentence accepted as the answer at or above this
	minConfidence   = 40  // floor once a sentence match is accepted
)

// scoreSentence accumulates the relevance of one sentence to the
// analyzed question. Deterministic for fixed inputs.
func scoreSentence(meta document.SentenceMeta, idx, total int, q analysis, bigrams []string) float64 {
	lower := strings.ToLower(meta.Text)
	var score float64

	// Keyword overlap, by term-frequency lookup or raw containment.
	for _, kw := range q.keywords {
		if meta.TermFreq[kw] > 0 || strings.Contains(lower, kw) {
			score += keywordWeight
		}
	}

	// Frequency of every question token, keywords or not.
	for _, tok := range q.tokens {
		score += float64(meta.TermFreq[tok]) * tokenFreqWeight
	}

	switch q.questionType {
	case TypeDate:
		if textproc.HasDate(meta.Text) {
			score += typedEntityBoost
		}
		for _, d := range q.dates {
			if strings.Contains(meta.Text, d) {
				score += literalEntityBoost
				break
			}
		}
	case TypeAmount:
		if textproc.HasAmount(meta.Text) {
			score += typedEntityBoost
		}
		for _, a := range q.amounts {
			if strings.Contains(meta.Text, a) {
				score += literalEntityBoost
				break
			}
		}
	}

	for _, bg := range bigrams {
		if strings.Contains(lower, bg) {
			score += phraseBoost
		}
	}

	// Earlier sentences carry more weight; a deliberate simplicity
	// trade-off even when a later sentence is the better semantic match.
	score += float64(total-idx) / float64(total) * positionWeight

	return score
}

// confidence blends the absolute top score with its gap to the
// runner-up into a 0-100 integer. Not a calibrated probability.
func confidence(top, gap float64) int {
	normalized := math.Min(1, top/scoreCeiling)
	gapTerm := gap / 10 * 0.3
	if gap > gapSaturation {
		gapTerm = 0.3
	}
	return int(math.Round((normalized*0.7 + gapTerm) * 100))
}
