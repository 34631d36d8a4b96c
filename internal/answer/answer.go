package answer

import (
	"sort"
	"strings"

	"github.com/readable-app/readable/internal/document"
)

// SourceKind tags where an answer came from.
type SourceKind string

const (
	SourceSentence        SourceKind = "sentence"
	SourceDateHighlight   SourceKind = "date_highlight"
	SourceAmountHighlight SourceKind = "amount_highlight"
	SourceSummary         SourceKind = "summary"
	SourceFallback        SourceKind = "fallback"
)

// Source is the provenance of an answer. SentenceIndex and Sentence are
// populated only for SourceSentence.
type Source struct {
	Kind          SourceKind `json:"kind"`
	SentenceIndex int        `json:"sentence_index,omitempty"`
	Sentence      string     `json:"sentence,omitempty"`
}

// Result is the outcome of answering one question. A nil Source means no
// answer could be produced at all.
type Result struct {
	Answer     string  `json:"answer"`
	Confidence int     `json:"confidence"`
	Source     *Source `json:"source"`
}

// Ask scores every sentence of doc against question and returns the best
// match, falling back through highlights, summary and first sentence
// when nothing scores. It never panics on degenerate input: an empty
// question or a document missing its sentence index yields a zero
// result.
func Ask(question string, doc *document.Document) Result {
	if strings.TrimSpace(question) == "" || doc == nil ||
		len(doc.Sentences) == 0 || len(doc.SentenceMeta) == 0 {
		return Result{}
	}

	q := analyzeQuestion(question)
	if len(q.tokens) == 0 && len(q.dates) == 0 && len(q.amounts) == 0 {
		return Result{}
	}

	bigrams := questionBigrams(question)
	total := len(doc.SentenceMeta)

	type ranked struct {
		index int
		score float64
	}
	scores := make([]ranked, total)
	for i, meta := range doc.SentenceMeta {
		scores[i] = ranked{index: i, score: scoreSentence(meta, i, total, q, bigrams)}
	}
	// Stable: ties keep document order, favoring the earlier sentence.
	sort.SliceStable(scores, func(a, b int) bool { return scores[a].score > scores[b].score })

	top := scores[0]
	var second float64
	if total > 1 {
		second = scores[1].score
	}

	if top.score >= acceptThreshold {
		conf := confidence(top.score, top.score-second)
		if conf < minConfidence {
			conf = minConfidence
		}
		sentence := doc.SentenceMeta[top.index].Text
		return Result{
			Answer:     sentence,
			Confidence: conf,
			Source:     &Source{Kind: SourceSentence, SentenceIndex: top.index, Sentence: sentence},
		}
	}

	return fallback(q, doc)
}

// fallback is the tiered no-match chain: a highlight of the question's
// type, then the summary, then the opening of the document.
func fallback(q analysis, doc *document.Document) Result {
	if q.questionType == TypeDate && len(doc.Highlights.Dates) > 0 {
		if s, ok := sentenceContaining(doc, doc.Highlights.Dates[0].Value); ok {
			return Result{Answer: s, Confidence: 50, Source: &Source{Kind: SourceDateHighlight}}
		}
	}
	if q.questionType == TypeAmount && len(doc.Highlights.Amounts) > 0 {
		if s, ok := sentenceContaining(doc, doc.Highlights.Amounts[0].Value); ok {
			return Result{Answer: s, Confidence: 50, Source: &Source{Kind: SourceAmountHighlight}}
		}
	}
	if doc.Summary != "" {
		return Result{Answer: doc.Summary, Confidence: 25, Source: &Source{Kind: SourceSummary}}
	}
	answer := ""
	if len(doc.Sentences) > 0 {
		answer = doc.Sentences[0]
	} else if len(doc.RawText) > 200 {
		answer = doc.RawText[:200]
	} else {
		answer = doc.RawText
	}
	return Result{Answer: answer, Confidence: 15, Source: &Source{Kind: SourceFallback}}
}

func sentenceContaining(doc *document.Document, value string) (string, bool) {
	for _, s := range doc.Sentences {
		if strings.Contains(s, value) {
			return s, true
		}
	}
	return "", false
}
