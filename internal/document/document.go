// Package document builds and models the immutable analyzed
// representation of one input text: segmented sentences with exact
// offsets, a per-sentence term-frequency index, an extractive summary,
// a simplified rewrite, entity highlights and structure markers.
package document

import (
	"strings"
	"time"

	"github.com/readable-app/readable/internal/textproc"
)

// Range is a byte-offset window into a document's raw text.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SentenceMeta is the per-sentence index entry the question answerer
// scores against.
type SentenceMeta struct {
	Text     string         `json:"text"`
	Tokens   []string       `json:"tokens"`
	TermFreq map[string]int `json:"term_freq"`
	Range    Range          `json:"range"`
}

// Document is immutable once built. RawText is the authoritative source
// for every offset in SentenceRanges and Highlights.
type Document struct {
	ID             string               `json:"id"`
	RawText        string               `json:"raw_text"`
	Sentences      []string             `json:"sentences"`
	SentenceMeta   []SentenceMeta       `json:"sentence_meta"`
	SentenceRanges []Range              `json:"sentence_ranges"`
	Summary        string               `json:"summary"`
	SimplifiedText string               `json:"simplified_text"`
	Highlights     textproc.KeySpans    `json:"highlights"`
	Structures     []textproc.Structure `json:"structures"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Build analyzes raw text into a Document. The segmenter's output is the
// single source of truth for Sentences, SentenceRanges and SentenceMeta;
// they are never recomputed by re-searching the text, which would
// misalign offsets when duplicate sentences occur. Two calls on the same
// input produce structurally identical documents apart from ID,
// CreatedAt and span ids. Callers are expected to reject empty input;
// given it anyway, Build returns a document with empty fields.
func Build(text string) Document {
	cleaned := strings.TrimSpace(text)
	segments := textproc.SplitSentences(cleaned)

	sentences := make([]string, len(segments))
	ranges := make([]Range, len(segments))
	meta := make([]SentenceMeta, len(segments))
	for i, seg := range segments {
		sentences[i] = seg.Text
		ranges[i] = Range{Start: seg.Start, End: seg.End}

		tokens := textproc.Tokenize(seg.Text)
		freq := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			freq[tok]++
		}
		meta[i] = SentenceMeta{Text: seg.Text, Tokens: tokens, TermFreq: freq, Range: ranges[i]}
	}

	return Document{
		ID:             textproc.NewID(),
		RawText:        cleaned,
		Sentences:      sentences,
		SentenceMeta:   meta,
		SentenceRanges: ranges,
		Summary:        textproc.SummarizeText(cleaned, sentences),
		SimplifiedText: textproc.SimplifyText(cleaned, sentences),
		Highlights:     textproc.ExtractKeySpans(cleaned),
		Structures:     textproc.DetectStructure(cleaned),
		CreatedAt:      time.Now().UTC(),
	}
}
