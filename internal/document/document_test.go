package document

import (
	"strings"
	"testing"
	"time"
)

const sampleText = "The payment is due on January 15, 2024. Late fees apply after the due date. Contact us for help."

func TestBuild(t *testing.T) {
	doc := Build(sampleText)

	if doc.ID == "" {
		t.Errorf("expected non-empty id")
	}
	if doc.RawText != sampleText {
		t.Errorf("expected raw text preserved, got %q", doc.RawText)
	}
	if doc.CreatedAt.IsZero() {
		t.Errorf("expected created_at to be set")
	}
	if len(doc.Sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(doc.Sentences), doc.Sentences)
	}
	if doc.Sentences[0] != "The payment is due on January 15, 2024." {
		t.Errorf("unexpected first sentence %q", doc.Sentences[0])
	}
	if len(doc.Highlights.Dates) == 0 {
		t.Errorf("expected at least one date highlight")
	}
	if doc.Summary == "" {
		t.Errorf("expected a summary")
	}
	if doc.SimplifiedText == "" {
		t.Errorf("expected simplified text")
	}
}

func TestBuild_ParallelSlicesAligned(t *testing.T) {
	doc := Build(sampleText)

	if len(doc.Sentences) != len(doc.SentenceMeta) || len(doc.Sentences) != len(doc.SentenceRanges) {
		t.Fatalf("parallel slices misaligned: %d sentences, %d meta, %d ranges",
			len(doc.Sentences), len(doc.SentenceMeta), len(doc.SentenceRanges))
	}
	for i := range doc.Sentences {
		if doc.SentenceMeta[i].Text != doc.Sentences[i] {
			t.Errorf("meta[%d].Text = %q, want %q", i, doc.SentenceMeta[i].Text, doc.Sentences[i])
		}
		if doc.SentenceMeta[i].Range != doc.SentenceRanges[i] {
			t.Errorf("meta[%d].Range = %+v, want %+v", i, doc.SentenceMeta[i].Range, doc.SentenceRanges[i])
		}
	}
}

func TestBuild_RangesSliceRawText(t *testing.T) {
	doc := Build(sampleText)

	for i, r := range doc.SentenceRanges {
		if got := doc.RawText[r.Start:r.End]; got != doc.Sentences[i] {
			t.Errorf("raw_text[%d:%d] = %q, want sentence %q", r.Start, r.End, got, doc.Sentences[i])
		}
	}
}

func TestBuild_DuplicateSentencesKeepDistinctRanges(t *testing.T) {
	doc := Build("Same words here. Same words here.")

	if len(doc.SentenceRanges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(doc.SentenceRanges))
	}
	if doc.SentenceRanges[0] == doc.SentenceRanges[1] {
		t.Errorf("duplicate sentences collapsed to one range: %+v", doc.SentenceRanges)
	}
	for i, r := range doc.SentenceRanges {
		if doc.RawText[r.Start:r.End] != doc.Sentences[i] {
			t.Errorf("range[%d] does not slice its own sentence", i)
		}
	}
}

func TestBuild_TermFreq(t *testing.T) {
	doc := Build("The fee fee applies.")

	if len(doc.SentenceMeta) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(doc.SentenceMeta))
	}
	m := doc.SentenceMeta[0]
	if m.TermFreq["fee"] != 2 {
		t.Errorf("expected fee count 2, got %d", m.TermFreq["fee"])
	}
	if m.TermFreq["applies"] != 1 {
		t.Errorf("expected applies count 1, got %d", m.TermFreq["applies"])
	}
	if _, ok := m.TermFreq["the"]; !ok {
		t.Errorf("expected lowercased 3-letter token the to be indexed")
	}
}

func TestBuild_TrimsInput(t *testing.T) {
	doc := Build("   Hello there.   ")
	if doc.RawText != "Hello there." {
		t.Errorf("expected trimmed raw text, got %q", doc.RawText)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	doc := Build("   ")
	if doc.RawText != "" {
		t.Errorf("expected empty raw text, got %q", doc.RawText)
	}
	if len(doc.Sentences) != 0 {
		t.Errorf("expected no sentences, got %d", len(doc.Sentences))
	}
	if doc.ID == "" {
		t.Errorf("expected id even for empty input")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(sampleText)
	b := Build(sampleText)

	if a.ID == b.ID {
		t.Errorf("expected distinct ids per build")
	}
	if len(a.Sentences) != len(b.Sentences) {
		t.Fatalf("sentence counts differ: %d vs %d", len(a.Sentences), len(b.Sentences))
	}
	for i := range a.Sentences {
		if a.Sentences[i] != b.Sentences[i] {
			t.Errorf("sentence[%d] differs: %q vs %q", i, a.Sentences[i], b.Sentences[i])
		}
		if a.SentenceRanges[i] != b.SentenceRanges[i] {
			t.Errorf("range[%d] differs: %+v vs %+v", i, a.SentenceRanges[i], b.SentenceRanges[i])
		}
	}
	if a.Summary != b.Summary || a.SimplifiedText != b.SimplifiedText {
		t.Errorf("derived text differs between builds")
	}
}

func TestValidate(t *testing.T) {
	doc := Build(sampleText)
	if !Validate(&doc) {
		t.Errorf("expected built document to validate")
	}

	if Validate(nil) {
		t.Errorf("expected nil document to fail")
	}

	noID := doc
	noID.ID = ""
	if Validate(&noID) {
		t.Errorf("expected missing id to fail")
	}

	noText := doc
	noText.RawText = ""
	if Validate(&noText) {
		t.Errorf("expected missing raw text to fail")
	}

	noTime := doc
	noTime.CreatedAt = time.Time{}
	if Validate(&noTime) {
		t.Errorf("expected zero created_at to fail")
	}

	skewed := doc
	skewed.SentenceMeta = skewed.SentenceMeta[:len(skewed.SentenceMeta)-1]
	if Validate(&skewed) {
		t.Errorf("expected misaligned meta to fail")
	}

	skewedRanges := doc
	skewedRanges.SentenceRanges = append([]Range{}, skewedRanges.SentenceRanges...)
	skewedRanges.SentenceRanges = skewedRanges.SentenceRanges[:1]
	if Validate(&skewedRanges) {
		t.Errorf("expected misaligned ranges to fail")
	}
}

func TestExportSummary(t *testing.T) {
	doc := Build("The payment of $45.00 is due on January 15, 2024. Please pay on time.")
	out := ExportSummary(&doc)

	for _, want := range []string{
		"Document: " + doc.ID,
		"=== Summary ===",
		"=== Key Information ===",
		"Dates:",
		"  - January",
		"Amounts:",
		"=== Simplified Text ===",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q:\n%s", want, out)
		}
	}
}

func TestExportSummary_EmptySections(t *testing.T) {
	doc := Document{
		ID:        "test-id",
		RawText:   "raw body",
		CreatedAt: time.Now(),
	}
	out := ExportSummary(&doc)

	if !strings.Contains(out, "No summary available.") {
		t.Errorf("expected summary placeholder:\n%s", out)
	}
	if strings.Contains(out, "Dates:") || strings.Contains(out, "Amounts:") {
		t.Errorf("expected no entity sections:\n%s", out)
	}
	if !strings.Contains(out, "raw body") {
		t.Errorf("expected raw text fallback in simplified section:\n%s", out)
	}
}

func TestExportSummary_Nil(t *testing.T) {
	if got := ExportSummary(nil); got != "" {
		t.Errorf("expected empty export for nil document, got %q", got)
	}
}
