package textproc

import "regexp"

// Span is a located date or amount match. Index is the byte offset of
// Value within the text the span was extracted from.
type Span struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Index int    `json:"index"`
}

// KeySpans groups the located entities of one text.
type KeySpans struct {
	Dates   []Span `json:"dates"`
	Amounts []Span `json:"amounts"`
}

// Compiled once and shared; matching never mutates a *Regexp, so there
// is no per-call scan state to reset.
var (
	datePattern  = regexp.MustCompile(`(?i)\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?|\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})\b`)
	moneyPattern = regexp.MustCompile(`\b(?:USD|EUR|GBP|\$|€|£)?\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?\b`)
)

// ExtractKeySpans scans text for date-like and amount-like substrings.
// Every match is kept in document order; no deduplication.
func ExtractKeySpans(text string) KeySpans {
	spans := KeySpans{Dates: []Span{}, Amounts: []Span{}}
	if text == "" {
		return spans
	}
	for _, m := range datePattern.FindAllStringIndex(text, -1) {
		spans.Dates = append(spans.Dates, Span{ID: NewID(), Value: text[m[0]:m[1]], Index: m[0]})
	}
	for _, m := range moneyPattern.FindAllStringIndex(text, -1) {
		spans.Amounts = append(spans.Amounts, Span{ID: NewID(), Value: text[m[0]:m[1]], Index: m[0]})
	}
	return spans
}

// FindDates returns the raw date-like substrings of text, in order.
func FindDates(text string) []string {
	return datePattern.FindAllString(text, -1)
}

// FindAmounts returns the raw amount-like substrings of text, in order.
func FindAmounts(text string) []string {
	return moneyPattern.FindAllString(text, -1)
}

// HasDate reports whether text contains a date-like substring.
func HasDate(text string) bool {
	return datePattern.MatchString(text)
}

// HasAmount reports whether text contains an amount-like substring.
func HasAmount(text string) bool {
	return moneyPattern.MatchString(text)
}
