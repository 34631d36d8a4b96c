package document

// Validate reports whether a document carries the fields the engine
// relies on. Documents can arrive from persisted state outside the
// builder, so consumers check shape before scoring or serving them.
func Validate(doc *Document) bool {
	if doc == nil {
		return false
	}
	if doc.ID == "" || doc.RawText == "" || doc.CreatedAt.IsZero() {
		return false
	}
	if len(doc.Sentences) != len(doc.SentenceMeta) {
		return false
	}
	if len(doc.Sentences) != len(doc.SentenceRanges) {
		return false
	}
	return true
}
