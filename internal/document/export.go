package document

import (
	"strings"
	"time"
)

// ExportSummary renders a document as a plain-text digest: summary, key
// dates and amounts, then the simplified text. Used by the export
// endpoint so users can share what the engine extracted.
func ExportSummary(doc *Document) string {
	if doc == nil {
		return ""
	}

	lines := []string{
		"Document: " + doc.ID,
		"Created: " + doc.CreatedAt.Format(time.RFC3339),
		"",
		"=== Summary ===",
	}
	if doc.Summary != "" {
		lines = append(lines, doc.Summary)
	} else {
		lines = append(lines, "No summary available.")
	}
	lines = append(lines, "", "=== Key Information ===")

	if len(doc.Highlights.Dates) > 0 {
		lines = append(lines, "Dates:")
		for _, d := range doc.Highlights.Dates {
			lines = append(lines, "  - "+d.Value)
		}
	}
	if len(doc.Highlights.Amounts) > 0 {
		lines = append(lines, "Amounts:")
		for _, a := range doc.Highlights.Amounts {
			lines = append(lines, "  - "+a.Value)
		}
	}

	lines = append(lines, "", "=== Simplified Text ===")
	if doc.SimplifiedText != "" {
		lines = append(lines, doc.SimplifiedText)
	} else {
		lines = append(lines, doc.RawText)
	}
	return strings.Join(lines, "\n")
}
