package textproc

import (
	"regexp"
	"strings"
)

// StructureType classifies a line-level structure marker.
type StructureType string

const (
	StructureList    StructureType = "list"
	StructureTable   StructureType = "table"
	StructureHeading StructureType = "heading"
)

// Structure records one classified line. LineIndex counts lines of the
// input as given, including blank lines.
type Structure struct {
	Type      StructureType `json:"type"`
	LineIndex int           `json:"line_index"`
	Content   string        `json:"content"`
}

var (
	bulletItem   = regexp.MustCompile(`^[-*•]\s`)
	numberedItem = regexp.MustCompile(`^\d+[.)]\s`)
	tableCell    = regexp.MustCompile(`\|\s*\|`)
	headingLine  = regexp.MustCompile(`^#{1,6}\s`)
)

// DetectStructure classifies the lines of text as list, table or heading
// markers. The first matching rule wins per line; blank and unmatched
// lines are skipped.
func DetectStructure(text string) []Structure {
	var structures []Structure
	for idx, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch {
		case bulletItem.MatchString(trimmed) || numberedItem.MatchString(trimmed):
			structures = append(structures, Structure{Type: StructureList, LineIndex: idx, Content: trimmed})
		case tableCell.MatchString(trimmed):
			structures = append(structures, Structure{Type: StructureTable, LineIndex: idx, Content: trimmed})
		case headingLine.MatchString(trimmed):
			structures = append(structures, Structure{Type: StructureHeading, LineIndex: idx, Content: trimmed})
		}
	}
	return structures
}
