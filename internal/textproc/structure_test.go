package textproc

import "testing"

func TestDetectStructure(t *testing.T) {
	text := "# Payment Terms\n" +
		"\n" +
		"- net 30 days\n" +
		"* late fee applies\n" +
		"2. second step\n" +
		"|  |\n" +
		"plain prose line\n"

	got := DetectStructure(text)

	want := []Structure{
		{Type: StructureHeading, LineIndex: 0, Content: "# Payment Terms"},
		{Type: StructureList, LineIndex: 2, Content: "- net 30 days"},
		{Type: StructureList, LineIndex: 3, Content: "* late fee applies"},
		{Type: StructureList, LineIndex: 4, Content: "2. second step"},
		{Type: StructureTable, LineIndex: 5, Content: "|  |"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d structures, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("structure[%d]: expected %+v, got %+v", i, w, got[i])
		}
	}
}

func TestDetectStructure_LeadingWhitespaceTrimmed(t *testing.T) {
	got := DetectStructure("   - indented item")
	if len(got) != 1 {
		t.Fatalf("expected 1 structure, got %d", len(got))
	}
	if got[0].Type != StructureList || got[0].Content != "- indented item" {
		t.Errorf("unexpected structure %+v", got[0])
	}
}

func TestDetectStructure_NumberedHeadingIsList(t *testing.T) {
	// List rules run before the heading rule, so a line matching both is a
	// list entry.
	got := DetectStructure("1. # not a heading")
	if len(got) != 1 || got[0].Type != StructureList {
		t.Fatalf("expected list classification, got %+v", got)
	}
}

func TestDetectStructure_NoMarkers(t *testing.T) {
	if got := DetectStructure("just a paragraph\nand another"); len(got) != 0 {
		t.Errorf("expected no structures, got %+v", got)
	}
	if got := DetectStructure(""); len(got) != 0 {
		t.Errorf("expected no structures for empty text, got %+v", got)
	}
}
