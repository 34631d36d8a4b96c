package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings come
// back as "# ..." lines and list items as "- ..." lines so the document
// structure survives the flattening.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var buf strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		writeBlock(&buf, n, src)
	}
	return strings.TrimSpace(buf.String()), nil
}

func writeBlock(buf *strings.Builder, n ast.Node, src []byte) {
	switch node := n.(type) {
	case *ast.Heading:
		writeParagraphGap(buf)
		buf.WriteString(strings.Repeat("#", node.Level))
		buf.WriteString(" ")
		buf.WriteString(string(node.Text(src)))
		buf.WriteString("\n")

	case *ast.List:
		writeParagraphGap(buf)
		ordinal := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			itemText := extractText(item, src)
			if itemText == "" {
				continue
			}
			if node.IsOrdered() {
				buf.WriteString(strconv.Itoa(ordinal) + ". " + itemText)
				ordinal++
			} else {
				buf.WriteString("- " + itemText)
			}
			buf.WriteString("\n")
		}

	default:
		t := extractText(n, src)
		if t != "" {
			writeParagraphGap(buf)
			buf.WriteString(t)
			buf.WriteString("\n")
		}
	}
}

func writeParagraphGap(buf *strings.Builder) {
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
}

// extractText gets the text content of a goldmark AST node. Inline
// children are preferred so emphasis and link markers are stripped;
// leaf blocks like code fences fall back to their raw source lines.
func extractText(n ast.Node, src []byte) string {
	if n.ChildCount() > 0 {
		var buf bytes.Buffer
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else if s := extractText(c, src); s != "" {
				if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != ' ' && b[len(b)-1] != '\n' {
					buf.WriteByte(' ')
				}
				buf.WriteString(s)
			}
		}
		return strings.TrimSpace(buf.String())
	}
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}
	return ""
}
