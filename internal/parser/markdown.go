package parser

import (
	"io"
	"strings"

	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownDecoder handles Markdown files using goldmark. Headings become
// bold enlarged lines, list items become bulleted lines indented by nesting
// depth, and strong emphasis is bold.
type MarkdownDecoder struct{}

func (d *MarkdownDecoder) Decode(r io.Reader, filename string) ([]layout.Token, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	f := &flow{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		markdownBlock(f, n, src, 0)
	}
	return checkText(f.tokens)
}

func markdownBlock(f *flow, n ast.Node, src []byte, depth int) {
	switch node := n.(type) {
	case *ast.Heading:
		f.heading(spanText(markdownSpans(node, src, false)))
	case *ast.List:
		if depth == 0 {
			f.gap()
		}
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			markdownListItem(f, item, src, depth)
		}
	case *ast.Paragraph, *ast.TextBlock:
		if depth == 0 {
			f.gap()
		}
		for _, l := range splitLines(markdownSpans(node, src, false)) {
			f.line(l, depth, false)
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		f.gap()
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			f.line([]span{{text: strings.TrimRight(string(seg.Value(src)), "\r\n")}}, depth, false)
		}
	case *ast.ThematicBreak, *ast.HTMLBlock:
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			markdownBlock(f, c, src, depth)
		}
	}
}

// markdownListItem emits the item's first text block as a bulleted line and
// anything after it (continuations, nested lists) one level deeper.
func markdownListItem(f *flow, item ast.Node, src []byte, depth int) {
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			for _, l := range splitLines(markdownSpans(c, src, false)) {
				f.line(l, depth, first)
				first = false
			}
		default:
			markdownBlock(f, c, src, depth+1)
		}
	}
}

// markdownSpans flattens inline children into spans, marking strong
// emphasis bold. Line breaks become "\n".
func markdownSpans(n ast.Node, src []byte, bold bool) []span {
	var out []span
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			s := string(node.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				s += "\n"
			}
			out = append(out, span{text: s, bold: bold})
		case *ast.Emphasis:
			out = append(out, markdownSpans(node, src, bold || node.Level >= 2)...)
		case *ast.AutoLink:
			out = append(out, span{text: string(node.URL(src)), bold: bold})
		case *ast.RawHTML:
		default:
			out = append(out, markdownSpans(node, src, bold)...)
		}
	}
	return out
}

func spanText(spans []span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.text)
	}
	return strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " "))
}
