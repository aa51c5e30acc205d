package parser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/fumiama/go-docx"
)

// DOCXDecoder handles .docx files. Heading styles become headings, list
// styles become bulleted lines and run bold/size properties carry over.
type DOCXDecoder struct{}

func (d *DOCXDecoder) Decode(r io.Reader, filename string) ([]layout.Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	f := &flow{}
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		spans := docxSpans(para)
		switch {
		case docxIsHeading(para):
			f.heading(spanText(spans))
		case docxIsList(para):
			for _, l := range splitLines(spans) {
				f.line(l, 1, true)
			}
		default:
			if !hasText(spans) {
				f.gap()
				continue
			}
			for _, l := range splitLines(spans) {
				f.line(l, 0, false)
			}
		}
	}

	return checkText(f.tokens)
}

func docxStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
}

func docxIsHeading(para *docx.Paragraph) bool {
	style := docxStyle(para)
	return strings.HasPrefix(style, "heading") || style == "title"
}

func docxIsList(para *docx.Paragraph) bool {
	return strings.Contains(docxStyle(para), "list")
}

// docxSpans collects the paragraph's runs, including runs inside hyperlinks.
func docxSpans(para *docx.Paragraph) []span {
	var out []span
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			out = append(out, docxRunSpan(c)...)
		case *docx.Hyperlink:
			out = append(out, docxRunSpan(&c.Run)...)
		}
	}
	return out
}

func docxRunSpan(run *docx.Run) []span {
	var buf strings.Builder
	for _, rc := range run.Children {
		if t, ok := rc.(*docx.Text); ok {
			buf.WriteString(t.Text)
		}
	}
	if buf.Len() == 0 {
		return nil
	}

	s := span{text: buf.String(), size: BodySize}
	if props := run.RunProperties; props != nil {
		s.bold = props.Bold != nil
		if props.Size != nil {
			// w:sz is in half-points.
			if half, err := strconv.Atoi(props.Size.Val); err == nil && half > 0 {
				s.size = float64(half) / 2
			}
		}
	}
	return []span{s}
}
