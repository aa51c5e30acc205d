package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/resumeparse/internal/layout"
)

// Synthetic geometry for formats without page coordinates. Each emitted line
// sits one LinePitch below the previous one; a gap leaves one empty pitch.
const (
	LinePitch   = 14.0
	BodySize    = 10.0
	HeadingSize = 16.0
	IndentStep  = 10.0
	LeftMargin  = 50.0
	TopMargin   = 50.0

	bulletGlyph = "•"
	charWidth   = 0.5
)

// span is a run of text sharing one weight and size.
type span struct {
	text string
	bold bool
	size float64
}

// flow lays out lines of spans top to bottom on a single page.
type flow struct {
	tokens []layout.Token
	row    int
	gapped bool
}

// line emits one line of spans at the given indent level. A bulleted line
// starts with a glyph token one step left of the text.
func (f *flow) line(spans []span, indent int, bulleted bool) {
	if !hasText(spans) {
		return
	}
	y := TopMargin + float64(f.row)*LinePitch
	x := LeftMargin + float64(indent)*IndentStep

	if bulleted {
		f.tokens = append(f.tokens, layout.Token{
			Text: bulletGlyph, X: x, Y: y,
			Width: BodySize * charWidth, FontSize: BodySize, FontWeight: layout.WeightNormal,
		})
		x += IndentStep
	}

	started := false
	for _, s := range spans {
		txt := s.text
		if !started {
			txt = strings.TrimLeft(txt, " \t")
		}
		if txt == "" {
			continue
		}
		started = true
		size := s.size
		if size <= 0 {
			size = BodySize
		}
		w := float64(utf8.RuneCountInString(txt)) * size * charWidth
		weight := layout.WeightNormal
		if s.bold {
			weight = layout.WeightBold
		}
		f.tokens = append(f.tokens, layout.Token{
			Text: txt, X: x, Y: y, Width: w, FontSize: size, FontWeight: weight,
		})
		x += w
	}
	f.row++
	f.gapped = false
}

// gap leaves one empty row unless the previous call already did.
func (f *flow) gap() {
	if f.gapped || f.row == 0 {
		return
	}
	f.row++
	f.gapped = true
}

// heading emits a bold, enlarged line preceded by a gap.
func (f *flow) heading(text string) {
	f.gap()
	f.line([]span{{text: strings.TrimSpace(text), bold: true, size: HeadingSize}}, 0, false)
}

// splitLines breaks spans at embedded newlines.
func splitLines(spans []span) [][]span {
	var out [][]span
	var cur []span
	for _, s := range spans {
		parts := strings.Split(s.text, "\n")
		for i, p := range parts {
			if i > 0 {
				out = append(out, cur)
				cur = nil
			}
			if p != "" {
				cur = append(cur, span{text: p, bold: s.bold, size: s.size})
			}
		}
	}
	return append(out, cur)
}

func hasText(spans []span) bool {
	for _, s := range spans {
		if strings.TrimSpace(s.text) != "" {
			return true
		}
	}
	return false
}
