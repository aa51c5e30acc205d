package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/resumeparse/internal/layout"
)

// TextDecoder handles plain text files. Each source line becomes a line of
// tokens; leading spaces become indentation and blank lines become gaps.
// Short all-caps lines are emitted bold so they can act as headings.
type TextDecoder struct{}

// maxCapsHeading is the longest all-caps line treated as a heading.
const maxCapsHeading = 40

func (d *TextDecoder) Decode(r io.Reader, filename string) ([]layout.Token, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	f := &flow{}
	for scanner.Scan() {
		raw := strings.ReplaceAll(scanner.Text(), "\t", "    ")
		txt := strings.TrimSpace(raw)
		if txt == "" {
			f.gap()
			continue
		}
		indent := (len(raw) - len(strings.TrimLeft(raw, " "))) / 2
		f.line([]span{{text: txt, bold: isCapsHeading(txt), size: BodySize}}, indent, false)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return checkText(f.tokens)
}

func isCapsHeading(txt string) bool {
	if utf8.RuneCountInString(txt) > maxCapsHeading || !strings.ContainsFunc(txt, unicode.IsLetter) {
		return false
	}
	return strings.ToUpper(txt) == txt
}
