// Package bullets splits a block of lines into a preamble and bullet entries.
package bullets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/resumeparse/internal/layout"
)

// Entry is one logical list item. Continuation lines are joined with "\n".
type Entry struct {
	Text string `json:"text"`
}

// Result is the output of Extract.
type Result struct {
	Preamble []layout.Line `json:"preamble"`
	Entries  []Entry       `json:"entries"`
}

// Texts returns the entry texts in order.
func (r Result) Texts() []string {
	out := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Text)
	}
	return out
}

// PreambleTexts returns the trimmed, non-blank preamble line texts.
func (r Result) PreambleTexts() []string {
	out := make([]string, 0, len(r.Preamble))
	for _, l := range r.Preamble {
		if txt := l.Trimmed(); txt != "" {
			out = append(out, txt)
		}
	}
	return out
}

// Config holds bullet recognition settings.
type Config struct {
	// Glyphs are the line prefixes that mark a bullet. A single ASCII glyph
	// followed by a digit is not a bullet, so "-5%" stays text.
	Glyphs []string `yaml:"glyphs"`

	// RequireSpaceAfterASCII additionally rejects single ASCII glyphs not
	// followed by whitespace, so "-Built" and "*nix" are not bullets.
	RequireSpaceAfterASCII bool `yaml:"require_space_after_ascii"`

	// IndentTolerance is how far left of its bullet a line may start and
	// still continue that bullet.
	IndentTolerance float64 `yaml:"indent_tolerance"`
}

// DefaultConfig returns the default glyph set and tolerance.
func DefaultConfig() Config {
	return Config{
		Glyphs:          []string{"•", "◦", "▪", "●", "‣", "-", "*"},
		IndentTolerance: 2.0,
	}
}

// IsBulleted reports whether the line starts with a bullet glyph.
func IsBulleted(line layout.Line, cfg Config) bool {
	_, ok := StripGlyph(line.Text, cfg)
	return ok
}

// StripGlyph removes a leading bullet glyph and the whitespace around it.
func StripGlyph(text string, cfg Config) (string, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	for _, g := range cfg.Glyphs {
		if g == "" || !strings.HasPrefix(s, g) {
			continue
		}
		rest := s[len(g):]
		if isASCIIGlyph(g) && rest != "" {
			r, _ := utf8.DecodeRuneInString(rest)
			if unicode.IsDigit(r) {
				continue
			}
			if cfg.RequireSpaceAfterASCII && !unicode.IsSpace(r) {
				continue
			}
		}
		return strings.TrimSpace(rest), true
	}
	return text, false
}

func isASCIIGlyph(g string) bool {
	return len(g) == 1 && g[0] < utf8.RuneSelf
}

// Extract splits lines at the first bulleted line. Lines before it are the
// preamble; from there each bullet starts an entry and unmarked lines indented
// at least as far as the bullet continue it. An unmarked line left of the
// bullet starts an entry of its own. Blank lines are skipped.
func Extract(lines []layout.Line, cfg Config) Result {
	res := Result{Preamble: []layout.Line{}, Entries: []Entry{}}

	first := -1
	for i, l := range lines {
		if IsBulleted(l, cfg) {
			first = i
			break
		}
	}
	if first < 0 {
		res.Preamble = append(res.Preamble, lines...)
		return res
	}
	res.Preamble = append(res.Preamble, lines[:first]...)

	var parts []string
	var anchorX float64
	open := false
	flush := func() {
		if open && len(parts) > 0 {
			res.Entries = append(res.Entries, Entry{Text: strings.Join(parts, "\n")})
		}
		parts = nil
		open = false
	}

	for _, l := range lines[first:] {
		if l.IsBlank() {
			continue
		}
		if txt, ok := StripGlyph(l.Text, cfg); ok {
			flush()
			open, anchorX = true, l.X
			if txt != "" {
				parts = append(parts, txt)
			}
			continue
		}
		if open && l.X >= anchorX-cfg.IndentTolerance {
			parts = append(parts, l.Trimmed())
			continue
		}
		flush()
		open, anchorX = true, l.X
		parts = append(parts, l.Trimmed())
	}
	flush()

	return res
}
