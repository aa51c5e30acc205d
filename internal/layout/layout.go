// Package layout groups positioned text tokens into lines.
package layout

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// FontWeight is the weight attribute reported by a decoder.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// Token is one positioned text fragment emitted by a decoder.
// Y grows downward; Width is optional (0 means unknown).
type Token struct {
	Text       string     `json:"text"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width,omitempty"`
	FontSize   float64    `json:"fontSize"`
	FontWeight FontWeight `json:"fontWeight"`
	Page       int        `json:"page"`
}

// IsBold reports whether the token was rendered in a bold face.
func (t Token) IsBold() bool {
	return t.FontWeight == WeightBold
}

// Line is a horizontal cluster of tokens sharing a vertical band on one page.
type Line struct {
	Y        float64 `json:"y"`
	X        float64 `json:"x"`
	Page     int     `json:"page"`
	Tokens   []Token `json:"tokens"`
	Text     string  `json:"text"`
	IsBold   bool    `json:"isBold"`
	FontSize float64 `json:"fontSize"`
}

// IsBlank reports whether the line carries no visible text.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Trimmed returns the line text without surrounding whitespace.
func (l Line) Trimmed() string {
	return strings.TrimSpace(l.Text)
}

// Config holds the line builder thresholds.
type Config struct {
	// YTolerance is the maximum vertical distance from the line's reference y
	// for a token to join the line.
	YTolerance float64 `yaml:"y_tolerance"`

	// SpaceGap is the horizontal gap above which adjacent tokens are joined
	// with a space.
	SpaceGap float64 `yaml:"space_gap"`

	// AvgCharWidth estimates a glyph's width as a fraction of the font size
	// when the decoder did not report token widths.
	AvgCharWidth float64 `yaml:"avg_char_width"`

	// NormalizeUnicode applies NFKC normalization to token text.
	NormalizeUnicode bool `yaml:"normalize_unicode"`
}

// DefaultConfig returns the default line builder thresholds.
func DefaultConfig() Config {
	return Config{
		YTolerance:       3.0,
		SpaceGap:         1.5,
		AvgCharWidth:     0.5,
		NormalizeUnicode: true,
	}
}

// BuildLines clusters tokens into lines in reading order. Tokens are consumed
// in emission order; a page change always closes the current line.
func BuildLines(tokens []Token, cfg Config) []Line {
	if len(tokens) == 0 {
		return []Line{}
	}

	lines := make([]Line, 0, len(tokens)/4+1)
	var current []Token
	var refY float64
	var page int

	for _, tok := range tokens {
		if len(current) == 0 {
			current = append(current, tok)
			refY, page = tok.Y, tok.Page
			continue
		}
		if tok.Page == page && absFloat64(tok.Y-refY) <= cfg.YTolerance {
			current = append(current, tok)
			continue
		}
		lines = append(lines, closeLine(current, cfg))
		current = []Token{tok}
		refY, page = tok.Y, tok.Page
	}
	if len(current) > 0 {
		lines = append(lines, closeLine(current, cfg))
	}

	return lines
}

// closeLine orders the accumulated tokens left to right and assembles the line.
func closeLine(tokens []Token, cfg Config) Line {
	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	line := Line{
		Tokens: sorted,
		Page:   sorted[0].Page,
		X:      sorted[0].X,
	}

	totalY := 0.0
	for _, t := range sorted {
		totalY += t.Y
	}
	line.Y = totalY / float64(len(sorted))
	line.Text = assembleText(sorted, cfg)
	line.IsBold = allBold(sorted)
	line.FontSize = dominantFontSize(sorted)

	return line
}

// assembleText joins tokens, inserting a single space across visible gaps.
func assembleText(tokens []Token, cfg Config) string {
	var sb strings.Builder
	for i, tok := range tokens {
		txt := tok.Text
		if cfg.NormalizeUnicode {
			txt = norm.NFKC.String(txt)
		}
		if i > 0 {
			prev := tokens[i-1]
			gap := tok.X - (prev.X + tokenWidth(prev, cfg))
			if gap > cfg.SpaceGap && !endsWithSpace(sb.String()) && !startsWithSpace(txt) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(txt)
	}
	return sb.String()
}

// tokenWidth returns the reported width, or an estimate from the rune count.
func tokenWidth(t Token, cfg Config) float64 {
	if t.Width > 0 {
		return t.Width
	}
	return float64(utf8.RuneCountInString(t.Text)) * t.FontSize * cfg.AvgCharWidth
}

// allBold is true when every token with visible text is bold.
func allBold(tokens []Token) bool {
	seen := false
	for _, t := range tokens {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		if !t.IsBold() {
			return false
		}
		seen = true
	}
	return seen
}

// dominantFontSize returns the size carrying the most runes. Ties go to the
// size seen first.
func dominantFontSize(tokens []Token) float64 {
	var sizes []float64
	weight := make(map[float64]int)
	for _, t := range tokens {
		if _, ok := weight[t.FontSize]; !ok {
			sizes = append(sizes, t.FontSize)
		}
		weight[t.FontSize] += utf8.RuneCountInString(strings.TrimSpace(t.Text))
	}

	best := sizes[0]
	for _, s := range sizes[1:] {
		if weight[s] > weight[best] {
			best = s
		}
	}
	return best
}

func endsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

func startsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
