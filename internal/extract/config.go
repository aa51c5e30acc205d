// Package extract maps resume sections to typed record fields.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/resumeparse/internal/bullets"
)

// Config holds the field extractor heuristics.
type Config struct {
	Bullets bullets.Config `yaml:"bullets"`

	// GapRatio splits undated entry blocks at a vertical gap larger than this
	// multiple of the median line pitch.
	GapRatio float64 `yaml:"gap_ratio"`

	// HeaderMaxLength caps the second header line of an entry block.
	HeaderMaxLength int `yaml:"header_max_length"`

	JobTitleKeywords []string `yaml:"job_title_keywords"`
	DegreeKeywords   []string `yaml:"degree_keywords"`
	SchoolKeywords   []string `yaml:"school_keywords"`
}

// DefaultConfig returns the default extractor heuristics.
func DefaultConfig() Config {
	return Config{
		Bullets:         bullets.DefaultConfig(),
		GapRatio:        1.6,
		HeaderMaxLength: 80,
		JobTitleKeywords: []string{
			"engineer", "developer", "manager", "intern", "analyst", "designer",
			"lead", "director", "consultant", "scientist", "architect", "specialist",
			"administrator", "officer", "coordinator", "assistant", "associate",
			"founder", "president", "head of", "vp", "cto", "ceo", "programmer",
			"researcher", "instructor", "technician", "representative",
		},
		DegreeKeywords: []string{
			"bachelor", "master", "associate's", "doctor", "ph.d", "phd", "mba",
			"b.s", "b.a", "m.s", "m.a", "b.sc", "m.sc", "b.eng", "m.eng", "bs", "ba",
			"ms", "ma", "diploma", "degree", "certificate in",
		},
		SchoolKeywords: []string{
			"university", "college", "institute", "school", "academy", "polytechnic",
		},
	}
}

// hasKeyword reports whether s contains any keyword as a whole word,
// case-insensitively.
func hasKeyword(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if kw != "" && containsWord(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	for from := 0; from < len(s); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(word)
		if !letterBefore(s, start) && !letterAfter(s, end) {
			return true
		}
		from = start + 1
	}
	return false
}

func letterBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsLetter(r)
}

func letterAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r)
}
