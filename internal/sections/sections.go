// Package sections partitions a line stream into named resume sections.
package sections

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/resumeparse/internal/layout"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical section keys.
const (
	KeyLeading        = ""
	KeySummary        = "summary"
	KeyExperience     = "experience"
	KeyEducation      = "education"
	KeyProjects       = "projects"
	KeySkills         = "skills"
	KeyCertifications = "certifications"
)

// Canonical is one registry entry: a key and its case-insensitive substring
// triggers.
type Canonical struct {
	Key      string   `yaml:"key"`
	Triggers []string `yaml:"triggers"`
}

// Section is a named, ordered run of lines. The first line of every section
// except the leading one is the heading that opened it; a key that re-opens
// later contributes another heading line.
type Section struct {
	Key      string        `json:"key"`
	Title    string        `json:"title"`
	Lines    []layout.Line `json:"lines"`
	Headings []int         `json:"headings"`
}

// Body returns the section's lines without its heading lines.
func (s Section) Body() []layout.Line {
	if len(s.Headings) == 0 {
		return s.Lines
	}
	out := make([]layout.Line, 0, len(s.Lines))
	h := 0
	for i, l := range s.Lines {
		if h < len(s.Headings) && s.Headings[h] == i {
			h++
			continue
		}
		out = append(out, l)
	}
	return out
}

// Config holds heading detection thresholds and the canonical registry.
type Config struct {
	// FontSizeMargin is how much larger than the body size a line must be to
	// count as enlarged.
	FontSizeMargin float64 `yaml:"font_size_margin"`

	// MaxHeadingLength is the maximum rune count of a heading candidate.
	MaxHeadingLength int `yaml:"max_heading_length"`

	// StrictCustomHeadings keeps mixed-case, normal-size bold lines that match
	// no trigger inside the current section instead of opening a custom one.
	// Off by default: every unmatched heading candidate opens a section.
	StrictCustomHeadings bool `yaml:"strict_custom_headings"`

	// Registry is matched in order; the first trigger hit wins.
	Registry []Canonical `yaml:"registry"`
}

// DefaultConfig returns the default heading thresholds and registry.
func DefaultConfig() Config {
	return Config{
		FontSizeMargin:       1.0,
		MaxHeadingLength:     40,
		StrictCustomHeadings: false,
		Registry:             DefaultRegistry(),
	}
}

// DefaultRegistry returns a fresh copy of the built-in canonical keys.
// Order matters: "Skills Summary" resolves to summary because summary is
// listed first.
func DefaultRegistry() []Canonical {
	return []Canonical{
		{Key: KeySummary, Triggers: []string{"summary", "objective", "profile", "about me"}},
		{Key: KeyExperience, Triggers: []string{"experience", "employment", "work history", "career"}},
		{Key: KeyEducation, Triggers: []string{"education", "academic"}},
		{Key: KeyProjects, Triggers: []string{"project"}},
		{Key: KeySkills, Triggers: []string{"skill", "technologies", "competenc"}},
		{Key: KeyCertifications, Triggers: []string{"certification", "certificate", "license", "credential"}},
	}
}

// Segment partitions lines into sections. The leading section (key "") is
// always first and may be empty; keys are unique and ordered by first
// occurrence.
func Segment(lines []layout.Line, cfg Config) []Section {
	body := BodyFontSize(lines)

	out := []Section{{Key: KeyLeading, Lines: []layout.Line{}, Headings: []int{}}}
	index := map[string]int{KeyLeading: 0}
	current := 0
	started := false

	for _, line := range lines {
		if IsHeadingCandidate(line, body, cfg) {
			key, canonical := MatchKey(line.Trimmed(), cfg.Registry)
			opens := canonical
			if !canonical && started {
				opens = !cfg.StrictCustomHeadings || looksLikeTitle(line, body, cfg)
			}
			if opens {
				started = true
				i, ok := index[key]
				if !ok {
					out = append(out, Section{Key: key, Title: line.Trimmed(), Lines: []layout.Line{}, Headings: []int{}})
					i = len(out) - 1
					index[key] = i
				}
				current = i
				out[i].Headings = append(out[i].Headings, len(out[i].Lines))
			}
		}
		out[current].Lines = append(out[current].Lines, line)
	}

	return out
}

// Find returns the section with the given key.
func Find(secs []Section, key string) (Section, bool) {
	for _, s := range secs {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// IsHeadingCandidate reports whether a line's size, weight and length suggest
// it labels a section.
func IsHeadingCandidate(line layout.Line, bodySize float64, cfg Config) bool {
	txt := line.Trimmed()
	if txt == "" || utf8.RuneCountInString(txt) > cfg.MaxHeadingLength {
		return false
	}
	if !strings.ContainsFunc(txt, unicode.IsLetter) {
		return false
	}
	return line.IsBold || isEnlarged(line, bodySize, cfg)
}

// MatchKey maps heading text to a canonical key, or to its own lower-cased
// text when no trigger matches.
func MatchKey(heading string, registry []Canonical) (string, bool) {
	// Casers carry state and are not shared across goroutines.
	lower := cases.Lower(language.Und)
	text := lower.String(strings.TrimSpace(heading))
	for _, c := range registry {
		for _, trig := range c.Triggers {
			if trig != "" && strings.Contains(text, lower.String(trig)) {
				return c.Key, true
			}
		}
	}
	return text, false
}

// BodyFontSize returns the modal line font size in 0.5pt buckets. Ties go to
// the smaller size.
func BodyFontSize(lines []layout.Line) float64 {
	const bucket = 0.5
	counts := make(map[int]int)
	for _, l := range lines {
		if l.IsBlank() {
			continue
		}
		counts[int(l.FontSize/bucket+0.5)]++
	}
	if len(counts) == 0 {
		return 0
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return float64(best) * bucket
}

func isEnlarged(line layout.Line, bodySize float64, cfg Config) bool {
	return bodySize > 0 && line.FontSize >= bodySize+cfg.FontSizeMargin
}

// looksLikeTitle accepts unmatched headings that are enlarged or all caps.
func looksLikeTitle(line layout.Line, bodySize float64, cfg Config) bool {
	if isEnlarged(line, bodySize, cfg) {
		return true
	}
	txt := line.Trimmed()
	return strings.ToUpper(txt) == txt
}
