package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/resumeparse/internal/bullets"
	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/dgallion1/resumeparse/internal/record"
	"github.com/dgallion1/resumeparse/internal/sections"
)

// headerSeparators split an entry header into its fields, tried in order.
var headerSeparators = []string{"|", " – ", " — ", " - ", " · ", " • ", " at ", ", "}

// block is one entry block broken into header fields and description.
type block struct {
	parts       []string
	dates       DateRange
	hasRange    bool
	date        string
	gpa         string
	description string
}

func (b block) part(i int) string {
	if i < len(b.parts) {
		return b.parts[i]
	}
	return ""
}

// dateFields returns Date, StartDate and EndDate for a record entry.
func (b block) dateFields() (string, string, string) {
	if b.hasRange {
		return strings.TrimSpace(b.dates.Raw), b.dates.Start, b.dates.End
	}
	return b.date, "", ""
}

// WorkExperiences extracts one entry per block of the experience section.
func WorkExperiences(sec sections.Section, cfg Config) []record.WorkExperience {
	out := []record.WorkExperience{}
	for _, lines := range SplitBlocks(sec.Body(), cfg) {
		b := parseBlock(lines, cfg)
		w := record.WorkExperience{Description: b.description}
		w.Date, w.StartDate, w.EndDate = b.dateFields()

		title := indexOfKeyword(b.parts, cfg.JobTitleKeywords)
		switch {
		case title < 0:
			w.Company = b.part(0)
			if len(b.parts) > 1 {
				w.JobTitle = strings.Join(b.parts[1:], ", ")
			}
		default:
			rest := without(b.parts, title)
			w.JobTitle = b.parts[title]
			if len(rest) > 0 {
				w.Company = rest[0]
			}
			if len(rest) > 1 {
				w.JobTitle += ", " + strings.Join(rest[1:], ", ")
			}
		}
		out = append(out, w)
	}
	return out
}

// Educations extracts one entry per block of the education section. The
// school is the part naming an institution; everything else is the degree.
func Educations(sec sections.Section, cfg Config) []record.Education {
	out := []record.Education{}
	for _, lines := range SplitBlocks(sec.Body(), cfg) {
		b := parseBlock(lines, cfg)
		e := record.Education{GPA: b.gpa, Description: b.description}
		e.Date, e.StartDate, e.EndDate = b.dateFields()

		if len(b.parts) > 0 {
			school := indexOfKeyword(b.parts, cfg.SchoolKeywords)
			if school < 0 {
				school = 0
				if len(b.parts) > 1 && hasKeyword(b.parts[0], cfg.DegreeKeywords) {
					school = 1
				}
			}
			e.School = b.parts[school]
			e.Degree = strings.Join(without(b.parts, school), ", ")
		}
		out = append(out, e)
	}
	return out
}

// Projects extracts one entry per block of the projects section. Header
// fields after the name lead the description.
func Projects(sec sections.Section, cfg Config) []record.Project {
	out := []record.Project{}
	for _, lines := range SplitBlocks(sec.Body(), cfg) {
		b := parseBlock(lines, cfg)
		p := record.Project{Name: b.part(0), Description: b.description}
		p.Date, p.StartDate, p.EndDate = b.dateFields()
		if len(b.parts) > 1 {
			p.Description = joinNonEmpty("\n", strings.Join(b.parts[1:], ", "), p.Description)
		}
		out = append(out, p)
	}
	return out
}

// Certifications extracts dated blocks the same way as work history. A
// section without any date range lists one certification per line or bullet.
func Certifications(sec sections.Section, cfg Config) []record.Certification {
	out := []record.Certification{}
	body := sec.Body()

	dated := false
	for _, l := range body {
		if isDateLine(l) {
			dated = true
			break
		}
	}

	if dated {
		for _, lines := range SplitBlocks(body, cfg) {
			b := parseBlock(lines, cfg)
			out = append(out, certFromBlock(b))
		}
		return out
	}

	res := bullets.Extract(body, cfg.Bullets)
	items := append(res.PreambleTexts(), res.Texts()...)
	for _, item := range items {
		head, rest, _ := strings.Cut(item, "\n")
		b := parseHeader([]string{head})
		b.description = rest
		out = append(out, certFromBlock(b))
	}
	return out
}

func certFromBlock(b block) record.Certification {
	c := record.Certification{Name: b.part(0), Description: b.description}
	if len(b.parts) > 1 {
		c.Issuer = strings.Join(b.parts[1:], ", ")
	}
	c.Date, c.StartDate, c.EndDate = b.dateFields()
	return c
}

// parseBlock takes the header lines off the top of a block and turns the
// rest into a description.
func parseBlock(lines []layout.Line, cfg Config) block {
	n := headerLineCount(lines, cfg)
	head := make([]string, 0, n)
	for _, l := range lines[:n] {
		head = append(head, l.Trimmed())
	}
	b := parseHeader(head)

	rest := lines[n:]
	if b.gpa == "" {
		for _, l := range rest {
			if m, ok := MatchGPA(l.Text); ok {
				b.gpa = m.Value
				break
			}
		}
	}

	res := bullets.Extract(rest, cfg.Bullets)
	desc := append(res.PreambleTexts(), res.Texts()...)
	b.description = strings.Join(desc, "\n")
	return b
}

// headerLineCount is 1 for the first line, 2 when the second line looks like
// part of the header, plus a trailing date-only line when neither header line
// carried the dates. A block that opens with a bullet has no header.
func headerLineCount(lines []layout.Line, cfg Config) int {
	if len(lines) == 0 || bullets.IsBulleted(lines[0], cfg.Bullets) {
		return 0
	}
	n := 1
	if len(lines) > 1 {
		second := lines[1]
		if !bullets.IsBulleted(second, cfg.Bullets) && utf8.RuneCountInString(second.Trimmed()) <= cfg.HeaderMaxLength {
			secondDated := isDateLine(second) && !isDateLine(lines[0])
			if secondDated || second.IsBold || hasBullet(lines[2:], cfg) {
				n = 2
			}
		}
	}
	if n < len(lines) && !isDateLine(lines[0]) && (n == 1 || !isDateLine(lines[1])) {
		if next := lines[n]; !bullets.IsBulleted(next, cfg.Bullets) && dateOnly(next) {
			n++
		}
	}
	return n
}

// parseHeader pulls dates, a GPA and a location out of the header lines and
// splits what is left into fields.
func parseHeader(head []string) block {
	var b block
	for _, txt := range head {
		if !b.hasRange {
			if dr, ok := MatchDateRange(txt); ok {
				b.dates, b.hasRange = dr, true
				txt = cut(txt, dr.Raw, dr.Pos)
			}
		}
		if b.gpa == "" {
			if m, ok := MatchGPA(txt); ok {
				b.gpa = m.Value
				txt = cut(txt, m.Raw, m.Pos)
			}
		}
		if m, ok := MatchLocation(txt); ok {
			txt = cut(txt, m.Raw, m.Pos)
		}
		if !b.hasRange && b.date == "" {
			if m, ok := MatchDate(txt); ok {
				b.date = m.Value
				txt = cut(txt, m.Raw, m.Pos)
			}
		}
		b.parts = append(b.parts, splitHeader(txt)...)
	}
	return b
}

func splitHeader(txt string) []string {
	for _, sep := range headerSeparators {
		txt = strings.ReplaceAll(txt, sep, "\x00")
	}
	var parts []string
	for _, p := range strings.Split(txt, "\x00") {
		p = strings.Trim(p, " \t,|–—-·•()")
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func hasBullet(lines []layout.Line, cfg Config) bool {
	for _, l := range lines {
		if bullets.IsBulleted(l, cfg.Bullets) {
			return true
		}
	}
	return false
}

func indexOfKeyword(parts []string, keywords []string) int {
	for i, p := range parts {
		if hasKeyword(p, keywords) {
			return i
		}
	}
	return -1
}

func without(parts []string, i int) []string {
	out := make([]string, 0, len(parts))
	out = append(out, parts[:i]...)
	return append(out, parts[i+1:]...)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
