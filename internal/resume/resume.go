// Package resume assembles a record from decoded tokens by running the line,
// section and field stages in order.
package resume

import (
	"github.com/dgallion1/resumeparse/internal/extract"
	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/dgallion1/resumeparse/internal/record"
	"github.com/dgallion1/resumeparse/internal/sections"
)

// Stats describes what the pipeline saw on the way to the record.
type Stats struct {
	Tokens   int      `json:"tokens"`
	Lines    int      `json:"lines"`
	Sections []string `json:"sections"`
}

// Parse turns a token stream into a record. It never fails; anything it
// cannot find keeps its default value.
func Parse(tokens []layout.Token, cfg Config) record.Record {
	rec, _ := ParseDetailed(tokens, cfg)
	return rec
}

// ParseDetailed is Parse plus pipeline statistics.
func ParseDetailed(tokens []layout.Token, cfg Config) (record.Record, Stats) {
	lines := layout.BuildLines(tokens, cfg.Layout)
	secs := sections.Segment(lines, cfg.Sections)

	rec := record.New()
	stats := Stats{Tokens: len(tokens), Lines: len(lines), Sections: make([]string, 0, len(secs))}

	for _, sec := range secs {
		stats.Sections = append(stats.Sections, sec.Key)
		assemble(&rec, sec, cfg)
	}
	return rec, stats
}

// assemble routes one section to its extractor. Sections arrive in document
// order with unique keys, so each field is written at most once.
func assemble(rec *record.Record, sec sections.Section, cfg Config) {
	ex := cfg.Extract
	switch sec.Key {
	case sections.KeyLeading:
		rec.Profile = extract.Header(sec, ex)
	case sections.KeySummary:
		rec.Summary = extract.Summary(sec, ex)
	case sections.KeySkills:
		rec.Skills = extract.Skills(sec, ex)
	case sections.KeyExperience:
		rec.WorkExperiences = extract.WorkExperiences(sec, ex)
	case sections.KeyEducation:
		rec.Educations = extract.Educations(sec, ex)
	case sections.KeyProjects:
		rec.Projects = extract.Projects(sec, ex)
	case sections.KeyCertifications:
		rec.Certifications = extract.Certifications(sec, ex)
	default:
		// Registry keys added through configuration have no dedicated
		// extractor and are kept like any unrecognized heading.
		rec.Custom = append(rec.Custom, extract.Custom(sec, ex))
	}
}
