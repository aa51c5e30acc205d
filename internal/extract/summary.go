package extract

import (
	"strings"

	"github.com/dgallion1/resumeparse/internal/bullets"
	"github.com/dgallion1/resumeparse/internal/record"
	"github.com/dgallion1/resumeparse/internal/sections"
)

// Summary joins the section's prose with spaces and puts each bullet entry on
// its own line after it.
func Summary(sec sections.Section, cfg Config) string {
	res := bullets.Extract(sec.Body(), cfg.Bullets)

	var parts []string
	if prose := strings.Join(res.PreambleTexts(), " "); prose != "" {
		parts = append(parts, prose)
	}
	parts = append(parts, res.Texts()...)
	return strings.Join(parts, "\n")
}

// Skills fills the featured slots from the preamble lines in order and keeps
// the bullet entries as descriptions. Preamble lines beyond the slot count
// are dropped.
func Skills(sec sections.Section, cfg Config) record.Skills {
	skills := record.NewSkills()
	res := bullets.Extract(sec.Body(), cfg.Bullets)

	for i, txt := range res.PreambleTexts() {
		if i >= record.FeaturedSlots {
			break
		}
		skills.Featured[i].Skill = txt
	}
	skills.Descriptions = append(skills.Descriptions, res.Texts()...)
	return skills
}

// Custom keeps a non-canonical section as a title and its text lines.
func Custom(sec sections.Section, cfg Config) record.CustomSection {
	res := bullets.Extract(sec.Body(), cfg.Bullets)
	descs := make([]string, 0, len(res.Preamble)+len(res.Entries))
	descs = append(descs, res.PreambleTexts()...)
	descs = append(descs, res.Texts()...)
	return record.CustomSection{Title: sec.Title, Descriptions: descs}
}
