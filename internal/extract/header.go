package extract

import (
	"strings"
	"unicode"

	"github.com/dgallion1/resumeparse/internal/record"
	"github.com/dgallion1/resumeparse/internal/sections"
)

// Header reads contact details, the name and a headline from the leading
// section. Every pattern runs on every line; a line with any pattern hit is
// never a name or headline. The first line with real alphabetic content is
// the name and the next one is the headline. A one-word name line is
// completed by a following one-word line.
func Header(sec sections.Section, cfg Config) record.Profile {
	var p record.Profile
	awaitingLast := false

	for _, line := range sec.Body() {
		txt := line.Trimmed()
		if txt == "" {
			continue
		}
		if contactFields(&p, txt) {
			continue
		}
		if !isNameLike(txt) {
			continue
		}

		words := strings.Fields(txt)
		switch {
		case p.Name == "":
			p.Name = strings.Join(words, " ")
			p.FirstName = words[0]
			p.LastName = strings.Join(words[1:], " ")
			awaitingLast = len(words) == 1
		case awaitingLast && len(words) == 1:
			p.LastName = words[0]
			p.Name += " " + words[0]
			awaitingLast = false
		case p.Headline == "":
			p.Headline = txt
			awaitingLast = false
		default:
			awaitingLast = false
		}
	}

	return p
}

// contactFields records every contact pattern found in txt. The first hit
// for a field wins. It reports whether anything matched.
func contactFields(p *record.Profile, txt string) bool {
	hit := false
	set := func(dst *string, m Match, ok bool) {
		if !ok {
			return
		}
		hit = true
		if *dst == "" {
			*dst = m.Value
		}
	}

	m, ok := MatchEmail(txt)
	set(&p.Email, m, ok)
	m, ok = MatchPhone(txt)
	set(&p.Phone, m, ok)
	m, ok = MatchLinkedIn(txt)
	set(&p.Links.LinkedIn, m, ok)
	m, ok = MatchGitHub(txt)
	set(&p.Links.GitHub, m, ok)
	m, ok = MatchWebsite(txt)
	set(&p.Links.Website, m, ok)
	m, ok = MatchLocation(txt)
	set(&p.Location, m, ok)

	return hit
}

// isNameLike requires at least two letters making up at least half of the
// non-space runes.
func isNameLike(txt string) bool {
	letters, visible := 0, 0
	for _, r := range txt {
		if unicode.IsSpace(r) {
			continue
		}
		visible++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 2 && letters*2 >= visible
}
