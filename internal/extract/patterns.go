package extract

import (
	"regexp"
	"strings"
)

// Match is a pattern hit. Raw is the matched span of the input at byte offset
// Pos; Value is the cleaned-up value.
type Match struct {
	Value string `json:"value"`
	Raw   string `json:"raw"`
	Pos   int    `json:"pos"`
}

// DateRange is a parsed "start – end" span.
type DateRange struct {
	Raw     string `json:"raw"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
	Pos     int    `json:"pos"`
}

const (
	monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?|spring|summer|fall|autumn|winter)`
	yearPattern  = `(?:19|20)\d{2}`
	datePoint    = `(?:\b` + monthPattern + `\.?,?\s+` + yearPattern + `|\b\d{1,2}/` + yearPattern + `|\b` + yearPattern + `)\b`
	presentWords = `present|current|now|today`
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)

	linkedInRe = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/[A-Za-z0-9_\-/%.]+`)

	gitHubRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-./]+`)

	websiteRe = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9][a-z0-9\-]*(?:\.[a-z0-9\-]+)*\.(?:com|net|org|io|dev|me|co|ai|app|tech|site|xyz|info|page|blog)\b(?:/[^\s|,]*)?`)

	locationRe = regexp.MustCompile(`\b[A-Z][A-Za-z.'\-]+(?:\s[A-Z][A-Za-z.'\-]+)*,\s?[A-Z]{2}\b`)

	dateRangeRe = regexp.MustCompile(`(?i)(?P<start>` + datePoint + `)(?:\s*[-–—]\s*|\s+to\s+)(?P<end>` + datePoint + `|\b(?:` + presentWords + `)\b)`)

	dateRe = regexp.MustCompile(`(?i)` + datePoint)

	presentRe = regexp.MustCompile(`(?i)^(?:` + presentWords + `)$`)

	gpaRe = regexp.MustCompile(`(?i)\bGPA\b[:\s]*(?P<pre>[0-4]\.\d{1,2})(?:\s*/\s*[0-9]\.\d{1,2})?|(?P<post>[0-4]\.\d{1,2})(?:\s*/\s*[0-9]\.\d{1,2})?\s*GPA\b`)
)

func find(re *regexp.Regexp, s string) (Match, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	raw := s[loc[0]:loc[1]]
	return Match{Value: raw, Raw: raw, Pos: loc[0]}, true
}

// MatchEmail finds an email address.
func MatchEmail(s string) (Match, bool) {
	return find(emailRe, s)
}

// MatchPhone finds a 10-digit phone number with an optional country code.
func MatchPhone(s string) (Match, bool) {
	m, ok := find(phoneRe, s)
	if ok {
		m.Value = strings.TrimSpace(m.Value)
	}
	return m, ok
}

// MatchLinkedIn finds a linkedin.com profile URL.
func MatchLinkedIn(s string) (Match, bool) {
	return trimmedURL(linkedInRe, s)
}

// MatchGitHub finds a github.com URL.
func MatchGitHub(s string) (Match, bool) {
	return trimmedURL(gitHubRe, s)
}

// MatchWebsite finds a personal site. Email domains and the LinkedIn and
// GitHub hosts are not websites.
func MatchWebsite(s string) (Match, bool) {
	masked := mask(s, emailRe, linkedInRe, gitHubRe)
	return trimmedURL(websiteRe, masked)
}

// MatchLocation finds a "City, ST" location.
func MatchLocation(s string) (Match, bool) {
	return find(locationRe, s)
}

// MatchDateRange finds a "start – end" span such as "Jan 2020 – Present".
func MatchDateRange(s string) (DateRange, bool) {
	sub := dateRangeRe.FindStringSubmatchIndex(s)
	if sub == nil {
		return DateRange{}, false
	}
	si := dateRangeRe.SubexpIndex("start")
	ei := dateRangeRe.SubexpIndex("end")
	dr := DateRange{
		Raw:   s[sub[0]:sub[1]],
		Start: s[sub[2*si]:sub[2*si+1]],
		End:   s[sub[2*ei]:sub[2*ei+1]],
		Pos:   sub[0],
	}
	dr.Current = presentRe.MatchString(dr.End)
	return dr, true
}

// MatchDate finds a single date such as "May 2021", "05/2021" or "2021".
func MatchDate(s string) (Match, bool) {
	return find(dateRe, s)
}

// MatchGPA finds "GPA: 3.8" or "3.8/4.0 GPA". Value is the grade alone.
func MatchGPA(s string) (Match, bool) {
	sub := gpaRe.FindStringSubmatchIndex(s)
	if sub == nil {
		return Match{}, false
	}
	m := Match{Raw: s[sub[0]:sub[1]], Pos: sub[0]}
	for _, name := range []string{"pre", "post"} {
		i := gpaRe.SubexpIndex(name)
		if sub[2*i] >= 0 {
			m.Value = s[sub[2*i]:sub[2*i+1]]
			break
		}
	}
	return m, true
}

// trimmedURL drops trailing punctuation picked up from the surrounding text.
func trimmedURL(re *regexp.Regexp, s string) (Match, bool) {
	m, ok := find(re, s)
	if !ok {
		return m, false
	}
	m.Value = strings.TrimRight(m.Value, ".,;:)/")
	m.Raw = m.Value
	return m, true
}

// mask blanks every match of the given patterns, keeping byte offsets.
func mask(s string, res ...*regexp.Regexp) string {
	for _, re := range res {
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			return strings.Repeat(" ", len(m))
		})
	}
	return s
}

// cut removes raw at pos from s and tidies the separators left behind.
func cut(s, raw string, pos int) string {
	if pos < 0 || pos+len(raw) > len(s) || s[pos:pos+len(raw)] != raw {
		return s
	}
	return strings.TrimSpace(s[:pos] + " " + s[pos+len(raw):])
}
