package extract

import (
	"testing"

	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/dgallion1/resumeparse/internal/record"
	"github.com/dgallion1/resumeparse/internal/sections"
)

// at builds a normal-weight line at the given position.
func at(txt string, x, y float64) layout.Line {
	return layout.Line{Text: txt, X: x, Y: y, FontSize: 10}
}

func bold(txt string, x, y float64) layout.Line {
	l := at(txt, x, y)
	l.IsBold = true
	return l
}

// section wraps body lines under a heading line the way Segment emits them.
func section(key string, body ...layout.Line) sections.Section {
	lines := append([]layout.Line{bold(key, 10, 0)}, body...)
	return sections.Section{Key: key, Title: key, Lines: lines, Headings: []int{0}}
}

func leading(body ...layout.Line) sections.Section {
	return sections.Section{Key: sections.KeyLeading, Lines: body, Headings: []int{}}
}

func TestHeader_NameAndContactLine(t *testing.T) {
	sec := leading(
		at("John Doe", 10, 10),
		at("john@example.com | (555) 123-4567 | github.com/jdoe", 10, 24),
	)
	p := Header(sec, DefaultConfig())

	if p.FirstName != "John" || p.LastName != "Doe" || p.Name != "John Doe" {
		t.Errorf("unexpected name %q / %q / %q", p.Name, p.FirstName, p.LastName)
	}
	if p.Email != "john@example.com" {
		t.Errorf("expected email, got %q", p.Email)
	}
	if p.Phone != "(555) 123-4567" {
		t.Errorf("expected phone, got %q", p.Phone)
	}
	if p.Links.GitHub != "github.com/jdoe" {
		t.Errorf("expected github link, got %q", p.Links.GitHub)
	}
	if p.Links.Website != "" {
		t.Errorf("expected no website, got %q", p.Links.Website)
	}
}

func TestHeader_HeadlineAndLocation(t *testing.T) {
	sec := leading(
		at("Jane Q. Public", 10, 10),
		at("Staff Software Engineer", 10, 24),
		at("Austin, TX · linkedin.com/in/janeqp · janeqp.dev", 10, 36),
		at("Mentor and speaker", 10, 48),
	)
	p := Header(sec, DefaultConfig())
	if p.FirstName != "Jane" || p.LastName != "Q. Public" {
		t.Errorf("unexpected name %q / %q", p.FirstName, p.LastName)
	}
	if p.Headline != "Staff Software Engineer" {
		t.Errorf("expected headline, got %q", p.Headline)
	}
	if p.Location != "Austin, TX" {
		t.Errorf("expected location, got %q", p.Location)
	}
	if p.Links.LinkedIn != "linkedin.com/in/janeqp" {
		t.Errorf("expected linkedin, got %q", p.Links.LinkedIn)
	}
	if p.Links.Website != "janeqp.dev" {
		t.Errorf("expected website, got %q", p.Links.Website)
	}
}

func TestHeader_SplitNameAcrossLines(t *testing.T) {
	sec := leading(at("JOHN", 10, 10), at("DOE", 10, 30), at("Data Engineer", 10, 50))
	p := Header(sec, DefaultConfig())
	if p.FirstName != "JOHN" || p.LastName != "DOE" {
		t.Errorf("unexpected name %q / %q", p.FirstName, p.LastName)
	}
	if p.Headline != "Data Engineer" {
		t.Errorf("expected headline, got %q", p.Headline)
	}
}

func TestHeader_SingleTokenName(t *testing.T) {
	p := Header(leading(at("Prince", 10, 10)), DefaultConfig())
	if p.FirstName != "Prince" || p.LastName != "" {
		t.Errorf("unexpected name %q / %q", p.FirstName, p.LastName)
	}
}

func TestHeader_Empty(t *testing.T) {
	p := Header(leading(), DefaultConfig())
	if p != (record.Profile{}) {
		t.Errorf("expected empty profile, got %+v", p)
	}
}

func TestSkills_PreambleAndBullets(t *testing.T) {
	sec := section("skills",
		at("Python, Go, Rust", 10, 10),
		at("• Built distributed systems in Go", 10, 22),
	)
	s := Skills(sec, DefaultConfig())
	if s.Featured[0].Skill != "Python, Go, Rust" {
		t.Errorf("expected first slot to hold the preamble line, got %q", s.Featured[0].Skill)
	}
	for i := 1; i < record.FeaturedSlots; i++ {
		if s.Featured[i].Skill != "" || s.Featured[i].Rating != record.DefaultRating {
			t.Errorf("slot %d: expected default, got %+v", i, s.Featured[i])
		}
	}
	if len(s.Descriptions) != 1 || s.Descriptions[0] != "Built distributed systems in Go" {
		t.Errorf("unexpected descriptions %q", s.Descriptions)
	}
}

func TestSkills_PreambleBeyondSlotsIsDropped(t *testing.T) {
	var body []layout.Line
	for i, s := range []string{"Go", "SQL", "Rust", "Kafka", "Redis", "Docker", "Terraform", "gRPC"} {
		body = append(body, at(s, 10, float64(10+12*i)))
	}
	s := Skills(section("skills", body...), DefaultConfig())
	if s.Featured[5].Skill != "Docker" {
		t.Errorf("expected sixth slot Docker, got %q", s.Featured[5].Skill)
	}
	if len(s.Descriptions) != 0 {
		t.Errorf("expected no descriptions without bullets, got %q", s.Descriptions)
	}
}

func TestSkills_MissingSection(t *testing.T) {
	s := Skills(sections.Section{}, DefaultConfig())
	if s.Descriptions == nil || len(s.Descriptions) != 0 {
		t.Errorf("expected empty descriptions, got %#v", s.Descriptions)
	}
	if s.Featured != record.NewFeaturedSkills() {
		t.Error("expected default featured slots")
	}
}

func TestSummary_ProseAndBullets(t *testing.T) {
	sec := section("summary",
		at("Backend engineer with ten years", 10, 10),
		at("of experience in payments.", 10, 22),
		at("• Go and Postgres", 10, 34),
	)
	got := Summary(sec, DefaultConfig())
	want := "Backend engineer with ten years of experience in payments.\nGo and Postgres"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWorkExperiences_DateOnTitleLine(t *testing.T) {
	sec := section("experience",
		bold("Acme Corp | Senior Engineer   Jan 2020 – Present", 10, 10),
		at("• Built the billing pipeline", 20, 22),
		at("serving four regions", 28, 34),
		bold("Beta Inc | Engineer   2018 - 2019", 10, 50),
		at("• Kept the lights on", 20, 62),
	)
	jobs := WorkExperiences(sec, DefaultConfig())
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d: %+v", len(jobs), jobs)
	}

	first := jobs[0]
	if first.Company != "Acme Corp" || first.JobTitle != "Senior Engineer" {
		t.Errorf("unexpected header %q / %q", first.Company, first.JobTitle)
	}
	if first.StartDate != "Jan 2020" || first.EndDate != "Present" || first.Date != "Jan 2020 – Present" {
		t.Errorf("unexpected dates %q / %q / %q", first.Date, first.StartDate, first.EndDate)
	}
	if first.Description != "Built the billing pipeline\nserving four regions" {
		t.Errorf("unexpected description %q", first.Description)
	}

	if jobs[1].Company != "Beta Inc" || jobs[1].StartDate != "2018" || jobs[1].EndDate != "2019" {
		t.Errorf("unexpected second job %+v", jobs[1])
	}
}

func TestWorkExperiences_TitleAboveDateLine(t *testing.T) {
	sec := section("experience",
		at("Senior Engineer, Acme", 10, 10),
		at("Jan 2020 - Present", 10, 22),
		at("• Led the platform team", 20, 34),
		at("Engineer, Beta", 10, 50),
		at("2018 - 2019", 10, 62),
		at("• Wrote services", 20, 74),
	)
	jobs := WorkExperiences(sec, DefaultConfig())
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d: %+v", len(jobs), jobs)
	}
	if jobs[0].JobTitle != "Senior Engineer" || jobs[0].Company != "Acme" {
		t.Errorf("unexpected first job %+v", jobs[0])
	}
	if jobs[0].Description != "Led the platform team" {
		t.Errorf("title line leaked into previous description: %q", jobs[0].Description)
	}
	if jobs[1].JobTitle != "Engineer" || jobs[1].Company != "Beta" || jobs[1].EndDate != "2019" {
		t.Errorf("unexpected second job %+v", jobs[1])
	}
}

func TestWorkExperiences_MissingSectionIsEmpty(t *testing.T) {
	jobs := WorkExperiences(sections.Section{}, DefaultConfig())
	if jobs == nil || len(jobs) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", jobs)
	}
}

func TestEducations_SchoolDegreeAndGPA(t *testing.T) {
	sec := section("education",
		at("B.S. Computer Science, State University   2014 - 2018", 10, 10),
		at("GPA: 3.8", 10, 22),
	)
	eds := Educations(sec, DefaultConfig())
	if len(eds) != 1 {
		t.Fatalf("expected 1 education, got %d", len(eds))
	}
	e := eds[0]
	if e.School != "State University" || e.Degree != "B.S. Computer Science" {
		t.Errorf("unexpected school/degree %q / %q", e.School, e.Degree)
	}
	if e.GPA != "3.8" {
		t.Errorf("expected GPA 3.8, got %q", e.GPA)
	}
	if e.StartDate != "2014" || e.EndDate != "2018" {
		t.Errorf("unexpected dates %q / %q", e.StartDate, e.EndDate)
	}
}

func TestEducations_EmptySection(t *testing.T) {
	eds := Educations(section("education"), DefaultConfig())
	if eds == nil || len(eds) != 0 {
		t.Errorf("expected empty list, got %#v", eds)
	}
}

func TestProjects_SplitOnGap(t *testing.T) {
	sec := section("projects",
		bold("Compiler", 10, 100),
		at("• Wrote a parser", 20, 112),
		at("• Added codegen", 20, 124),
		bold("Chat App | Go, WebSockets", 10, 150),
		at("• Realtime rooms", 20, 162),
	)
	projects := Projects(sec, DefaultConfig())
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d: %+v", len(projects), projects)
	}
	if projects[0].Name != "Compiler" || projects[0].Description != "Wrote a parser\nAdded codegen" {
		t.Errorf("unexpected first project %+v", projects[0])
	}
	if projects[1].Name != "Chat App" || projects[1].Description != "Go, WebSockets\nRealtime rooms" {
		t.Errorf("unexpected second project %+v", projects[1])
	}
}

func TestCertifications_OnePerLineWithoutRanges(t *testing.T) {
	sec := section("certifications",
		at("• AWS Certified Solutions Architect - Amazon, 2021", 10, 10),
		at("• CKA – CNCF", 10, 22),
	)
	certs := Certifications(sec, DefaultConfig())
	if len(certs) != 2 {
		t.Fatalf("expected 2 certifications, got %d", len(certs))
	}
	if certs[0].Name != "AWS Certified Solutions Architect" || certs[0].Issuer != "Amazon" || certs[0].Date != "2021" {
		t.Errorf("unexpected first cert %+v", certs[0])
	}
	if certs[1].Name != "CKA" || certs[1].Issuer != "CNCF" {
		t.Errorf("unexpected second cert %+v", certs[1])
	}
}

func TestCustom_TitleAndLines(t *testing.T) {
	sec := section("volunteering", at("Food bank driver", 10, 10), at("Code club mentor", 10, 22))
	sec.Title = "VOLUNTEERING"
	c := Custom(sec, DefaultConfig())
	if c.Title != "VOLUNTEERING" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if len(c.Descriptions) != 2 || c.Descriptions[1] != "Code club mentor" {
		t.Errorf("unexpected descriptions %q", c.Descriptions)
	}
}

func TestSplitBlocks_BlankLineAtBaseIndent(t *testing.T) {
	lines := []layout.Line{
		at("First", 10, 10),
		at("detail", 10, 22),
		at("", 10, 34),
		at("Second", 10, 46),
	}
	blocks := SplitBlocks(lines, DefaultConfig())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if len(blocks[0]) != 2 || blocks[1][0].Text != "Second" {
		t.Errorf("unexpected blocks %+v", blocks)
	}
}

func TestSplitBlocks_Empty(t *testing.T) {
	blocks := SplitBlocks(nil, DefaultConfig())
	if blocks == nil || len(blocks) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", blocks)
	}
}
