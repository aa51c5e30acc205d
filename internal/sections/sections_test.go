package sections

import (
	"testing"

	"github.com/dgallion1/resumeparse/internal/layout"
)

func bodyLine(txt string) layout.Line {
	return layout.Line{Text: txt, FontSize: 10}
}

func headingLine(txt string) layout.Line {
	return layout.Line{Text: txt, FontSize: 10, IsBold: true}
}

func TestSegment_EmptyDocument(t *testing.T) {
	secs := Segment(nil, DefaultConfig())
	if len(secs) != 1 {
		t.Fatalf("expected a single leading section, got %d", len(secs))
	}
	if secs[0].Key != KeyLeading {
		t.Errorf("expected leading key %q, got %q", KeyLeading, secs[0].Key)
	}
	if len(secs[0].Lines) != 0 {
		t.Errorf("expected empty leading section, got %d lines", len(secs[0].Lines))
	}
}

func TestSegment_CanonicalSections(t *testing.T) {
	lines := []layout.Line{
		bodyLine("Jane Roe"),
		bodyLine("jane@example.com"),
		headingLine("WORK EXPERIENCE"),
		bodyLine("Engineer at Acme"),
		headingLine("Education"),
		bodyLine("State University"),
		headingLine("SKILLS"),
		bodyLine("Go, SQL"),
	}
	secs := Segment(lines, DefaultConfig())

	wantKeys := []string{KeyLeading, KeyExperience, KeyEducation, KeySkills}
	if len(secs) != len(wantKeys) {
		t.Fatalf("expected %d sections, got %d", len(wantKeys), len(secs))
	}
	for i, k := range wantKeys {
		if secs[i].Key != k {
			t.Errorf("section %d: expected key %q, got %q", i, k, secs[i].Key)
		}
	}
	if len(secs[0].Lines) != 2 {
		t.Errorf("expected 2 leading lines, got %d", len(secs[0].Lines))
	}
	if secs[1].Title != "WORK EXPERIENCE" {
		t.Errorf("expected title %q, got %q", "WORK EXPERIENCE", secs[1].Title)
	}
	body := secs[1].Body()
	if len(body) != 1 || body[0].Text != "Engineer at Acme" {
		t.Errorf("unexpected experience body: %+v", body)
	}
}

func TestSegment_PartitionsEveryLineOnce(t *testing.T) {
	lines := []layout.Line{
		bodyLine("Name"),
		headingLine("SUMMARY"),
		bodyLine("text"),
		headingLine("VOLUNTEERING"),
		bodyLine("helped"),
		headingLine("SKILLS"),
		bodyLine("Go"),
		headingLine("SUMMARY"),
		bodyLine("more text"),
	}
	secs := Segment(lines, DefaultConfig())

	total := 0
	for _, s := range secs {
		total += len(s.Lines)
	}
	if total != len(lines) {
		t.Errorf("expected %d lines across sections, got %d", len(lines), total)
	}

	seen := make(map[string]bool)
	for _, s := range secs {
		if seen[s.Key] {
			t.Errorf("duplicate section key %q", s.Key)
		}
		seen[s.Key] = true
	}
}

func TestSegment_ReopenedKeyAppends(t *testing.T) {
	lines := []layout.Line{
		headingLine("Skills"),
		bodyLine("Go"),
		headingLine("Education"),
		bodyLine("MIT"),
		headingLine("Technical Skills"),
		bodyLine("Rust"),
	}
	secs := Segment(lines, DefaultConfig())
	skills, ok := Find(secs, KeySkills)
	if !ok {
		t.Fatal("expected skills section")
	}
	if len(skills.Lines) != 4 {
		t.Fatalf("expected 4 skill lines (two headings, two bodies), got %d", len(skills.Lines))
	}
	if skills.Lines[3].Text != "Rust" {
		t.Errorf("expected appended line %q, got %q", "Rust", skills.Lines[3].Text)
	}
	body := skills.Body()
	if len(body) != 2 || body[0].Text != "Go" || body[1].Text != "Rust" {
		t.Errorf("expected body without headings, got %+v", body)
	}
	if secs[1].Key != KeySkills || secs[2].Key != KeyEducation {
		t.Errorf("expected first-occurrence order skills, education; got %q, %q", secs[1].Key, secs[2].Key)
	}
}

func TestSegment_UnmatchedHeadingBeforeFirstMatchStaysLeading(t *testing.T) {
	lines := []layout.Line{
		{Text: "JOHN DOE", FontSize: 20, IsBold: true},
		bodyLine("john@example.com"),
		headingLine("EXPERIENCE"),
	}
	secs := Segment(lines, DefaultConfig())
	if len(secs[0].Lines) != 2 {
		t.Errorf("expected name line in leading section, got %d leading lines", len(secs[0].Lines))
	}
}

func TestSegment_UnmatchedHeadingOpensCustomSection(t *testing.T) {
	lines := []layout.Line{
		headingLine("EXPERIENCE"),
		bodyLine("Engineer"),
		headingLine("  VOLUNTEER WORK "),
		bodyLine("Food bank"),
	}
	secs := Segment(lines, DefaultConfig())
	custom, ok := Find(secs, "volunteer work")
	if !ok {
		t.Fatalf("expected custom section keyed by lower-cased text, got %+v", secs)
	}
	if len(custom.Body()) != 1 {
		t.Errorf("expected 1 body line, got %d", len(custom.Body()))
	}
}

func TestSegment_MixedCaseBoldOpensCustomSectionByDefault(t *testing.T) {
	lines := []layout.Line{
		headingLine("SKILLS"),
		bodyLine("Python"),
		headingLine("Volunteer Work"),
		bodyLine("Food bank organizer"),
	}
	secs := Segment(lines, DefaultConfig())
	custom, ok := Find(secs, "volunteer work")
	if !ok {
		t.Fatalf("expected custom section for mixed-case bold heading, got %+v", secs)
	}
	if custom.Title != "Volunteer Work" {
		t.Errorf("expected title %q, got %q", "Volunteer Work", custom.Title)
	}
	skills, _ := Find(secs, KeySkills)
	if len(skills.Body()) != 1 {
		t.Errorf("expected skills body to stop at the custom heading, got %+v", skills.Body())
	}
}

func TestSegment_StrictKeepsMixedCaseBoldInSection(t *testing.T) {
	lines := []layout.Line{
		headingLine("EXPERIENCE"),
		headingLine("Senior Engineer"),
		bodyLine("Acme Corp"),
	}
	cfg := DefaultConfig()
	cfg.StrictCustomHeadings = true
	secs := Segment(lines, cfg)
	if len(secs) != 2 {
		t.Fatalf("expected leading + experience only in strict mode, got %d sections", len(secs))
	}

	secs = Segment(lines, DefaultConfig())
	if _, ok := Find(secs, "senior engineer"); !ok {
		t.Error("expected custom section with the default config")
	}
}

func TestSegment_EnlargedHeading(t *testing.T) {
	lines := []layout.Line{
		bodyLine("Jane"),
		bodyLine("a"),
		bodyLine("b"),
		{Text: "Projects", FontSize: 13},
		bodyLine("Compiler"),
	}
	secs := Segment(lines, DefaultConfig())
	if _, ok := Find(secs, KeyProjects); !ok {
		t.Error("expected enlarged line to open projects section")
	}
}

func TestSegment_EmptySectionBetweenHeadings(t *testing.T) {
	lines := []layout.Line{
		headingLine("EDUCATION"),
		headingLine("SKILLS"),
		bodyLine("Go"),
	}
	secs := Segment(lines, DefaultConfig())
	edu, ok := Find(secs, KeyEducation)
	if !ok {
		t.Fatal("expected education section")
	}
	if len(edu.Body()) != 0 {
		t.Errorf("expected empty education body, got %d lines", len(edu.Body()))
	}
	skills, _ := Find(secs, KeySkills)
	if len(skills.Body()) != 1 {
		t.Errorf("expected 1 skills body line, got %d", len(skills.Body()))
	}
}

func TestMatchKey_FirstTriggerWins(t *testing.T) {
	key, ok := MatchKey("Skills Summary", DefaultRegistry())
	if !ok || key != KeySummary {
		t.Errorf("expected summary by registry order, got %q (%v)", key, ok)
	}

	reordered := []Canonical{
		{Key: KeySkills, Triggers: []string{"skill"}},
		{Key: KeySummary, Triggers: []string{"summary"}},
	}
	key, _ = MatchKey("Skills Summary", reordered)
	if key != KeySkills {
		t.Errorf("expected skills after reordering, got %q", key)
	}
}

func TestMatchKey_Unmatched(t *testing.T) {
	key, ok := MatchKey("  Hobbies ", DefaultRegistry())
	if ok {
		t.Error("expected no canonical match")
	}
	if key != "hobbies" {
		t.Errorf("expected raw key %q, got %q", "hobbies", key)
	}
}

func TestIsHeadingCandidate(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		line layout.Line
		want bool
	}{
		{headingLine("SKILLS"), true},
		{bodyLine("SKILLS"), false},
		{layout.Line{Text: "Skills", FontSize: 12}, true},
		{headingLine("   "), false},
		{headingLine("2019 - 2021"), false},
		{headingLine("A bold sentence that runs on well past the forty rune limit"), false},
	}
	for _, tt := range tests {
		if got := IsHeadingCandidate(tt.line, 10, cfg); got != tt.want {
			t.Errorf("IsHeadingCandidate(%q) = %v, want %v", tt.line.Text, got, tt.want)
		}
	}
}

func TestBodyFontSize_ModalWithTieToSmaller(t *testing.T) {
	lines := []layout.Line{
		{Text: "a", FontSize: 10},
		{Text: "b", FontSize: 10},
		{Text: "c", FontSize: 14},
		{Text: "d", FontSize: 14},
		{Text: " ", FontSize: 30},
	}
	if got := BodyFontSize(lines); got != 10 {
		t.Errorf("expected 10, got %.1f", got)
	}
	if got := BodyFontSize(nil); got != 0 {
		t.Errorf("expected 0 for no lines, got %.1f", got)
	}
}
