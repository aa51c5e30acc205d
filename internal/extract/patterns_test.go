package extract

import "testing"

func TestMatchEmail(t *testing.T) {
	m, ok := MatchEmail("contact: john.doe+jobs@example.co.uk | more")
	if !ok || m.Value != "john.doe+jobs@example.co.uk" {
		t.Errorf("unexpected match %+v (%v)", m, ok)
	}
	if _, ok := MatchEmail("no address here"); ok {
		t.Error("expected no match")
	}
}

func TestMatchPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(555) 123-4567", "(555) 123-4567"},
		{"call 555.123.4567 today", "555.123.4567"},
		{"+1 415-555-0100", "+1 415-555-0100"},
	}
	for _, tt := range tests {
		m, ok := MatchPhone(tt.in)
		if !ok || m.Value != tt.want {
			t.Errorf("MatchPhone(%q) = %q (%v), want %q", tt.in, m.Value, ok, tt.want)
		}
	}
	if _, ok := MatchPhone("2019 - 2021"); ok {
		t.Error("expected year range not to be a phone number")
	}
}

func TestMatchLinks(t *testing.T) {
	if m, ok := MatchLinkedIn("https://www.linkedin.com/in/jdoe/"); !ok || m.Value != "https://www.linkedin.com/in/jdoe" {
		t.Errorf("unexpected linkedin %+v (%v)", m, ok)
	}
	if m, ok := MatchGitHub("code: github.com/jdoe."); !ok || m.Value != "github.com/jdoe" {
		t.Errorf("unexpected github %+v (%v)", m, ok)
	}
}

func TestMatchWebsite_ExcludesEmailAndKnownHosts(t *testing.T) {
	if _, ok := MatchWebsite("jane@example.com | github.com/jane | linkedin.com/in/jane"); ok {
		t.Error("expected no website among email and known hosts")
	}
	m, ok := MatchWebsite("jane@example.com | https://janedoe.dev/blog")
	if !ok || m.Value != "https://janedoe.dev/blog" {
		t.Errorf("unexpected website %+v (%v)", m, ok)
	}
}

func TestMatchLocation(t *testing.T) {
	m, ok := MatchLocation("San Francisco, CA | 555-123-4567")
	if !ok || m.Value != "San Francisco, CA" {
		t.Errorf("unexpected location %+v (%v)", m, ok)
	}
	if _, ok := MatchLocation("John Doe, MBA"); ok {
		t.Error("expected credentials not to be a location")
	}
}

func TestMatchDateRange(t *testing.T) {
	tests := []struct {
		in      string
		start   string
		end     string
		current bool
	}{
		{"Acme Corp   Jan 2020 – Present", "Jan 2020", "Present", true},
		{"2016-2019", "2016", "2019", false},
		{"Jun 2019 to Aug 2021", "Jun 2019", "Aug 2021", false},
		{"05/2018 — 12/2020", "05/2018", "12/2020", false},
		{"Sept. 2021 - current", "Sept. 2021", "current", true},
	}
	for _, tt := range tests {
		dr, ok := MatchDateRange(tt.in)
		if !ok {
			t.Errorf("MatchDateRange(%q): no match", tt.in)
			continue
		}
		if dr.Start != tt.start || dr.End != tt.end || dr.Current != tt.current {
			t.Errorf("MatchDateRange(%q) = %+v", tt.in, dr)
		}
		if tt.in[dr.Pos:dr.Pos+len(dr.Raw)] != dr.Raw {
			t.Errorf("MatchDateRange(%q): Pos does not locate Raw", tt.in)
		}
	}
	if _, ok := MatchDateRange("Graduated May 2020"); ok {
		t.Error("expected single date not to be a range")
	}
}

func TestMatchDate(t *testing.T) {
	m, ok := MatchDate("Certified Kubernetes Administrator, March 2022")
	if !ok || m.Value != "March 2022" {
		t.Errorf("unexpected date %+v (%v)", m, ok)
	}
	if _, ok := MatchDate("Maybe later"); ok {
		t.Error("expected no date")
	}
}

func TestMatchGPA(t *testing.T) {
	for in, want := range map[string]string{
		"GPA: 3.85/4.0":            "3.85",
		"Magna cum laude, 3.9 GPA": "3.9",
		"gpa 4.0":                  "4.0",
	} {
		m, ok := MatchGPA(in)
		if !ok || m.Value != want {
			t.Errorf("MatchGPA(%q) = %q (%v), want %q", in, m.Value, ok, want)
		}
	}
	if _, ok := MatchGPA("Version 3.2 released"); ok {
		t.Error("expected no GPA")
	}
}

func TestHasKeyword_NonASCIINeighbours(t *testing.T) {
	tests := []struct {
		s    string
		kw   string
		want bool
	}{
		{"Master’s in Computer Science", "master", true},
		{"Diplôma", "ma", false},
		{"«University» of Tartu", "university", true},
		{"Universitéschool", "school", false},
		{"plain mba", "mba", true},
	}
	for _, tt := range tests {
		if got := hasKeyword(tt.s, []string{tt.kw}); got != tt.want {
			t.Errorf("hasKeyword(%q, %q) = %v, want %v", tt.s, tt.kw, got, tt.want)
		}
	}
}
