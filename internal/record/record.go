// Package record defines the assembled resume record and its default values.
package record

// FeaturedSlots is the fixed number of featured skill slots.
const FeaturedSlots = 6

// DefaultRating is the rating a featured skill slot starts with.
const DefaultRating = 4

// Record is the structured result of one parse.
type Record struct {
	Profile         Profile          `json:"profile"`
	Summary         string           `json:"summary"`
	Skills          Skills           `json:"skills"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Educations      []Education      `json:"educations"`
	Projects        []Project        `json:"projects"`
	Certifications  []Certification  `json:"certifications"`
	Custom          []CustomSection  `json:"custom"`
}

// Profile holds the contact header.
type Profile struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Headline  string `json:"headline"`
	Links     Links  `json:"links"`
}

// Links holds recognized profile URLs.
type Links struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// FeaturedSkill is one highlighted skill with its display rating.
type FeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
}

// Skills holds the featured slots and free-form skill descriptions.
type Skills struct {
	Featured     [FeaturedSlots]FeaturedSkill `json:"featuredSkills"`
	Descriptions []string                     `json:"descriptions"`
}

// WorkExperience is one job entry.
type WorkExperience struct {
	Company     string `json:"company"`
	JobTitle    string `json:"jobTitle"`
	Date        string `json:"date"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one school entry.
type Education struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	GPA         string `json:"gpa"`
	Date        string `json:"date"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project is one project entry.
type Project struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Certification is one certificate or license.
type Certification struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// CustomSection is a section whose heading matched no canonical key.
type CustomSection struct {
	Title        string   `json:"title"`
	Descriptions []string `json:"descriptions"`
}

// New returns an empty record with every list non-nil and the featured
// skill slots at their defaults. Each call returns an independent value.
func New() Record {
	return Record{
		Skills:          NewSkills(),
		WorkExperiences: []WorkExperience{},
		Educations:      []Education{},
		Projects:        []Project{},
		Certifications:  []Certification{},
		Custom:          []CustomSection{},
	}
}

// NewSkills returns skills with default featured slots and no descriptions.
func NewSkills() Skills {
	return Skills{
		Featured:     NewFeaturedSkills(),
		Descriptions: []string{},
	}
}

// NewFeaturedSkills returns the default featured skill slots.
func NewFeaturedSkills() [FeaturedSlots]FeaturedSkill {
	var slots [FeaturedSlots]FeaturedSkill
	for i := range slots {
		slots[i] = FeaturedSkill{Rating: DefaultRating}
	}
	return slots
}

// FeaturedNames returns the non-empty featured skill names in slot order.
func (s Skills) FeaturedNames() []string {
	out := make([]string, 0, FeaturedSlots)
	for _, f := range s.Featured {
		if f.Skill != "" {
			out = append(out, f.Skill)
		}
	}
	return out
}

// IsEmpty reports whether nothing was extracted into the record.
func (r Record) IsEmpty() bool {
	return r.Profile == (Profile{}) &&
		r.Summary == "" &&
		len(r.Skills.FeaturedNames()) == 0 &&
		len(r.Skills.Descriptions) == 0 &&
		len(r.WorkExperiences) == 0 &&
		len(r.Educations) == 0 &&
		len(r.Projects) == 0 &&
		len(r.Certifications) == 0 &&
		len(r.Custom) == 0
}
