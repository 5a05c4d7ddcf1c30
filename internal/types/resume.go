// Package types defines the shared data structures exchanged between the
// extraction pipeline, storage, and the HTTP API.
package types

// PersonalInfo holds the contact details extracted from a resume.
type PersonalInfo struct {
	FullName  string            `json:"fullName"`
	Email     *string           `json:"email"`
	Phone     *string           `json:"phone"`
	Location  *string           `json:"location"`
	LinkedIn  *string           `json:"linkedin"`
	GitHub    *string           `json:"github"`
	Portfolio *string           `json:"portfolio"`
	Other     map[string]string `json:"other"`
}

// ExperienceEntry is one job held by the candidate.
type ExperienceEntry struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    *string  `json:"location"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Description []string `json:"description"`
}

// EducationEntry is one degree or program.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	Field       *string  `json:"field"`
	Institution string   `json:"institution"`
	Location    *string  `json:"location"`
	StartYear   *string  `json:"startYear"`
	EndYear     *string  `json:"endYear"`
	Description []string `json:"description"`
}

// Certification is one professional certification.
type Certification struct {
	Name   string  `json:"name"`
	Issuer *string `json:"issuer"`
	Date   *string `json:"date"`
	URL    *string `json:"url"`
}

// Project is one personal or professional project.
type Project struct {
	Name         string   `json:"name"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	URL          *string  `json:"url"`
}

// Language is one spoken language with optional proficiency.
type Language struct {
	Name        string  `json:"name"`
	Proficiency *string `json:"proficiency"`
}

// ResumeContent is the canonical structured representation of a resume.
// Every array field is always present (possibly empty), and every nullable
// scalar is an explicit null rather than absent, so consumers never need to
// check for missing keys.
type ResumeContent struct {
	PersonalInfo        PersonalInfo      `json:"personalInfo"`
	ProfessionalSummary *string           `json:"professionalSummary"`
	Experience          []ExperienceEntry `json:"experience"`
	Education           []EducationEntry  `json:"education"`
	Skills              []string          `json:"skills"`
	Certifications      []Certification   `json:"certifications"`
	Projects            []Project         `json:"projects"`
	Languages           []Language        `json:"languages"`
}

// EnsureDefaults replaces nil array fields with empty slices so that a
// partially-populated model response always serializes to the full shape.
// Calling it twice is a no-op.
func (r *ResumeContent) EnsureDefaults() {
	if r.PersonalInfo.Other == nil {
		r.PersonalInfo.Other = map[string]string{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	for i := range r.Experience {
		if r.Experience[i].Description == nil {
			r.Experience[i].Description = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Description == nil {
			r.Projects[i].Description = []string{}
		}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
}

// HasUsefulData reports whether the parsed resume carries at least one
// informative field. A structurally valid but empty document means the
// source text was junk, not a resume.
func (r *ResumeContent) HasUsefulData() bool {
	return r.PersonalInfo.FullName != "" || len(r.Experience) > 0 || len(r.Skills) > 0
}

// CoverLetter is the optional cover letter produced by the stateless
// tailoring task.
type CoverLetter struct {
	Opening string   `json:"opening"`
	Body    []string `json:"body"`
	Closing string   `json:"closing"`
}
