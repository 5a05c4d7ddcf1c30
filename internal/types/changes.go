package types

// Change sections correspond to the top-level resume sections a tailoring
// edit can touch.
const (
	SectionSummary        = "professionalSummary"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionLanguages      = "languages"
)

// Change types describe what the model did to produce the new value.
const (
	ChangeAdded     = "added"
	ChangeRephrased = "rephrased"
	ChangeReordered = "reordered"
)

// ChangeRecord is one atomic edit made while tailoring a resume to a job
// description. Original is null for additions; ExperienceIndex and
// BulletIndex are only set when the section is addressable by index.
type ChangeRecord struct {
	ID              string  `json:"id"`
	Section         string  `json:"section"`
	Type            string  `json:"type"`
	ExperienceIndex *int    `json:"experienceIndex"`
	BulletIndex     *int    `json:"bulletIndex"`
	Original        *string `json:"original"`
	New             string  `json:"new"`
	Reason          string  `json:"reason"`
}

var validSections = map[string]bool{
	SectionSummary:        true,
	SectionExperience:     true,
	SectionSkills:         true,
	SectionEducation:      true,
	SectionCertifications: true,
	SectionProjects:       true,
	SectionLanguages:      true,
}

var validChangeTypes = map[string]bool{
	ChangeAdded:     true,
	ChangeRephrased: true,
	ChangeReordered: true,
}

// Validate checks the ChangeRecord invariants. It returns a non-empty
// reason string describing the first violation, or "" when the record is
// well-formed.
func (c *ChangeRecord) Validate() string {
	if c.ID == "" {
		return "missing id"
	}
	if !validSections[c.Section] {
		return "unknown section: " + c.Section
	}
	if !validChangeTypes[c.Type] {
		return "unknown change type: " + c.Type
	}
	if c.New == "" {
		return "missing new value"
	}
	if c.Type == ChangeRephrased && c.Original == nil {
		return "rephrased change without original value"
	}
	if c.Section == SectionExperience && c.ExperienceIndex == nil {
		return "experience change without experienceIndex"
	}
	if c.Section != SectionExperience && c.ExperienceIndex != nil {
		return "experienceIndex set on non-experience section"
	}
	return ""
}

// TailoredResult is the outcome of a tailoring run: the rewritten resume,
// the audited change log, and a one-sentence summary of what was done.
type TailoredResult struct {
	Resume  ResumeContent  `json:"resume"`
	Changes []ChangeRecord `json:"changes"`
	Summary string         `json:"summary"`
}
