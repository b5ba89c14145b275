// Package content holds the static portfolio records and the read-only store
// that indexes them by identity key.
package content

import "github.com/Zachkp/portfolio/internal/media"

// Content is everything loaded from the content directory.
type Content struct {
	Profile  Profile
	Resume   Resume
	Projects []Project
}

// Profile is the hero section data.
type Profile struct {
	Name        string    `json:"name" yaml:"name"`
	Headline    string    `json:"headline" yaml:"headline"`
	Subheadline string    `json:"subheadline,omitempty" yaml:"subheadline,omitempty"`
	Summary     []string  `json:"summary" yaml:"summary"`
	Contacts    []Contact `json:"contacts" yaml:"contacts"`
}

// Contact is an outbound link identified by its URL.
type Contact struct {
	Type  string `json:"type" yaml:"type"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Link is a labelled outbound project link.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Project is identified by its title.
type Project struct {
	Title       string       `json:"title" yaml:"title"`
	Period      string       `json:"period,omitempty" yaml:"period,omitempty"`
	Description string       `json:"description" yaml:"description"`
	Highlights  []string     `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	TechStack   []string     `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	Media       []media.Item `json:"media,omitempty" yaml:"media,omitempty"`
	Links       []Link       `json:"links,omitempty" yaml:"links,omitempty"`
}

// Resume groups the career sections stored in a single file.
type Resume struct {
	Experience     []ExperienceEntry `json:"experience" yaml:"experience"`
	Education      []EducationEntry  `json:"education" yaml:"education"`
	Certifications []Certification   `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Skills         []SkillGroup      `json:"skills" yaml:"skills"`
}

// ExperienceEntry is identified by the (company, period) pair.
type ExperienceEntry struct {
	Company      string       `json:"company" yaml:"company"`
	Role         string       `json:"role" yaml:"role"`
	Period       string       `json:"period" yaml:"period"`
	Summary      string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Achievements []string     `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	Media        []media.Item `json:"media,omitempty" yaml:"media,omitempty"`
}

// Key returns the identity key of the entry.
func (e ExperienceEntry) Key() ExperienceKey {
	return ExperienceKey{Company: e.Company, Period: e.Period}
}

// EducationEntry is identified by the school name.
type EducationEntry struct {
	School string                    `json:"school" yaml:"school"`
	Degree string                    `json:"degree" yaml:"degree"`
	Period string                    `json:"period" yaml:"period"`
	GPA    string                    `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Grades map[string]SemesterRecord `json:"grades,omitempty" yaml:"grades,omitempty"`
}

// HasGrades reports whether the entry carries a grade table.
func (e EducationEntry) HasGrades() bool {
	return len(e.Grades) > 0
}

// SemesterRecord is one semester of a grade table.
type SemesterRecord struct {
	Semester string         `json:"semester" yaml:"semester"`
	Subjects []SubjectGrade `json:"subjects" yaml:"subjects"`
}

// SubjectGrade is a single row of a semester grade table.
type SubjectGrade struct {
	Name      string  `json:"name" yaml:"name"`
	Credits   float64 `json:"credits" yaml:"credits"`
	GPA       float64 `json:"gpa" yaml:"gpa"`
	PassFail  bool    `json:"passFail,omitempty" yaml:"passFail,omitempty"`
	Grade     string  `json:"grade" yaml:"grade"`
	Highlight bool    `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

// Certification is identified by (name, year).
type Certification struct {
	Name   string `json:"name" yaml:"name"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Year   string `json:"year" yaml:"year"`
}

// SkillGroup is a labelled list of skill tags.
type SkillGroup struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}
