package content

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by lookups when no entity has the given key.
var ErrNotFound = errors.New("not found")

// Store is the read-only, indexed view of validated Content. It is never
// mutated after NewStore and is safe for concurrent readers.
type Store struct {
	content    Content
	projects   map[string]int
	experience map[ExperienceKey]int
	education  map[string]int
}

// NewStore validates c and indexes its identity keys.
func NewStore(c Content) (*Store, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid content")
	}
	s := &Store{
		content:    c,
		projects:   make(map[string]int, len(c.Projects)),
		experience: make(map[ExperienceKey]int, len(c.Resume.Experience)),
		education:  make(map[string]int, len(c.Resume.Education)),
	}
	for i, p := range c.Projects {
		s.projects[p.Title] = i
	}
	for i, e := range c.Resume.Experience {
		s.experience[e.Key()] = i
	}
	for i, e := range c.Resume.Education {
		s.education[e.School] = i
	}
	return s, nil
}

// Profile returns the hero profile.
func (s *Store) Profile() Profile {
	p := s.content.Profile
	p.Summary = slices.Clone(p.Summary)
	p.Contacts = slices.Clone(p.Contacts)
	return p
}

// Projects returns the projects in content order.
func (s *Store) Projects() []Project { return slices.Clone(s.content.Projects) }

// Experience returns the experience entries in content order.
func (s *Store) Experience() []ExperienceEntry { return slices.Clone(s.content.Resume.Experience) }

// Education returns the education entries in content order.
func (s *Store) Education() []EducationEntry { return slices.Clone(s.content.Resume.Education) }

// Certifications returns the certifications in content order.
func (s *Store) Certifications() []Certification {
	return slices.Clone(s.content.Resume.Certifications)
}

// Skills returns the skill groups in content order.
func (s *Store) Skills() []SkillGroup { return slices.Clone(s.content.Resume.Skills) }

// Project looks a project up by exact title.
func (s *Store) Project(title string) (Project, error) {
	i, ok := s.projects[title]
	if !ok {
		return Project{}, errors.Wrapf(ErrNotFound, "project %q", title)
	}
	return s.content.Projects[i], nil
}

// ProjectIndex is the position of the titled project, -1 when absent.
func (s *Store) ProjectIndex(title string) int {
	if i, ok := s.projects[title]; ok {
		return i
	}
	return -1
}

// ExperienceByKey looks an entry up by its (company, period) key.
func (s *Store) ExperienceByKey(key ExperienceKey) (ExperienceEntry, error) {
	i, ok := s.experience[key]
	if !ok {
		return ExperienceEntry{}, errors.Wrapf(ErrNotFound, "experience %s", key)
	}
	return s.content.Resume.Experience[i], nil
}

// ExperienceByID parses an encoded id and looks it up. Malformed ids are
// reported as ErrNotFound.
func (s *Store) ExperienceByID(id string) (ExperienceEntry, error) {
	key, err := ParseExperienceKey(id)
	if err != nil {
		return ExperienceEntry{}, errors.Wrap(ErrNotFound, err.Error())
	}
	return s.ExperienceByKey(key)
}

// EducationBySchool looks an entry up by exact school name.
func (s *Store) EducationBySchool(school string) (EducationEntry, error) {
	i, ok := s.education[school]
	if !ok {
		return EducationEntry{}, errors.Wrapf(ErrNotFound, "school %q", school)
	}
	return s.content.Resume.Education[i], nil
}

// IsNotFound reports whether err came from a failed lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
