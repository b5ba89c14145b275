package content

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/media"
)

// Validate checks required fields, identity key uniqueness, media items and
// semester key format. It stops at the first problem.
func (c Content) Validate() error {
	if err := c.Profile.validate(); err != nil {
		return errors.Wrap(err, "profile")
	}

	seenProjects := make(map[string]struct{}, len(c.Projects))
	for i, p := range c.Projects {
		if blank(p.Title) {
			return errors.Errorf("project at index %d missing title", i)
		}
		if blank(p.Description) {
			return errors.Errorf("project %q missing description", p.Title)
		}
		if _, dup := seenProjects[p.Title]; dup {
			return errors.Errorf("duplicate project title %q", p.Title)
		}
		seenProjects[p.Title] = struct{}{}
		if err := validateMedia(p.Media); err != nil {
			return errors.Wrapf(err, "project %q", p.Title)
		}
	}

	seenExperience := make(map[ExperienceKey]struct{}, len(c.Resume.Experience))
	for i, e := range c.Resume.Experience {
		if blank(e.Company) || blank(e.Role) || blank(e.Period) {
			return errors.Errorf("experience at index %d needs company, role and period", i)
		}
		if _, dup := seenExperience[e.Key()]; dup {
			return errors.Errorf("duplicate experience %s", e.Key())
		}
		seenExperience[e.Key()] = struct{}{}
		if err := validateMedia(e.Media); err != nil {
			return errors.Wrapf(err, "experience %s", e.Key())
		}
	}

	seenSchools := make(map[string]struct{}, len(c.Resume.Education))
	for i, e := range c.Resume.Education {
		if blank(e.School) || blank(e.Degree) || blank(e.Period) {
			return errors.Errorf("education at index %d needs school, degree and period", i)
		}
		if _, dup := seenSchools[e.School]; dup {
			return errors.Errorf("duplicate school %q", e.School)
		}
		seenSchools[e.School] = struct{}{}
		for raw := range e.Grades {
			if _, err := ParseSemesterKey(raw); err != nil {
				return errors.Wrapf(err, "education %q", e.School)
			}
		}
	}

	type certKey struct{ name, year string }
	seenCerts := make(map[certKey]struct{}, len(c.Resume.Certifications))
	for _, cert := range c.Resume.Certifications {
		k := certKey{cert.Name, cert.Year}
		if _, dup := seenCerts[k]; dup {
			return errors.Errorf("duplicate certification %q (%s)", cert.Name, cert.Year)
		}
		seenCerts[k] = struct{}{}
	}

	for i, g := range c.Resume.Skills {
		if blank(g.Category) {
			return errors.Errorf("skill group at index %d missing category", i)
		}
	}
	return nil
}

func (p Profile) validate() error {
	if blank(p.Name) {
		return errors.New("name is required")
	}
	if blank(p.Headline) {
		return errors.New("headline is required")
	}
	seen := make(map[string]struct{}, len(p.Contacts))
	for _, c := range p.Contacts {
		if blank(c.URL) {
			return errors.Errorf("contact %q missing url", c.Label)
		}
		if _, dup := seen[c.URL]; dup {
			return errors.Errorf("duplicate contact url %q", c.URL)
		}
		seen[c.URL] = struct{}{}
	}
	return nil
}

func validateMedia(items []media.Item) error {
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return errors.Wrapf(err, "media %d", i)
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
