package web

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/media"
)

type homeView struct {
	HeroEyebrow    string
	Profile        content.Profile
	Projects       []projectCard
	Experience     []experienceRow
	Skills         []content.SkillGroup
	Education      []educationCard
	Certifications []content.Certification

	ProjectsText, ExperienceText, SkillsText, EducationText, ContactText sectionText
	CertificationsTitle                                                  string
}

type projectCard struct {
	content.Project
	URL      string
	Carousel *carouselView
}

type experienceRow struct {
	content.ExperienceEntry
	URL string
}

// educationCard has an empty URL when the entry has no grade table, which
// renders it as a static card.
type educationCard struct {
	content.EducationEntry
	URL string
}

type projectView struct {
	content.Project
	Carousel *carouselView
}

type experienceView struct {
	content.ExperienceEntry
	Carousel *carouselView
}

type educationView struct {
	content.EducationEntry
	Semesters []content.Semester
}

type notFoundView struct {
	Message string
	HomeURL string
}

// carouselView is one rendered state of a media carousel. PrevURL/NextURL
// fetch the neighbouring state as a fragment; PrevHref/NextHref are the
// full-page fallbacks.
type carouselView struct {
	ID          string
	Title       string
	Variant     media.Variant
	Item        media.Item
	Position    int
	Total       int
	HasMultiple bool
	PrevURL     string
	NextURL     string
	PrevHref    string
	NextHref    string
}

func (v *carouselView) Preview() bool { return v.Variant == media.Preview }

// newCarousel returns nil for an empty list so templates render nothing.
// pageURL is the entity detail page; the fragment endpoint lives below it.
func newCarousel(kind, key, title, pageURL string, items []media.Item, start int, variant media.Variant) *carouselView {
	c := media.NewCarousel(items, start)
	item, ok := c.Current()
	if !ok {
		return nil
	}
	fragment := func(i int) string {
		return pageURL + "/media?i=" + strconv.Itoa(i) + "&variant=" + string(variant)
	}
	page := func(i int) string {
		return pageURL + "?media=" + strconv.Itoa(i)
	}
	prev, next := c.Peek(-1), c.Peek(1)
	return &carouselView{
		ID:          carouselID(kind, key, variant),
		Title:       title,
		Variant:     variant,
		Item:        item,
		Position:    c.Position(),
		Total:       c.Len(),
		HasMultiple: c.HasMultiple(),
		PrevURL:     fragment(prev),
		NextURL:     fragment(next),
		PrevHref:    page(prev),
		NextHref:    page(next),
	}
}

// carouselID is a stable DOM id per entity and variant.
func carouselID(kind, key string, variant media.Variant) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(kind + "\x00" + key))
	return fmt.Sprintf("carousel-%s-%s-%08x", kind, variant, h.Sum32())
}

func (s *Server) projectCarousel(p content.Project, start int, variant media.Variant) *carouselView {
	return newCarousel(kindProject, p.Title, p.Title, s.projectURL(p.Title), p.Media, start, variant)
}

func (s *Server) experienceCarousel(e content.ExperienceEntry, start int, variant media.Variant) *carouselView {
	key := e.Key()
	return newCarousel(kindExperience, key.Encode(), e.Role, s.experienceURL(key), e.Media, start, variant)
}

func (s *Server) homeView() homeView {
	v := homeView{
		HeroEyebrow:         HeroEyebrow,
		Profile:             s.store.Profile(),
		Skills:              s.store.Skills(),
		Certifications:      s.store.Certifications(),
		ProjectsText:        ProjectsText,
		ExperienceText:      ExperienceText,
		SkillsText:          SkillsText,
		EducationText:       EducationText,
		ContactText:         ContactText,
		CertificationsTitle: CertificationsTitle,
	}
	for _, p := range s.store.Projects() {
		v.Projects = append(v.Projects, projectCard{
			Project:  p,
			URL:      s.projectURL(p.Title),
			Carousel: s.projectCarousel(p, 0, media.Preview),
		})
	}
	for _, e := range s.store.Experience() {
		v.Experience = append(v.Experience, experienceRow{ExperienceEntry: e, URL: s.experienceURL(e.Key())})
	}
	for _, e := range s.store.Education() {
		card := educationCard{EducationEntry: e}
		if e.HasGrades() {
			card.URL = s.educationURL(e.School)
		}
		v.Education = append(v.Education, card)
	}
	return v
}
