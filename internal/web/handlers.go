package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/media"
)

// Entity kinds, used for not-found copy, metrics labels and carousel ids.
const (
	kindProject    = "project"
	kindExperience = "experience"
	kindEducation  = "education"
	kindPage       = "page"
)

func (s *Server) home(c *gin.Context) {
	s.renderPage(c, http.StatusOK, "home", "", s.homeView())
}

func (s *Server) projectDetail(c *gin.Context) {
	p, err := s.store.Project(c.Param("projectTitle"))
	if err != nil {
		s.notFound(c, kindProject, err)
		return
	}
	s.renderPage(c, http.StatusOK, "project", p.Title, projectView{
		Project:  p,
		Carousel: s.projectCarousel(p, queryInt(c, "media"), media.Detail),
	})
}

func (s *Server) experienceDetail(c *gin.Context) {
	e, err := s.store.ExperienceByID(c.Param("experienceId"))
	if err != nil {
		s.notFound(c, kindExperience, err)
		return
	}
	s.renderPage(c, http.StatusOK, "experience", e.Role+" at "+e.Company, experienceView{
		ExperienceEntry: e,
		Carousel:        s.experienceCarousel(e, queryInt(c, "media"), media.Detail),
	})
}

func (s *Server) educationDetail(c *gin.Context) {
	e, err := s.store.EducationBySchool(c.Param("schoolName"))
	if err != nil {
		s.notFound(c, kindEducation, err)
		return
	}
	s.renderPage(c, http.StatusOK, "education", e.School, educationView{
		EducationEntry: e,
		Semesters:      e.Semesters(),
	})
}

// projectMedia serves one carousel state. Plain requests are sent to the
// detail page at that index.
func (s *Server) projectMedia(c *gin.Context) {
	title := c.Param("projectTitle")
	p, err := s.store.Project(title)
	if err != nil {
		s.notFound(c, kindProject, err)
		return
	}
	index := queryInt(c, "i")
	if !isHTMX(c.Request) {
		c.Redirect(http.StatusFound, s.projectURL(title)+"?media="+strconv.Itoa(index))
		return
	}
	s.carouselFragment(c, s.projectCarousel(p, index, media.ParseVariant(c.Query("variant"))))
}

func (s *Server) experienceMedia(c *gin.Context) {
	e, err := s.store.ExperienceByID(c.Param("experienceId"))
	if err != nil {
		s.notFound(c, kindExperience, err)
		return
	}
	index := queryInt(c, "i")
	if !isHTMX(c.Request) {
		c.Redirect(http.StatusFound, s.experienceURL(e.Key())+"?media="+strconv.Itoa(index))
		return
	}
	s.carouselFragment(c, s.experienceCarousel(e, index, media.ParseVariant(c.Query("variant"))))
}

func (s *Server) carouselFragment(c *gin.Context, view *carouselView) {
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}
	s.renderFragment(c, http.StatusOK, "carousel", view)
}

// notFound renders the fallback view with a way back home. It is never an
// error page: the lookup miss is logged at debug and counted.
func (s *Server) notFound(c *gin.Context, kind string, err error) {
	s.metrics.notFound.WithLabelValues(kind).Inc()
	s.logger.Debug("lookup miss", "kind", kind, "path", c.Request.URL.Path, "error", err)
	s.renderPage(c, http.StatusNotFound, "notfound", notFoundText[kind], notFoundView{
		Message: notFoundText[kind],
		HomeURL: s.base,
	})
}

// queryInt reads an integer query parameter, 0 when absent or malformed.
func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}
