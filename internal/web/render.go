package web

import (
	"bytes"
	"embed"
	"html"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/media"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const htmlContentType = "text/html; charset=utf-8"

// hxRequestHeader marks requests issued by HTMX, including boosted links.
const hxRequestHeader = "HX-Request"

// hxHistoryRestoreHeader marks a history cache miss. HTMX swaps the response
// into the whole body, so it needs the full layout.
const hxHistoryRestoreHeader = "HX-History-Restore-Request"

func isHTMX(r *http.Request) bool {
	if r == nil || strings.EqualFold(r.Header.Get(hxHistoryRestoreHeader), "true") {
		return false
	}
	return strings.EqualFold(r.Header.Get(hxRequestHeader), "true")
}

type layoutView struct {
	Title    string
	SiteName string
	Year     int
	Footer   string
	Body     template.HTML
}

func (s *Server) funcs() template.FuncMap {
	return template.FuncMap{
		"asset":    s.resolver.Resolve,
		"embedURL": media.EnhanceEmbedURL,
		"home":     func() string { return s.base },
		"static":   func(name string) string { return s.base + "static/" + name },
	}
}

func (s *Server) projectURL(title string) string {
	return s.base + "project/" + pathSegment(title)
}

func (s *Server) experienceURL(key content.ExperienceKey) string {
	return s.base + "experience/" + pathSegment(key.Encode())
}

func (s *Server) educationURL(school string) string {
	return s.base + "education/" + pathSegment(school)
}

// pathSegment escapes s for a single path segment. Plus signs are escaped
// too because gin unescapes raw path parameters with query semantics.
func pathSegment(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), "+", "%2B")
}

func (s *Server) pageTitle(title string) string {
	name := s.store.Profile().Name
	if title == "" || title == name {
		return name
	}
	return title + " · " + name
}

// renderPage writes the named template. HTMX requests get the bare fragment
// preceded by a <title>; everything else gets the full layout. Successful
// renders are cached since content never changes while the process runs.
func (s *Server) renderPage(c *gin.Context, status int, name, title string, data any) {
	s.respond(c, status, func(buf *bytes.Buffer) error {
		var body bytes.Buffer
		if err := s.tmpl.ExecuteTemplate(&body, name, data); err != nil {
			return err
		}
		if isHTMX(c.Request) {
			buf.WriteString("<title>" + html.EscapeString(s.pageTitle(title)) + "</title>\n")
			buf.Write(body.Bytes())
			return nil
		}
		return s.tmpl.ExecuteTemplate(buf, "layout", layoutView{
			Title:    s.pageTitle(title),
			SiteName: s.store.Profile().Name,
			Year:     time.Now().Year(),
			Footer:   FooterNote,
			Body:     template.HTML(body.String()),
		})
	})
}

// renderFragment writes a template without layout or title.
func (s *Server) renderFragment(c *gin.Context, status int, name string, data any) {
	s.respond(c, status, func(buf *bytes.Buffer) error {
		return s.tmpl.ExecuteTemplate(buf, name, data)
	})
}

func (s *Server) respond(c *gin.Context, status int, render func(*bytes.Buffer) error) {
	c.Header("Vary", hxRequestHeader+", "+hxHistoryRestoreHeader)
	key := cacheKey(c.Request)
	cacheable := s.cache != nil && status == http.StatusOK
	if cacheable {
		if body, ok := s.cache.Get(key); ok {
			s.metrics.cacheHits.Inc()
			c.Data(status, htmlContentType, body)
			return
		}
		s.metrics.cacheMisses.Inc()
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.logger.Error("render failed", "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	body := buf.Bytes()
	if cacheable {
		s.cache.Add(key, body)
	}
	c.Data(status, htmlContentType, body)
}

func cacheKey(r *http.Request) string {
	if isHTMX(r) {
		return "hx:" + r.URL.RequestURI()
	}
	return "full:" + r.URL.RequestURI()
}
