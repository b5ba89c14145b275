// Package web serves the portfolio: the home page composed of every section,
// the project, experience and education detail pages, carousel fragments for
// HTMX, and the optional visitor dashboard.
package web

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/media"
	"github.com/Zachkp/portfolio/internal/visits"
)

// AdminCredentials gate the dashboard. Both must be set to enable it.
type AdminCredentials struct {
	Username string
	Password string
}

// Options configures a Server. Store is required.
type Options struct {
	Store    *content.Store
	BasePath string
	Logger   *slog.Logger
	Debug    bool
	// AssetsDir is served under the base path for media referenced by
	// relative path. Routes take precedence.
	AssetsDir string

	// PageCacheSize bounds the rendered page cache; 0 disables it.
	PageCacheSize int
	// Registry receives the server metrics and backs /metrics. A fresh
	// registry is used when nil.
	Registry *prometheus.Registry

	// Visits enables visitor tracking when non-nil.
	Visits         *visits.Store
	Hasher         visits.Hasher
	Admin          AdminCredentials
	VisitRetention time.Duration
}

// Server is the HTTP front of the portfolio.
type Server struct {
	engine   *gin.Engine
	store    *content.Store
	resolver media.Resolver
	base     string
	logger   *slog.Logger
	tmpl     *template.Template
	cache    *lru.Cache[string, []byte]
	metrics  *Metrics
	registry *prometheus.Registry
	assets   http.FileSystem

	visits         *visits.Store
	hasher         visits.Hasher
	admin          AdminCredentials
	adminToken     string
	visitRetention time.Duration
	pending        sync.WaitGroup
}

// New builds the engine and registers every route.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, errors.New("content store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	base := config.NormalizeBasePath(opts.BasePath)
	s := &Server{
		store:          opts.Store,
		resolver:       media.NewResolver(base),
		base:           base,
		logger:         logger,
		metrics:        metrics,
		registry:       registry,
		visits:         opts.Visits,
		hasher:         opts.Hasher,
		admin:          opts.Admin,
		visitRetention: opts.VisitRetention,
	}

	if opts.AssetsDir != "" {
		s.assets = http.Dir(opts.AssetsDir)
	}

	if opts.PageCacheSize > 0 {
		s.cache, err = lru.New[string, []byte](opts.PageCacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "create page cache")
		}
	}

	s.tmpl, err = template.New("").Funcs(s.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	if s.adminEnabled() {
		s.adminToken, err = visits.RandomToken()
		if err != nil {
			return nil, err
		}
	}

	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	s.engine = gin.New()
	// Titles and school names may contain encoded slashes.
	s.engine.UseRawPath = true
	s.engine.UnescapePathValues = true
	s.engine.SetHTMLTemplate(s.tmpl)
	s.engine.Use(gin.Recovery(), requestLogger(logger), s.metrics.middleware())
	if s.visits != nil {
		s.engine.Use(s.visitorTracking())
	}

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler exposes the engine for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() error {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return errors.Wrap(err, "static assets")
	}

	r := s.engine.Group(s.base)
	r.GET("/", s.home)
	r.GET("/project/:projectTitle", s.projectDetail)
	r.GET("/project/:projectTitle/media", s.projectMedia)
	r.GET("/experience/:experienceId", s.experienceDetail)
	r.GET("/experience/:experienceId/media", s.experienceMedia)
	r.GET("/education/:schoolName", s.educationDetail)
	r.StaticFS("/static", http.FS(static))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	if s.adminEnabled() {
		s.adminRoutes(r)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		if s.serveAsset(c) {
			return
		}
		s.notFound(c, kindPage, errors.Errorf("no route for %s", c.Request.URL.Path))
	})
	return nil
}

// serveAsset writes a file from the assets directory if the request names
// one below the base path.
func (s *Server) serveAsset(c *gin.Context) bool {
	if s.assets == nil || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		return false
	}
	rel, ok := strings.CutPrefix(c.Request.URL.Path, s.base)
	if !ok || rel == "" {
		return false
	}
	f, err := s.assets.Open(path.Clean("/" + rel))
	if err != nil {
		return false
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil || info.IsDir() {
		return false
	}
	c.FileFromFS(path.Clean("/"+rel), s.assets)
	return true
}

// Wait blocks until background visit inserts have finished. Call it after
// the HTTP server has shut down and before closing the visit store.
func (s *Server) Wait() {
	s.pending.Wait()
}

func (s *Server) adminEnabled() bool {
	return s.visits != nil && s.admin.Username != "" && s.admin.Password != ""
}
