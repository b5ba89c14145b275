package web

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/visits"
)

const visitRecordTimeout = 5 * time.Second

// requestLogger emits one structured record per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"htmx", isHTMX(c.Request),
		)
	}
}

// visitorTracking records page views with hashed IPs. Assets, admin pages,
// health and metrics endpoints are skipped and DNT is honoured. The insert
// runs in the background and failures are only logged.
func (s *Server) visitorTracking() gin.HandlerFunc {
	skip := []string{"static/", "admin/", "healthz", "metrics", "favicon"}
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		rel := strings.TrimPrefix(path, s.base)
		for _, prefix := range skip {
			if strings.HasPrefix(rel, prefix) {
				return
			}
		}
		if c.GetHeader("DNT") == "1" || c.Writer.Status() >= 400 {
			return
		}
		// Carousel steps and unrouted assets are not page views.
		if route := c.FullPath(); route == "" || strings.HasSuffix(route, "/media") {
			return
		}

		v := visits.Visit{
			HashedIP:  s.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
		}
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			ctx, cancel := context.WithTimeout(context.Background(), visitRecordTimeout)
			defer cancel()
			if err := s.visits.Record(ctx, v); err != nil {
				s.logger.Warn("record visit", "path", v.Path, "error", err)
			}
		}()
	}
}
