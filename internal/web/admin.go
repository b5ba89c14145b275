package web

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// adminRoutes wires the visitor dashboard. Only registered when a visit store
// and credentials are configured.
func (s *Server) adminRoutes(r *gin.RouterGroup) {
	cookiePath := s.base + "admin"
	loginURL := s.base + "admin/login"
	dashboardURL := s.base + "admin/dashboard"

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin_login", gin.H{
			"title":  "Admin Login",
			"action": loginURL,
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		user := c.PostForm("username")
		pass := c.PostForm("password")
		hashed := s.hasher.Hash(c.ClientIP())

		if !equalSecret(user, s.admin.Username) || !equalSecret(pass, s.admin.Password) {
			s.logger.Warn("failed admin login", "client", hashed)
			c.HTML(http.StatusUnauthorized, "admin_login", gin.H{
				"title":  "Admin Login",
				"action": loginURL,
				"error":  "Invalid credentials",
			})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, cookiePath, "", false, true)
		s.logger.Info("admin login", "client", hashed)
		c.Redirect(http.StatusFound, dashboardURL)
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, cookiePath, "", false, true)
		s.logger.Info("admin logout", "client", s.hasher.Hash(c.ClientIP()))
		c.Redirect(http.StatusFound, loginURL)
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth(loginURL))

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			s.logger.Error("load admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin_error", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin_dashboard", gin.H{
			"stats":     stats,
			"logoutURL": s.base + "admin/logout",
			"homeURL":   s.base,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=visit-stats.json")
		s.logger.Info("admin stats exported", "client", s.hasher.Hash(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	// Purges visits past the retention window immediately instead of waiting
	// for the next start.
	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.PurgeVisits(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}

func (s *Server) adminAuth(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equalSecret(token, s.adminToken) {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PurgeVisits deletes visits older than the retention window. It is a no-op
// without a visit store or retention.
func (s *Server) PurgeVisits(ctx context.Context) (int64, error) {
	if s.visits == nil || s.visitRetention <= 0 {
		return 0, nil
	}
	n, err := s.visits.Cleanup(ctx, s.visitRetention)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("privacy cleanup", "deleted", n)
	}
	return n, nil
}

func equalSecret(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
