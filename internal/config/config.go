// Package config reads portfolio server settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full server configuration.
type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	BasePath   string `env:"PORTFOLIO_BASE_PATH" envDefault:"/"`
	ContentDir string `env:"PORTFOLIO_CONTENT_DIR" envDefault:"content"`
	// AssetsDir holds the images and videos content files refer to by
	// relative path. Empty disables asset serving.
	AssetsDir string `env:"PORTFOLIO_ASSETS_DIR" envDefault:"public"`
	Debug     bool   `env:"PORTFOLIO_DEBUG"`

	LogLevel  string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PORTFOLIO_LOG_FORMAT" envDefault:"text"`

	PageCacheSize int `env:"PORTFOLIO_PAGE_CACHE_SIZE" envDefault:"128"`

	// DBPath enables visitor tracking and the admin dashboard when set.
	DBPath         string        `env:"PORTFOLIO_DB_PATH"`
	VisitRetention time.Duration `env:"PORTFOLIO_VISIT_RETENTION" envDefault:"8760h"`
	AdminUsername  string        `env:"PORTFOLIO_ADMIN_USERNAME"`
	AdminPassword  string        `env:"PORTFOLIO_ADMIN_PASSWORD"`
}

// Load parses the environment into a Config and normalises it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.BasePath = NormalizeBasePath(cfg.BasePath)
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AdminEnabled reports whether the admin dashboard can be served.
func (c Config) AdminEnabled() bool {
	return c.DBPath != "" && c.AdminUsername != "" && c.AdminPassword != ""
}

// NormalizeBasePath returns p with exactly one leading and one trailing slash.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}
