package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/observability"
	"github.com/Zachkp/portfolio/internal/visits"
	"github.com/Zachkp/portfolio/internal/web"
)

const shutdownTimeout = 10 * time.Second

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	RunE:  runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	// The root command serves too, so a bare invocation starts the site.
	addServeFlags(rootCmd)
	addServeFlags(serveCmd)
	rootCmd.RunE = runServe
	rootCmd.AddCommand(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("port", 0, "listen port (overrides PORT)")
	cmd.Flags().String("content", "", "content directory (overrides PORTFOLIO_CONTENT_DIR)")
	cmd.Flags().String("base-path", "", "URL prefix the site is mounted under (overrides PORTFOLIO_BASE_PATH)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}
	logger := observability.NewLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, cfg, logger)
}

// serveConfig reads the environment and applies any flags that were set.
func serveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("content") {
		cfg.ContentDir, _ = flags.GetString("content")
	}
	if flags.Changed("base-path") {
		p, _ := flags.GetString("base-path")
		cfg.BasePath = config.NormalizeBasePath(p)
	}
	return cfg, nil
}

// newServer wires the content store, the optional visit store and the web
// server. The returned cleanup closes whatever was opened.
func newServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*web.Server, func(), error) {
	store, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("content loaded",
		"dir", cfg.ContentDir,
		"projects", len(store.Projects()),
		"experience", len(store.Experience()),
		"education", len(store.Education()),
	)

	opts := web.Options{
		Store:          store,
		BasePath:       cfg.BasePath,
		Logger:         logger,
		Debug:          cfg.Debug,
		AssetsDir:      cfg.AssetsDir,
		PageCacheSize:  cfg.PageCacheSize,
		VisitRetention: cfg.VisitRetention,
		Admin: web.AdminCredentials{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		},
	}
	cleanup := func() {}

	if cfg.DBPath != "" {
		db, err := visits.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		hasher, err := visits.NewHasher()
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		opts.Visits = db
		opts.Hasher = hasher
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("close visit store", "error", err)
			}
		}
		if !cfg.AdminEnabled() {
			logger.Warn("visit tracking enabled without admin credentials; dashboard disabled")
		}
	}

	srv, err := web.New(opts)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if _, err := srv.PurgeVisits(ctx); err != nil {
		logger.Warn("startup privacy cleanup failed", "error", err)
	}
	return srv, cleanup, nil
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	srv, cleanup, err := newServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", httpServer.Addr, "base_path", cfg.BasePath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = httpServer.Shutdown(shutdownCtx)
	srv.Wait()
	if err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
