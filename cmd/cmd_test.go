package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
)

const sampleContent = "../content"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckContentSample(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, checkContent(&out, sampleContent))
	assert.Contains(t, out.String(), "ok")
	assert.Contains(t, out.String(), "projects:       4")
	assert.Contains(t, out.String(), "education:      2")
}

func TestCheckContentMissingDir(t *testing.T) {
	var out bytes.Buffer
	err := checkContent(&out, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile file")
	assert.Empty(t, out.String())
}

func TestServeConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PORTFOLIO_BASE_PATH", "/env")

	cmd := &cobra.Command{}
	cmd.Flags().Int("port", 0, "")
	cmd.Flags().String("content", "", "")
	cmd.Flags().String("base-path", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--base-path", "folio", "--content", "elsewhere"}))

	cfg, err := serveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/folio/", cfg.BasePath)
	assert.Equal(t, "elsewhere", cfg.ContentDir)
}

func TestNewServerWithVisitStore(t *testing.T) {
	cfg := config.Config{
		ContentDir:     sampleContent,
		AssetsDir:      "../public",
		BasePath:       "/",
		PageCacheSize:  8,
		DBPath:         filepath.Join(t.TempDir(), "visits.db"),
		VisitRetention: time.Hour,
		AdminUsername:  "admin",
		AdminPassword:  "secret",
	}
	srv, cleanup, err := newServer(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	for path, want := range map[string]int{
		"/":                        http.StatusOK,
		"/project/Terminal%20Mail": http.StatusOK,
		"/images/mail-inbox.svg":   http.StatusOK,
		"/admin/login":             http.StatusOK,
		"/education/Western%20Governors%20University": http.StatusOK,
		"/project/Does%20Not%20Exist":                 http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}

func TestNewServerBadContent(t *testing.T) {
	_, _, err := newServer(context.Background(), config.Config{ContentDir: t.TempDir()}, discardLogger())
	require.Error(t, err)
}

func TestRootCommandServesByDefault(t *testing.T) {
	assert.NotNil(t, rootCmd.RunE)
	require.NotNil(t, rootCmd.Flags().Lookup("content"))

	rootCmd.SetArgs([]string{"--content", t.TempDir()})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	// An empty content dir fails in the serve path instead of printing help.
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile file")
}

func TestCheckContentNamesSemesterFormat(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"profile.json":  `{"name": "Jane", "headline": "Engineer"}`,
		"projects.json": `[]`,
		"resume.yaml": `education:
  - school: Hanseo
    degree: BSc
    period: "2020"
    grades:
      "2024-S":
        semester: Spring 2024
`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	err := checkContent(io.Discard, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"2024-S"`)
	assert.Contains(t, err.Error(), "YYYY-T")
	assert.Contains(t, err.Error(), `e.g. "2025-1"`)
}
