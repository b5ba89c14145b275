package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate a content directory",
	Long: `check loads the profile, resume and projects files and reports any
validation error: missing fields, duplicate titles or experience keys, bad
media entries and malformed semester keys.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir = cfg.ContentDir
		}
		return checkContent(cmd.OutOrStdout(), dir)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkContent(w io.Writer, dir string) error {
	store, err := content.Load(dir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s: ok\n", dir)
	_, _ = fmt.Fprintf(w, "  profile:        %s\n", store.Profile().Name)
	_, _ = fmt.Fprintf(w, "  projects:       %d\n", len(store.Projects()))
	_, _ = fmt.Fprintf(w, "  experience:     %d\n", len(store.Experience()))
	_, _ = fmt.Fprintf(w, "  education:      %d\n", len(store.Education()))
	_, _ = fmt.Fprintf(w, "  certifications: %d\n", len(store.Certifications()))
	return nil
}
