// Package cmd holds the portfolio command line: serve runs the site and
// check validates a content directory.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve a personal portfolio site",
	Long: `portfolio serves a single-page portfolio with project, experience and
education detail pages rendered from JSON or YAML content files.

Run without a subcommand it serves the site, like "portfolio serve".
Settings come from the environment (PORT, PORTFOLIO_*), optionally via .env.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
