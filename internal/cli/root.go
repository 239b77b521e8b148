// Package cli provides the Cobra command structure for jirascope.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jirascope/internal/logging"
	"github.com/yaklabco/jirascope/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root jirascope command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "jirascope",
		Short: "Convert between Markdown and Jira's Atlassian Document Format",
		Long: `jirascope converts Markdown to Atlassian Document Format (ADF) JSON,
the rich-text format behind Jira issue descriptions and comments, and
renders ADF back to Markdown.

Markdown constructs with no ADF equivalent become a visible placeholder,
or fail the conversion in strict mode. The roundtrip command shows how a
file changes after a trip through ADF.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newMD2ADFCommand())
	rootCmd.AddCommand(newADF2MDCommand())
	rootCmd.AddCommand(newRoundTripCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelp(rootCmd)

	return rootCmd
}
