package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jirascope/internal/logging"
	"github.com/yaklabco/jirascope/pkg/reporter"
	"github.com/yaklabco/jirascope/pkg/runner"
)

type roundTripFlags struct {
	conversionFlags
	check          bool
	quiet          bool
	all            bool
	format         string
	exclude        []string
	jobs           int
	context        int
	followSymlinks bool
}

func newRoundTripCommand() *cobra.Command {
	flags := &roundTripFlags{}

	cmd := &cobra.Command{
		Use:   "roundtrip [paths...]",
		Short: "Check how Markdown files survive a trip through ADF",
		Long: `Convert Markdown files to ADF and back, and report the differences.

A file is stable when converting the rendered Markdown again gives the
same document. Rendering normalizes syntax (bullets become "*", emphasis
becomes "*"), so stable files may still change; those are shown as a diff.

By default, checks all .md and .markdown files in the current directory
and subdirectories. Hidden files and directories are skipped.

Examples:
  jirascope roundtrip                      # Check current directory
  jirascope roundtrip docs/ README.md      # Check specific paths
  jirascope roundtrip --check              # Exit 1 if any file is unstable
  jirascope roundtrip --exclude 'vendor/**' --jobs 4
  jirascope roundtrip --format json        # Machine-readable report
  jirascope roundtrip --context -1 notes.md   # Show the full diff`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundTrip(cmd, args, flags)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit non-zero when any file is unstable or fails")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print only a one-line summary (same as --format summary)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "also report files that render identically")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns of paths to skip")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (default: number of CPUs)")
	cmd.Flags().IntVar(&flags.context, "context", reporter.DefaultContext,
		"unchanged lines shown around each change; negative shows everything")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

func runRoundTrip(cmd *cobra.Command, args []string, flags *roundTripFlags) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if flags.quiet {
		format = reporter.FormatSummary
	}

	sess, err := newSession(cmd, flags.overrides(cmd))
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	opts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     runner.DefaultExtensions(),
		ExcludeGlobs:   flags.exclude,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           flags.jobs,
	}

	sess.logger.Debug("starting round trip",
		"paths", opts.Paths,
		"working_dir", opts.WorkingDir,
		"jobs", opts.Jobs,
	)

	result, err := runner.New(sess.converter()).Run(sess.ctx, opts)
	if err != nil {
		return fmt.Errorf("round trip: %w", err)
	}

	sess.logger.Debug("round trip complete",
		logging.FieldFiles, result.Stats.FilesProcessed,
		logging.FieldStable, result.Stats.FilesStable,
		logging.FieldUnstable, result.Stats.FilesUnstable,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:     sess.out,
		Format:     format,
		Color:      sess.cfg.Color,
		ShowAll:    flags.all,
		Context:    flags.context,
		Compact:    !sess.cfg.JSON.Indent,
		WorkingDir: workDir,
	})
	if err != nil {
		return err
	}

	if _, err := rep.Report(sess.ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if ExitCodeFromResult(result, flags.check) != ExitSuccess {
		return ErrRoundTripFailed
	}
	return nil
}
