package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/jirascope/internal/ui/pretty"
	"github.com/yaklabco/jirascope/pkg/runner"
)

// TextReporter formats results as styled terminal output: one block per
// file that changed, then a summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s\n  %s  %s\n\n",
				r.styles.FormatFileHeader(path, r.styles.Failure.Render("failed")),
				r.styles.Error.Render("error"),
				r.styles.Message.Render(file.Error.Error()),
			)
			continue
		}

		if file.Report == nil {
			continue
		}
		if file.Report.Identical && len(file.Report.Warnings) == 0 && !r.opts.ShowAll {
			continue
		}

		report := *file.Report
		report.Name = path
		fmt.Fprintln(r.bw, r.styles.FormatReport(&report, r.opts.Context))
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return failures(result), nil
}

// SummaryReporter writes a single summary line.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryReporter creates a new one-line summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	var stats runner.Stats
	if result != nil {
		stats = result.Stats
	}
	if _, err := fmt.Fprint(r.opts.Writer, r.styles.FormatSummaryOneLine(stats)); err != nil {
		return 0, fmt.Errorf("write summary: %w", err)
	}
	return failures(result), nil
}
