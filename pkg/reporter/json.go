package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/jirascope/pkg/roundtrip"
	"github.com/yaklabco/jirascope/pkg/runner"
)

// JSONVersion is the version of the JSON report layout.
const JSONVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's round trip.
type JSONFileResult struct {
	Path      string        `json:"path"`
	Stable    bool          `json:"stable"`
	Identical bool          `json:"identical"`
	Warnings  []JSONWarning `json:"warnings"`
	Diff      string        `json:"diff,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// JSONWarning is a placeholder inserted for unsupported Markdown.
type JSONWarning struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked  int            `json:"filesChecked"`
	FilesStable   int            `json:"filesStable"`
	FilesUnstable int            `json:"filesUnstable"`
	FilesChanged  int            `json:"filesChanged"`
	FilesErrored  int            `json:"filesErrored"`
	Placeholders  int            `json:"placeholders"`
	ByKind        map[string]int `json:"byKind"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return failures(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: JSONVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{ByKind: make(map[string]int)},
	}

	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		output.Files = append(output.Files, r.fileResult(file))
	}

	stats := result.Stats
	output.Summary.FilesChecked = stats.FilesProcessed
	output.Summary.FilesStable = stats.FilesStable
	output.Summary.FilesUnstable = stats.FilesUnstable
	output.Summary.FilesChanged = stats.FilesChanged
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.Placeholders = stats.WarningsTotal
	for kind, n := range stats.WarningsByKind {
		output.Summary.ByKind[kind] = n
	}

	return output
}

func (r *JSONReporter) fileResult(file runner.FileOutcome) JSONFileResult {
	fileResult := JSONFileResult{
		Path:     displayPath(file.Path, r.opts.WorkingDir),
		Warnings: make([]JSONWarning, 0),
	}

	if file.Error != nil {
		fileResult.Error = file.Error.Error()
		return fileResult
	}
	if file.Report == nil {
		return fileResult
	}

	report := file.Report
	fileResult.Stable = report.Stable
	fileResult.Identical = report.Identical
	for _, w := range report.Warnings {
		fileResult.Warnings = append(fileResult.Warnings, JSONWarning{
			Kind:    w.Kind,
			Line:    w.Line,
			Message: w.Message,
		})
	}
	if !report.Identical {
		fileResult.Diff = roundtrip.FormatDiff(report.Diffs)
	}
	return fileResult
}
