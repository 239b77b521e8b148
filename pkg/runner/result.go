package runner

import (
	"github.com/yaklabco/jirascope/pkg/roundtrip"
)

// FileOutcome is the round-trip report for one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Report is nil when Error is set.
	Report *roundtrip.Report

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files checked without error.
	FilesProcessed int

	// FilesErrored is the number of files that could not be checked.
	FilesErrored int

	// FilesStable is the number of files whose tree survives a re-parse.
	FilesStable int

	// FilesUnstable is the number of files whose tree changes on re-parse.
	FilesUnstable int

	// FilesChanged is the number of files whose rendered text differs
	// from the source.
	FilesChanged int

	// WarningsTotal counts placeholders emitted for unsupported nodes.
	WarningsTotal int

	// WarningsByKind maps goldmark node kinds to warning counts.
	WarningsByKind map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file errored or was unstable.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.FilesUnstable > 0
}

// HasChanges reports whether any file rendered differently from its source.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

func newStats() Stats {
	return Stats{
		WarningsByKind: make(map[string]int),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	report := outcome.Report
	if report == nil {
		return
	}

	r.Stats.FilesProcessed++

	if report.Stable {
		r.Stats.FilesStable++
	} else {
		r.Stats.FilesUnstable++
	}

	if !report.Identical {
		r.Stats.FilesChanged++
	}

	r.Stats.WarningsTotal += len(report.Warnings)
	for _, w := range report.Warnings {
		r.Stats.WarningsByKind[w.Kind]++
	}
}
