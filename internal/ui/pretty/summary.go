package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/jirascope/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats round-trip statistics as a single line.
// Example: "2 of 12 files unstable, 5 changed, 3 placeholders".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesUnstable == 0 && stats.FilesErrored == 0 {
		msg := s.Success.Render("All files stable") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))
		if stats.FilesChanged > 0 {
			msg += s.Dim.Render(fmt.Sprintf(", %d changed", stats.FilesChanged))
		}
		return msg + s.Dim.Render(")") + "\n"
	}

	var parts []string
	if stats.FilesUnstable > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d of %d %s unstable",
			stats.FilesUnstable, stats.FilesDiscovered, plural(stats.FilesDiscovered, wordFile, wordFiles))))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	if stats.FilesChanged > 0 {
		parts = append(parts, fmt.Sprintf("%d changed", stats.FilesChanged))
	}
	if stats.WarningsTotal > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s",
			stats.WarningsTotal, plural(stats.WarningsTotal, "placeholder", "placeholders"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats round-trip statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	line := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-20s%s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	line("Files checked", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	line("Stable", s.Success.Render(strconv.Itoa(stats.FilesStable)))
	if stats.FilesUnstable > 0 {
		line("Unstable", s.Failure.Render(strconv.Itoa(stats.FilesUnstable)))
	}
	if stats.FilesErrored > 0 {
		line("Failed", s.Error.Render(strconv.Itoa(stats.FilesErrored)))
	}
	line("Changed on render", s.SummaryValue.Render(strconv.Itoa(stats.FilesChanged)))

	if stats.WarningsTotal > 0 {
		builder.WriteString("\n")
		line("Placeholders", s.Warning.Render(strconv.Itoa(stats.WarningsTotal)))
		for _, kind := range sortedKeys(stats.WarningsByKind) {
			line("  "+kind, s.SummaryValue.Render(strconv.Itoa(stats.WarningsByKind[kind])))
		}
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Round trip failed"))
	case stats.FilesUnstable > 0:
		builder.WriteString(s.Failure.Render("Round trip unstable"))
	case stats.WarningsTotal > 0:
		builder.WriteString(s.Warning.Render("Round trip stable with placeholders"))
	default:
		builder.WriteString(s.Success.Render("Round trip stable"))
	}
	builder.WriteString("\n")

	return builder.String()
}
