package pretty

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/yaklabco/jirascope/pkg/roundtrip"
)

// FormatDiff renders a line diff with "-" and "+" prefixes in the diff
// colors. Unchanged runs longer than context lines are elided.
func (s *Styles) FormatDiff(diffs []diffmatchpatch.Diff, context int) string {
	var builder strings.Builder

	for i, d := range diffs {
		lines := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				builder.WriteString(s.DiffRemove.Render("-"+l) + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				builder.WriteString(s.DiffAdd.Render("+"+l) + "\n")
			}
		case diffmatchpatch.DiffEqual:
			for _, l := range elide(lines, context, i == 0, i == len(diffs)-1) {
				builder.WriteString(s.DiffContext.Render(" "+l) + "\n")
			}
		}
	}

	return builder.String()
}

// FormatReport renders one round-trip report: a header naming the file
// and its status, its placeholder warnings, and the diff when the output
// differs from the input.
func (s *Styles) FormatReport(report *roundtrip.Report, context int) string {
	var builder strings.Builder

	status := "identical"
	switch {
	case !report.Stable:
		status = s.Failure.Render("unstable")
	case !report.Identical:
		status = "changed"
	}

	builder.WriteString(s.FormatFileHeader(report.Name, status))
	builder.WriteString("\n")
	builder.WriteString(s.FormatWarnings(report.Name, report.Warnings))

	if !report.Identical {
		builder.WriteString(s.DiffHeader.Render("--- markdown") + "\n")
		builder.WriteString(s.DiffHeader.Render("+++ rendered") + "\n")
		builder.WriteString(s.FormatDiff(report.Diffs, context))
	}

	return builder.String()
}

func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, strings.TrimSuffix(l, "\n"))
		}
	}
	return out
}

// elide keeps at most context lines on each side of a change. A leading
// run keeps only its tail and a trailing run only its head.
func elide(lines []string, context int, first, last bool) []string {
	keep := 2 * context
	if first || last {
		keep = context
	}
	if context < 0 || len(lines) <= keep+1 {
		return lines
	}

	var head, tail []string
	if !first {
		head = lines[:context]
	}
	if !last {
		tail = lines[len(lines)-context:]
	}

	out := make([]string, 0, len(head)+len(tail)+1)
	out = append(out, head...)
	out = append(out, "...")
	return append(out, tail...)
}
