package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jirascope/pkg/parser/goldmark"
)

// FormatWarning formats a parser warning as "path:line  warning  message  (Kind)".
func (s *Styles) FormatWarning(path string, w goldmark.Warning) string {
	location := s.FilePath.Render(path)
	if w.Line > 0 {
		location += s.Location.Render(fmt.Sprintf(":%d", w.Line))
	}

	return fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Warning.Render("warning"),
		s.Message.Render(w.Message),
		s.Kind.Render("("+w.Kind+")"),
	)
}

// FormatWarnings formats every warning for path, one per line.
func (s *Styles) FormatWarnings(path string, warnings []goldmark.Warning) string {
	var builder strings.Builder
	for _, w := range warnings {
		builder.WriteString(s.FormatWarning(path, w))
	}
	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path, status string) string {
	header := s.FilePath.Render(path)
	if status != "" {
		header += s.Dim.Render(" (" + status + ")")
	}
	return header
}
