package markdown

import (
	"strings"

	"github.com/yaklabco/jirascope/pkg/adf"
)

// openDelimiter returns the Markdown that opens m. Marks without a
// Markdown form open nothing.
func openDelimiter(m adf.Mark) string {
	switch m.Type {
	case adf.MarkStrong:
		return "**"
	case adf.MarkEm:
		return "*"
	case adf.MarkStrike:
		return "~~"
	case adf.MarkCode:
		return "`"
	case adf.MarkLink:
		return "["
	default:
		return ""
	}
}

// closeDelimiter returns the Markdown that closes m.
func closeDelimiter(m adf.Mark) string {
	switch m.Type {
	case adf.MarkStrong:
		return "**"
	case adf.MarkEm:
		return "*"
	case adf.MarkStrike:
		return "~~"
	case adf.MarkCode:
		return "`"
	case adf.MarkLink:
		var b strings.Builder
		b.WriteString("](")
		b.WriteString(m.Href())
		if title := m.Title(); title != "" {
			b.WriteString(` "`)
			b.WriteString(title)
			b.WriteString(`"`)
		}
		b.WriteString(")")
		return b.String()
	default:
		return ""
	}
}
