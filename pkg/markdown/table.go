package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/jirascope/pkg/adf"
)

// table renders in two passes. The first pass renders the header row's
// cells to measure them; the second writes the header row, a separator
// sized to those widths, and the remaining rows.
func (w *writer) table(t *adf.Table) {
	if len(t.Content) == 0 {
		return
	}

	widths := w.measureRow(t.Content[0])

	for i, row := range t.Content {
		w.node(row)
		if i == 0 {
			w.separator(widths)
		}
	}
}

// measureRow returns the display width of every rendered cell of row.
func (w *writer) measureRow(row adf.Node) []int {
	parent, ok := row.(adf.Parent)
	if !ok {
		return nil
	}
	cells := parent.Children()
	widths := make([]int, 0, len(cells))
	for _, cell := range cells {
		widths = append(widths, runewidth.StringWidth(w.cell(cell)))
	}
	return widths
}

func (w *writer) separator(widths []int) {
	w.WriteString("|")
	for _, width := range widths {
		w.WriteString(strings.Repeat("-", width+2))
		w.WriteString("|")
	}
	w.WriteString("\n")
}

func (w *writer) tableRow(row *adf.TableRow) {
	w.WriteString("| ")
	for i, cell := range row.Content {
		if i > 0 {
			w.WriteString(" | ")
		}
		w.WriteString(w.cell(cell))
	}
	w.WriteString(" |\n")
}

// cell renders a table cell on a single line. Jira cells usually wrap their
// text in paragraphs, so line endings are folded into spaces and pipes are
// escaped to keep the row intact.
func (w *writer) cell(cell adf.Node) string {
	s := strings.TrimRight(w.sub(cell), "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
