package pretty

import (
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CensusRow is one line of a node census.
type CensusRow struct {
	Name  string
	Count int
}

// CensusRows orders counts by descending count, then by name.
func CensusRows(counts map[string]int) []CensusRow {
	rows := make([]CensusRow, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, CensusRow{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// FormatCensus renders node counts as a bordered two-column table no
// wider than width.
func (s *Styles) FormatCensus(counts map[string]int, width int) string {
	if len(counts) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers("NODE", "COUNT").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := s.TableCell
			if row == table.HeaderRow {
				style = s.TableHeader
			}
			if col == 1 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	if width > 0 {
		t = t.Width(min(width, censusMaxWidth))
	}

	total := 0
	for _, r := range CensusRows(counts) {
		t = t.Row(r.Name, strconv.Itoa(r.Count))
		total += r.Count
	}
	t = t.Row("total", strconv.Itoa(total))

	return t.Render() + "\n"
}

const censusMaxWidth = 40

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
