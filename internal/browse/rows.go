package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderRows lays the table out with the selected row highlighted.
// Cell widths are measured visibly so color codes in status badges
// don't skew the columns.
func renderRows(cols []string, rows [][]string, selected int) string {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	pad := func(cells []string) string {
		var b strings.Builder
		for i, cell := range cells {
			b.WriteString(cell)
			if i < len(widths) {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		return b.String()
	}

	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = headerStyle.Render(c)
	}
	b.WriteString(pad(header) + "\n")

	for i, row := range rows {
		line := pad(row)
		if i == selected {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
