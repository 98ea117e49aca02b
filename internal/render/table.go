// Package render formats list output for the terminal: plain tables
// for one-shot commands, status badges shared with the browse TUI.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	successColor = lipgloss.Color("#73F59F") // Green
	errorColor   = lipgloss.Color("#FF6B6B") // Red
	warningColor = lipgloss.Color("#FFE066") // Yellow
	mutedColor   = lipgloss.Color("#626262") // Gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	activeStyle    = lipgloss.NewStyle().Foreground(successColor)
	inactiveStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	scheduledStyle = lipgloss.NewStyle().Foreground(warningColor)
	expiredStyle   = lipgloss.NewStyle().Foreground(errorColor)

	errorBlockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Foreground(errorColor).
			Padding(0, 1)

	pagerStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// StatusBadge colors a lifecycle status for terminal display.
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "active", "delivered", "paid":
		return activeStyle.Render(status)
	case "scheduled", "pending", "processing", "shipped":
		return scheduledStyle.Render(status)
	case "expired", "cancelled", "failed":
		return expiredStyle.Render(status)
	default:
		return inactiveStyle.Render(status)
	}
}

// Table renders rows under a styled header, columns padded to fit.
// Styled cells are measured by their visible width, not their byte
// length.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(h))
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+2))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(widths) {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Pager renders the "Showing 41-47 of 47 | Page 5/5 [3 4 5 6 7]" strip
// under a table.
func Pager(first, last, total, page, totalPages int, buttons []int) string {
	if total == 0 {
		return pagerStyle.Render("No records")
	}
	strip := make([]string, len(buttons))
	for i, n := range buttons {
		if n == page {
			strip[i] = fmt.Sprintf("[%d]", n)
		} else {
			strip[i] = fmt.Sprintf("%d", n)
		}
	}
	return pagerStyle.Render(fmt.Sprintf("Showing %d-%d of %d | Page %d/%d  %s",
		first, last, total, page, totalPages, strings.Join(strip, " ")))
}

// ErrorBlock is the full-screen error state for a failed list load.
func ErrorBlock(msg string) string {
	return errorBlockStyle.Render("✗ " + msg + "  (re-run the command to try again)")
}
