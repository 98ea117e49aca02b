package browse

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#7D56F4")
	errorColor   = lipgloss.Color("#FF6B6B")
	warningColor = lipgloss.Color("#FFE066")
	mutedColor   = lipgloss.Color("#626262")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#2d2d3d"))

	errorLineStyle = lipgloss.NewStyle().Foreground(errorColor)
	confirmStyle   = lipgloss.NewStyle().Bold(true).Foreground(warningColor)
	searchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A9CF7"))
	metaStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle      = lipgloss.NewStyle().Foreground(mutedColor)
)
