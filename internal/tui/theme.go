package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the terminal client
var (
	colorPrimary  = lipgloss.Color("#a855f7")
	colorDim      = lipgloss.Color("#565f89")
	colorDanger   = lipgloss.Color("#f7768e")
	colorDone     = lipgloss.Color("#9ece6a")
	colorSelected = lipgloss.Color("#33467c")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2)

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorPrimary)

	cursorRowStyle = lipgloss.NewStyle().
			Background(colorSelected)

	doneTitleStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorDim)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(colorDanger)
)

// tagBadge renders a tag pill in the tag's own color
func tagBadge(title, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(title)
}
