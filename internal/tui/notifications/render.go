package notifications

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	s := severity.style()

	headerText := s.icon + " " + s.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Width(maxWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.borderForeground)).
		Padding(0, 1).
		Render(content)
}

// RenderToast renders a pending-action toast with its remaining grace time
// and the undo hint
func RenderToast(taskTitle, action string, secondsLeft int) string {
	message := fmt.Sprintf("%s %s", taskTitle, action)
	hint := fmt.Sprintf("%ds · press u to undo", secondsLeft)

	maxWidth := max(lipgloss.Width(message), lipgloss.Width(hint))

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c0caf5")).
		Width(maxWidth).
		Render(message)

	hintLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e0af68")).
		Width(maxWidth).
		Render(hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#565f89")).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, body, hintLine))
}
