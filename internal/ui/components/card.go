package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pawquiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for quiz sections.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}

// Center places content horizontally and vertically within width x height.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
