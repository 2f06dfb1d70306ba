package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// CreateInputDialogStyle creates the centred popup used for text entry
func CreateInputDialogStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrightYellow)).
		Padding(1, 2)
}

// CreatePromptStyle creates a style for prompt text in dialogs
func CreatePromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightYellow)).
		Bold(true)
}

// CreateInputStyle creates a style for the text being typed in a dialog
func CreateInputStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Underline(true)
}
