package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// CreatePanelStyle creates a bordered list panel. The focused panel gets the
// accent border.
func CreatePanelStyle(width, height int, focused bool) lipgloss.Style {
	border := ColorBrightBlack
	if focused {
		border = ColorBrightBlue
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(BorderStyleUnified).
		BorderForeground(lipgloss.Color(border))
}

// CreatePanelTitleStyle creates the title line at the top of a panel
func CreatePanelTitleStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if focused {
		return style.Foreground(lipgloss.Color(ColorBrightCyan))
	}
	return style.Foreground(lipgloss.Color(ColorBrightBlack))
}

// CreateItemStyle creates the style for an unselected list row
func CreateItemStyle(p Palette, fg lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(p.Background)
}

// CreateSelectedItemStyle creates the style for the selected list row
func CreateSelectedItemStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.SelectedFg).
		Background(p.SelectedBg).
		Bold(true)
}

// CreatePreviewStyle creates the style for preview text
func CreatePreviewStyle(p Palette, width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text).
		Width(width).
		MaxHeight(height)
}

// CreateSecondaryTextStyle creates a consistent secondary text style
func CreateSecondaryTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		Italic(true)
}

// CreateModeStyle creates the footer badge showing the input mode
func CreateModeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(color))
}

// CreateFooterStyle creates a consistent footer style
func CreateFooterStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color(ColorBrightBlack))
}
