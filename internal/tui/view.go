package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/HaiFongPan/dirnav/internal/browser"
	"github.com/HaiFongPan/dirnav/internal/tui/layout"
	"github.com/HaiFongPan/dirnav/internal/tui/theme"
	"github.com/HaiFongPan/dirnav/internal/utils"
)

// listRow is one line of a list panel before styling
type listRow struct {
	icon  string
	label string
	color lipgloss.TerminalColor
}

// View implements the bubbletea.Model interface
func (m *BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == ModeEditing {
		return m.renderFloatingDialog(m.renderCreateDialog())
	}

	width := max(m.windowWidth, layout.MinPanelWidth*3)
	bodyHeight := max(m.windowHeight-layout.FooterHeight, theme.BorderSize+layout.PanelTitleHeight+layout.MinPanelHeight)

	drivesWidth := int(float64(width) * layout.DrivesPanelRatio)
	filesWidth := int(float64(width) * layout.FilesPanelRatio)
	previewWidth := width - drivesWidth - filesWidth

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderDrivesPanel(drivesWidth, bodyHeight),
		m.renderFilesPanel(filesWidth, bodyHeight),
		m.renderPreviewPanel(previewWidth, bodyHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter(width))
}

func (m *BrowserModel) renderDrivesPanel(width, height int) string {
	rows := make([]listRow, 0, len(m.drives.Mounts()))
	for _, mount := range m.drives.Mounts() {
		rows = append(rows, listRow{icon: theme.IconDrive, label: mount, color: m.palette.Directory})
	}
	selected, ok := m.drives.SelectedIndex()
	if !ok {
		selected = -1
	}
	return m.renderListPanel("Drives", rows, selected, width, height, m.focus == FocusDrives)
}

func (m *BrowserModel) renderFilesPanel(width, height int) string {
	title := "Files: " + m.dir.Path()
	if m.mode == ModeSearch || m.dir.Query() != "" {
		title = "Search: " + m.dir.Query()
	}

	filtered := m.dir.Filtered()
	rows := make([]listRow, 0, len(filtered))
	for _, entry := range filtered {
		rows = append(rows, m.entryRow(entry))
	}
	selected, ok := m.dir.SelectedIndex()
	if !ok {
		selected = -1
	}
	return m.renderListPanel(title, rows, selected, width, height, m.focus == FocusFiles)
}

func (m *BrowserModel) entryRow(entry browser.Entry) listRow {
	name := entry.Name()
	if m.dir.IsDir(entry) {
		return listRow{icon: theme.GetIcon(name, true), label: name, color: m.palette.Directory}
	}
	color := m.palette.File
	if c, ok := theme.GetIconColor(name); ok {
		color = c
	}
	return listRow{icon: theme.GetIcon(name, false), label: name, color: color}
}

// renderListPanel draws a bordered list, scrolled so the selected row is visible
func (m *BrowserModel) renderListPanel(title string, rows []listRow, selected, width, height int, focused bool) string {
	innerWidth := max(width-theme.BorderSize, layout.MinPanelWidth)
	innerHeight := max(height-theme.BorderSize, layout.PanelTitleHeight+layout.MinPanelHeight)
	visible := innerHeight - layout.PanelTitleHeight

	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}
	end := min(start+visible, len(rows))

	symbol := m.palette.HighlightSymbol
	padding := strings.Repeat(" ", lipgloss.Width(symbol))
	clip := lipgloss.NewStyle().MaxWidth(innerWidth)

	var b strings.Builder
	b.WriteString(clip.Render(theme.CreatePanelTitleStyle(focused).Render(title)))
	for i := start; i < end; i++ {
		row := rows[i]
		b.WriteString("\n")
		if i == selected {
			line := fmt.Sprintf("%s%s %s", symbol, row.icon, row.label)
			b.WriteString(clip.Render(theme.CreateSelectedItemStyle(m.palette).Render(line)))
			continue
		}
		line := fmt.Sprintf("%s%s %s", padding, row.icon, row.label)
		b.WriteString(clip.Render(theme.CreateItemStyle(m.palette, row.color).Render(line)))
	}

	return theme.CreatePanelStyle(innerWidth, innerHeight, focused).Render(b.String())
}

func (m *BrowserModel) renderPreviewPanel(width, height int) string {
	innerWidth := max(width-theme.BorderSize, layout.MinPanelWidth)
	innerHeight := max(height-theme.BorderSize, layout.PanelTitleHeight+layout.MinPanelHeight)

	title := theme.CreatePanelTitleStyle(false).Render("Preview")
	text := theme.CreatePreviewStyle(m.palette, innerWidth, innerHeight-layout.PanelTitleHeight).
		Render(sanitizePreview(m.dir.Preview()))

	return theme.CreatePanelStyle(innerWidth, innerHeight, false).Render(title + "\n" + text)
}

// sanitizePreview drops control characters that would move the terminal cursor
func sanitizePreview(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case r < 0x20, r == 0x7f:
			return -1
		}
		return r
	}, s)
}

func (m *BrowserModel) renderFooter(width int) string {
	modeColor := theme.ColorBrightBlue
	switch m.mode {
	case ModeEditing:
		modeColor = theme.ColorBrightYellow
	case ModeSearch:
		modeColor = theme.ColorBrightGreen
	}
	badge := theme.CreateModeStyle(modeColor).Render(m.mode.String())
	focus := theme.CreateSecondaryTextStyle().Render(m.focus.String())
	hints := m.help.ShortHelpView(m.keyMap.modeHelp(m.mode, m.focus))
	firstLine := lipgloss.JoinHorizontal(lipgloss.Top, badge, " ", focus, "  ", hints)

	status := m.status.RenderMessage()
	info := m.renderSelectionInfo()
	gap := max(width-lipgloss.Width(status)-lipgloss.Width(info), 1)
	secondLine := status + strings.Repeat(" ", gap) + info

	footerStyle := theme.CreateFooterStyle(width)
	return footerStyle.Render(firstLine) + "\n" + footerStyle.Render(secondLine)
}

// renderSelectionInfo describes the selected file: size, category and age
func (m *BrowserModel) renderSelectionInfo() string {
	entry, ok := m.dir.Selected()
	if !ok {
		return ""
	}
	info, err := m.dir.Stat(entry)
	if err != nil {
		return ""
	}
	if info.IsDir() {
		return theme.CreateSecondaryTextStyle().Render("dir · " + humanize.Time(info.ModTime()))
	}

	category := utils.GetFileCategory(utils.DetectContentType(entry.Name(), nil))
	categoryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetFileColor(category)))
	return categoryStyle.Render(category) + theme.CreateSecondaryTextStyle().Render(
		fmt.Sprintf(" · %s · %s", humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime())))
}

func (m *BrowserModel) renderCreateDialog() string {
	width := max(m.windowWidth*layout.PopupWidthPercent/100, layout.PopupMinWidth)
	height := max(m.windowHeight*layout.PopupHeightPercent/100, layout.PopupMinHeight)

	prompt := theme.CreatePromptStyle().Render("Create (end with / for a directory)")
	input := theme.CreateInputStyle().Render(string(m.input)) + "█"
	hints := m.help.ShortHelpView(m.keyMap.modeHelp(ModeEditing, m.focus))

	content := lipgloss.JoinVertical(lipgloss.Left, prompt, "", input, "", hints)
	return theme.CreateInputDialogStyle(width, height).Render(content)
}

// renderFloatingDialog centres a dialog in the window
func (m *BrowserModel) renderFloatingDialog(dialog string) string {
	return lipgloss.Place(
		m.windowWidth,
		m.windowHeight,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#222222")),
	)
}
