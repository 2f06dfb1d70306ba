package layout

// Layout constants
const (
	// Panel layout, as fractions of the window width
	DrivesPanelRatio = 0.2
	FilesPanelRatio  = 0.4

	// Footer: mode and hints line, status line
	FooterHeight = 2

	// Panel title line inside the border
	PanelTitleHeight = 1

	// Editing popup, as percentages of the window
	PopupWidthPercent  = 60
	PopupHeightPercent = 20
	PopupMinWidth      = 30
	PopupMinHeight     = 5

	// Window size used before the first WindowSizeMsg arrives
	DefaultWindowWidth  = 80
	DefaultWindowHeight = 24

	// Smallest list area that still renders
	MinPanelHeight = 1
	MinPanelWidth  = 4
)
