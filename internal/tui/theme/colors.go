package theme

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HaiFongPan/dirnav/internal/config"
)

// Chrome colours for borders, footer and status messages. Panel contents use
// the configurable Palette instead.
const (
	ColorWhite        = "#FFFFFF" // ANSI 15 - primary text
	ColorBrightBlack  = "#808080" // ANSI 8 - secondary text
	ColorBrightBlue   = "#5C7CFA" // ANSI 12 - primary accent
	ColorBrightCyan   = "#66D9E8" // ANSI 14 - secondary accent
	ColorBrightGreen  = "#51CF66" // ANSI 10 - success
	ColorBrightYellow = "#FFD43B" // ANSI 11 - warning
	ColorBrightRed    = "#FF6B6B" // ANSI 9 - error

	// File type colors
	ColorFileImage    = "#74C0FC" // Light blue
	ColorFileDocument = "#51CF66" // Green
	ColorFileArchive  = "#FCC419" // Amber
	ColorFileVideo    = "#FF8787" // Light red
	ColorFileAudio    = "#DA77F2" // Purple
	ColorFileText     = "#74C0FC" // Cyan
	ColorFileCode     = "#B197FC" // Light purple
	ColorFileData     = "#FFE066" // Light yellow
)

// ansiNames maps configuration colour names to the 16 ANSI palette slots.
var ansiNames = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"grey":         "7",
	"darkgray":     "8",
	"darkgrey":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// ParseColor turns a configuration colour into a terminal colour. It accepts
// ANSI names, "#rrggbb" and 0-255 palette indices. "reset", "none" and anything
// unrecognised mean the terminal default.
func ParseColor(name string) lipgloss.TerminalColor {
	s := strings.ToLower(strings.TrimSpace(name))

	if code, ok := ansiNames[s]; ok {
		return lipgloss.Color(code)
	}

	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 4) {
		if _, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return lipgloss.Color(s)
		}
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(s)
	}

	return lipgloss.NoColor{}
}

// Palette is the resolved form of the theme section of the configuration.
type Palette struct {
	Background      lipgloss.TerminalColor
	Text            lipgloss.TerminalColor
	SelectedBg      lipgloss.TerminalColor
	SelectedFg      lipgloss.TerminalColor
	Directory       lipgloss.TerminalColor
	File            lipgloss.TerminalColor
	HighlightSymbol string
}

// NewPalette resolves every colour in the theme configuration.
func NewPalette(cfg config.ThemeConfig) Palette {
	return Palette{
		Background:      ParseColor(cfg.Background),
		Text:            ParseColor(cfg.Text),
		SelectedBg:      ParseColor(cfg.SelectedBg),
		SelectedFg:      ParseColor(cfg.SelectedFg),
		Directory:       ParseColor(cfg.Directory),
		File:            ParseColor(cfg.File),
		HighlightSymbol: cfg.HighlightSymbol,
	}
}

// GetFileColor returns the color for a given file category
func GetFileColor(category string) string {
	switch category {
	case "image":
		return ColorFileImage
	case "document":
		return ColorFileDocument
	case "archive":
		return ColorFileArchive
	case "video":
		return ColorFileVideo
	case "audio":
		return ColorFileAudio
	case "text":
		return ColorFileText
	case "code":
		return ColorFileCode
	case "data":
		return ColorFileData
	default:
		return ColorWhite
	}
}
