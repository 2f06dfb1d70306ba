package theme

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Nerd Font glyphs
const (
	IconDirectory = ""
	IconFile      = ""
	IconDrive     = ""
)

var extensionIcons = map[string]string{
	"go":   "",
	"rs":   "",
	"py":   "",
	"js":   "",
	"ts":   "",
	"html": "",
	"css":  "",
	"json": "",
	"toml": "",
	"yaml": "",
	"yml":  "",
	"md":   "",
	"png":  "",
	"jpg":  "",
	"jpeg": "",
	"gif":  "",
	"zip":  "",
	"tar":  "",
	"gz":   "",
	"txt":  "",
	"mp3":  "",
	"exe":  "",
}

var extensionColors = map[string]string{
	"rs":   "red",
	"js":   "yellow",
	"ts":   "yellow",
	"css":  "blue",
	"html": "blue",
	"json": "lightyellow",
	"toml": "lightyellow",
	"png":  "magenta",
	"jpg":  "magenta",
	"zip":  "lightred",
	"tar":  "lightred",
	"py":   "lightblue",
	"go":   "lightcyan",
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// GetIcon returns the glyph shown before an entry name.
func GetIcon(name string, isDir bool) string {
	if isDir {
		return IconDirectory
	}
	if icon, ok := extensionIcons[extension(name)]; ok {
		return icon
	}
	return IconFile
}

// GetIconColor returns the colour for a file by extension. The second result
// is false when the palette's file colour should be used instead.
func GetIconColor(name string) (lipgloss.TerminalColor, bool) {
	c, ok := extensionColors[extension(name)]
	if !ok {
		return nil, false
	}
	return ParseColor(c), true
}
