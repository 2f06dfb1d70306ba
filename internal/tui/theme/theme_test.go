package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/HaiFongPan/dirnav/internal/config"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want lipgloss.TerminalColor
	}{
		{"Cyan", lipgloss.Color("6")},
		{"white", lipgloss.Color("15")},
		{"DarkGray", lipgloss.Color("8")},
		{"LightYellow", lipgloss.Color("11")},
		{"#FF8800", lipgloss.Color("#ff8800")},
		{"#abc", lipgloss.Color("#abc")},
		{"208", lipgloss.Color("208")},
		{"Reset", lipgloss.NoColor{}},
		{"none", lipgloss.NoColor{}},
		{"chartreuse-ish", lipgloss.NoColor{}},
		{"#GGGGGG", lipgloss.NoColor{}},
		{"300", lipgloss.NoColor{}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseColor(tc.in))
		})
	}
}

func TestNewPalette(t *testing.T) {
	p := NewPalette(config.Default().Theme)

	assert.Equal(t, lipgloss.NoColor{}, p.Background)
	assert.Equal(t, lipgloss.Color("4"), p.SelectedBg)
	assert.Equal(t, lipgloss.Color("0"), p.SelectedFg)
	assert.Equal(t, lipgloss.Color("6"), p.Directory)
	assert.Equal(t, "> ", p.HighlightSymbol)
}

func TestGetIcon(t *testing.T) {
	assert.Equal(t, IconDirectory, GetIcon("src", true))
	assert.Equal(t, IconDirectory, GetIcon("weird.go", true))
	assert.Equal(t, extensionIcons["go"], GetIcon("main.GO", false))
	assert.Equal(t, IconFile, GetIcon("LICENSE", false))
}

func TestGetIconColor(t *testing.T) {
	c, ok := GetIconColor("lib.rs")
	assert.True(t, ok)
	assert.Equal(t, lipgloss.Color("1"), c)

	_, ok = GetIconColor("notes.unknown")
	assert.False(t, ok)
}

func TestGetFileColor(t *testing.T) {
	assert.Equal(t, ColorFileCode, GetFileColor("code"))
	assert.Equal(t, ColorWhite, GetFileColor("other"))
}
