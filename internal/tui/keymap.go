package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/HaiFongPan/dirnav/internal/config"
)

// KeyMap holds the help entries shown in the footer. Key matching itself is
// done by keys.Resolver; these bindings only describe the configured keys.
type KeyMap struct {
	Quit        key.Binding
	Search      key.Binding
	Cancel      key.Binding
	Submit      key.Binding
	Down        key.Binding
	Up          key.Binding
	Delete      key.Binding
	Create      key.Binding
	FocusFiles  key.Binding
	FocusDrives key.Binding
	BackDir     key.Binding
	Reload      key.Binding
	CopyPath    key.Binding
	Open        key.Binding
}

func newHelpBinding(keyName, desc string) key.Binding {
	if keyName == "" {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keyName),
		key.WithHelp(keyName, desc),
	)
}

// NewKeyMap builds the help entries from the configured bindings
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Quit:        newHelpBinding(cfg.Quit, "quit"),
		Search:      newHelpBinding(cfg.Search, "search"),
		Cancel:      newHelpBinding(cfg.Cancel, "cancel"),
		Submit:      newHelpBinding(cfg.Submit, "open"),
		Down:        newHelpBinding(cfg.Down, "down"),
		Up:          newHelpBinding(cfg.Up, "up"),
		Delete:      newHelpBinding(cfg.Delete, "delete"),
		Create:      newHelpBinding(cfg.Create, "create"),
		FocusFiles:  newHelpBinding(cfg.FocusFiles, "files"),
		FocusDrives: newHelpBinding(cfg.FocusDrives, "drives"),
		BackDir:     newHelpBinding(cfg.BackDir, "parent"),
		Reload:      newHelpBinding(cfg.Reload, "reload"),
		CopyPath:    newHelpBinding(cfg.CopyPath, "copy path"),
		Open:        newHelpBinding(cfg.Open, "open with app"),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Submit, k.BackDir, k.Search, k.Create, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Submit, k.BackDir},
		{k.FocusFiles, k.FocusDrives, k.Search, k.Cancel},
		{k.Create, k.Delete, k.CopyPath, k.Open},
		{k.Reload, k.Quit},
	}
}

// modeHelp returns the hints for the given input mode
func (k KeyMap) modeHelp(mode InputMode, focus Focus) []key.Binding {
	switch mode {
	case ModeEditing:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	case ModeSearch:
		return []key.Binding{k.Down, k.Up, k.Submit, k.Cancel}
	}
	if focus == FocusDrives {
		return []key.Binding{k.Down, k.Up, k.Submit, k.FocusFiles, k.Quit}
	}
	return k.ShortHelp()
}
