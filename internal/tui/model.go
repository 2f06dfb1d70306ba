package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/dirnav/internal/browser"
	"github.com/HaiFongPan/dirnav/internal/config"
	"github.com/HaiFongPan/dirnav/internal/fsys"
	"github.com/HaiFongPan/dirnav/internal/keys"
	"github.com/HaiFongPan/dirnav/internal/tui/layout"
	"github.com/HaiFongPan/dirnav/internal/tui/messaging"
	"github.com/HaiFongPan/dirnav/internal/tui/theme"
	"github.com/HaiFongPan/dirnav/internal/utils"
)

// Focus names the panel that receives navigation keys
type Focus int

const (
	FocusFiles Focus = iota
	FocusDrives
)

func (f Focus) String() string {
	if f == FocusDrives {
		return "Drives"
	}
	return "Files"
}

// InputMode is the state of the input state machine
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeEditing
	ModeSearch
)

func (m InputMode) String() string {
	switch m {
	case ModeEditing:
		return "EDIT"
	case ModeSearch:
		return "SEARCH"
	default:
		return "NORMAL"
	}
}

// BrowserModel is the bubbletea model for the file browser. It owns all
// browser state; nothing else mutates it.
type BrowserModel struct {
	store    *config.Store
	dir      *browser.Directory
	drives   *browser.DriveList
	focus    Focus
	mode     InputMode
	input    []rune
	status   messaging.StatusManager
	quitting bool

	// Derived from the config snapshot in activeConfig
	activeConfig *config.Config
	resolver     *keys.Resolver
	keyMap       KeyMap
	palette      theme.Palette

	help         help.Model
	windowWidth  int
	windowHeight int

	copyToClipboard func(string) error
	openPath        func(string) error
}

// NewBrowserModel creates a browser rooted at startDir using the store's
// current configuration.
func NewBrowserModel(store *config.Store, gateway *fsys.Gateway, startDir string) *BrowserModel {
	cfg := store.Current()

	m := &BrowserModel{
		store:           store,
		focus:           FocusFiles,
		mode:            ModeNormal,
		status:          messaging.NewStatusManager(),
		help:            help.New(),
		windowWidth:     layout.DefaultWindowWidth,
		windowHeight:    layout.DefaultWindowHeight,
		copyToClipboard: utils.CopyToClipboard,
		openPath:        utils.OpenPath,
	}

	m.dir = browser.NewDirectory(gateway, startDir, directoryOptions(cfg))
	m.drives = browser.NewDriveList(gateway.MountPoints())
	m.applyConfig(cfg)

	logrus.Debugf("BrowserModel: started in %s with %d mount points", m.dir.Path(), len(m.drives.Mounts()))
	return m
}

func directoryOptions(cfg *config.Config) browser.Options {
	return browser.Options{
		SearchMode: cfg.Browser.SearchMode,
		Hide:       cfg.Browser.Hide,
	}
}

// applyConfig rebuilds everything derived from a config snapshot.
func (m *BrowserModel) applyConfig(cfg *config.Config) {
	m.activeConfig = cfg
	m.resolver = keys.NewResolver(cfg.Keys.Table())
	m.keyMap = NewKeyMap(cfg.Keys)
	m.palette = theme.NewPalette(cfg.Theme)
	m.dir.Configure(directoryOptions(cfg))
}

// SetClipboard replaces the clipboard writer.
func (m *BrowserModel) SetClipboard(fn func(string) error) {
	m.copyToClipboard = fn
}

// SetOpener replaces the function that opens a path in the system application.
func (m *BrowserModel) SetOpener(fn func(string) error) {
	m.openPath = fn
}

// SetDrives replaces the drives panel contents.
func (m *BrowserModel) SetDrives(mounts []string) {
	m.drives = browser.NewDriveList(mounts)
}

// ReportConfigLoadError shows a startup configuration failure.
func (m *BrowserModel) ReportConfigLoadError(err error) {
	m.status.SetMessage(messaging.FormatLoadErrorMessage(err), messaging.MessageError)
}

// Status exposes the status line.
func (m *BrowserModel) Status() messaging.StatusManager { return m.status }

// Directory exposes the files panel state.
func (m *BrowserModel) Directory() *browser.Directory { return m.dir }

// Drives exposes the drives panel state.
func (m *BrowserModel) Drives() *browser.DriveList { return m.drives }

// Focus returns the focused panel.
func (m *BrowserModel) Focus() Focus { return m.focus }

// Mode returns the input mode.
func (m *BrowserModel) Mode() InputMode { return m.mode }

// InputBuffer returns the name being typed in Editing mode.
func (m *BrowserModel) InputBuffer() string { return string(m.input) }

// Init implements the bubbletea.Model interface
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements the bubbletea.Model interface
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}
