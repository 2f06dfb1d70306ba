package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/dirnav/internal/keys"
	"github.com/HaiFongPan/dirnav/internal/tui/messaging"
)

// handleKey dispatches one key press: global actions first, then the
// handler for the current mode.
func (m *BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.store.Current()
	if cfg != m.activeConfig {
		m.applyConfig(cfg)
	}

	actions := m.resolver.Resolve(msg)
	logrus.Debugf("BrowserModel: key %q resolved to %s in %s mode", msg.String(), actions, m.mode)

	switch {
	case actions.Has(keys.ActionReload):
		m.reloadConfig()
		return m, nil
	case actions.Has(keys.ActionFocusDrives):
		m.focus = FocusDrives
		return m, nil
	case actions.Has(keys.ActionFocusFiles):
		m.focus = FocusFiles
		return m, nil
	}

	switch m.mode {
	case ModeEditing:
		m.handleEditingKey(msg)
		return m, nil
	case ModeSearch:
		m.handleSearchKey(msg, actions)
		return m, nil
	}

	if actions.Has(keys.ActionQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if actions.Has(keys.ActionSearch) {
		m.mode = ModeSearch
		m.dir.SetQuery("")
		return m, nil
	}

	if m.focus == FocusDrives {
		m.handleDrivesKey(actions)
	} else {
		m.handleFilesKey(actions)
	}
	return m, nil
}

func (m *BrowserModel) handleFilesKey(actions keys.ActionSet) {
	if actions.Has(keys.ActionDown) {
		m.dir.Next()
	} else if actions.Has(keys.ActionUp) {
		m.dir.Previous()
	} else if actions.Has(keys.ActionSubmit) {
		m.dir.OpenSelected()
	} else if actions.Has(keys.ActionBackDir) {
		m.dir.GoParent()
	} else if actions.Has(keys.ActionCreate) {
		m.mode = ModeEditing
		m.input = m.input[:0]
	} else if actions.Has(keys.ActionDelete) {
		m.deleteSelected()
	} else if actions.Has(keys.ActionCopyPath) {
		m.copySelectedPath()
	} else if actions.Has(keys.ActionOpen) {
		m.openSelected()
	}
}

func (m *BrowserModel) handleDrivesKey(actions keys.ActionSet) {
	if actions.Has(keys.ActionDown) {
		m.drives.Next()
	} else if actions.Has(keys.ActionUp) {
		m.drives.Previous()
	} else if actions.Has(keys.ActionSubmit) {
		mount, ok := m.drives.Selected()
		if !ok {
			return
		}
		m.dir.ChangeDir(mount)
		m.focus = FocusFiles
	}
}

// handleEditingKey edits the name buffer. Enter and Esc are fixed here so a
// name can always be committed or abandoned whatever the bindings are.
func (m *BrowserModel) handleEditingKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.createEntry(string(m.input))
		m.mode = ModeNormal
		m.input = m.input[:0]
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.input = m.input[:0]
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		if !msg.Alt {
			m.input = append(m.input, msg.Runes...)
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	}
}

func (m *BrowserModel) handleSearchKey(msg tea.KeyMsg, actions keys.ActionSet) {
	query := []rune(m.dir.Query())

	switch {
	case actions.Has(keys.ActionSubmit):
		m.mode = ModeNormal
	case actions.Has(keys.ActionCancel):
		m.mode = ModeNormal
		m.dir.SetQuery("")
	case msg.Type == tea.KeyBackspace:
		if len(query) > 0 {
			query = query[:len(query)-1]
		}
		m.dir.SetQuery(string(query))
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.dir.SetQuery(string(append(query, msg.Runes...)))
	case msg.Type == tea.KeySpace:
		m.dir.SetQuery(string(append(query, ' ')))
	case actions.Has(keys.ActionDown):
		m.dir.Next()
	case actions.Has(keys.ActionUp):
		m.dir.Previous()
	}
}

func (m *BrowserModel) reloadConfig() {
	if err := m.store.Reload(); err != nil {
		m.status.SetMessage(messaging.FormatReloadFailedMessage(err), messaging.MessageError)
		return
	}
	m.applyConfig(m.store.Current())
	m.status.SetMessage(messaging.ConfigReloadedMessage, messaging.MessageSuccess)
}

func (m *BrowserModel) createEntry(name string) {
	if err := m.dir.Create(name); err != nil {
		m.status.SetMessage(messaging.FormatErrorMessage(err), messaging.MessageError)
		return
	}
	m.status.SetMessage(messaging.FormatCreatedMessage(name), messaging.MessageSuccess)
}

func (m *BrowserModel) deleteSelected() {
	deleted, err := m.dir.DeleteSelected()
	if err != nil {
		m.status.SetMessage(messaging.FormatErrorMessage(err), messaging.MessageError)
		return
	}
	if deleted {
		m.status.SetMessage(messaging.DeletedMessage, messaging.MessageSuccess)
	}
}

func (m *BrowserModel) copySelectedPath() {
	entry, ok := m.dir.Selected()
	if !ok {
		return
	}
	path := absPath(entry.Path)
	if err := m.copyToClipboard(path); err != nil {
		m.status.SetMessage(messaging.FormatErrorMessage(err), messaging.MessageError)
		return
	}
	m.status.SetMessage(messaging.FormatCopiedMessage(path), messaging.MessageSuccess)
}

func (m *BrowserModel) openSelected() {
	entry, ok := m.dir.Selected()
	if !ok {
		return
	}
	if err := m.openPath(entry.Path); err != nil {
		m.status.SetMessage(messaging.FormatErrorMessage(err), messaging.MessageError)
		return
	}
	m.status.SetMessage(messaging.FormatOpenedMessage(entry.Path), messaging.MessageSuccess)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
