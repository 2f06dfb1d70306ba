package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func defaultTable() map[string]string {
	return map[string]string{
		"quit":         "q",
		"search":       "/",
		"cancel":       "esc",
		"submit":       "enter",
		"down":         "j",
		"up":           "k",
		"delete":       "D",
		"create":       "a",
		"focus_files":  "L",
		"focus_drives": "H",
		"back_dir":     "backspace",
		"reload":       "F5",
		"copy_path":    "y",
		"open":         "o",
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(defaultTable())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"quit", runeMsg('q'), ActionQuit},
		{"search", runeMsg('/'), ActionSearch},
		{"cancel", tea.KeyMsg{Type: tea.KeyEsc}, ActionCancel},
		{"submit", tea.KeyMsg{Type: tea.KeyEnter}, ActionSubmit},
		{"down", runeMsg('j'), ActionDown},
		{"up", runeMsg('k'), ActionUp},
		{"delete", runeMsg('D'), ActionDelete},
		{"create", runeMsg('a'), ActionCreate},
		{"focus files", runeMsg('L'), ActionFocusFiles},
		{"focus drives", runeMsg('h'), ActionFocusDrives},
		{"back", tea.KeyMsg{Type: tea.KeyBackspace}, ActionBackDir},
		{"reload", tea.KeyMsg{Type: tea.KeyF5}, ActionReload},
		{"copy path", runeMsg('y'), ActionCopyPath},
		{"open", runeMsg('o'), ActionOpen},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := r.Resolve(tc.msg)
			assert.True(t, set.Has(tc.want), "got %s", set)
		})
	}
}

func TestResolver_HardWiredKeys(t *testing.T) {
	table := defaultTable()
	table["reload"] = "ctrl-r"
	r := NewResolver(table)

	assert.True(t, r.Resolve(tea.KeyMsg{Type: tea.KeyF5}).Has(ActionReload))
	assert.True(t, r.Resolve(tea.KeyMsg{Type: tea.KeyCtrlR}).Has(ActionReload))
	assert.True(t, r.Resolve(tea.KeyMsg{Type: tea.KeyDown}).Has(ActionDown))
	assert.True(t, r.Resolve(tea.KeyMsg{Type: tea.KeyUp}).Has(ActionUp))
	assert.False(t, r.Resolve(tea.KeyMsg{Type: tea.KeyCtrlDown}).Has(ActionDown))
}

func TestResolver_UnboundKeyIsEmpty(t *testing.T) {
	r := NewResolver(defaultTable())

	assert.True(t, r.Resolve(runeMsg('z')).Empty())
	assert.True(t, r.Resolve(tea.KeyMsg{Type: tea.KeyCtrlQ}).Empty())
	assert.True(t, r.Resolve(tea.KeyMsg{Type: tea.KeyF20}).Empty())
}

func TestResolver_SharedBinding(t *testing.T) {
	table := defaultTable()
	table["cancel"] = "q"
	r := NewResolver(table)

	set := r.Resolve(runeMsg('q'))
	assert.True(t, set.Has(ActionQuit))
	assert.True(t, set.Has(ActionCancel))
	assert.Equal(t, "{quit,cancel}", set.String())
}

func TestResolver_Binding(t *testing.T) {
	r := NewResolver(map[string]string{"quit": "ctrl-q", "bogus": "x"})

	assert.Equal(t, "ctrl-q", r.Binding(ActionQuit))
	assert.Equal(t, "", r.Binding(ActionSearch))
	assert.True(t, r.Resolve(runeMsg('x')).Empty())
}

func TestActionByName(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ActionByName(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}

	_, ok := ActionByName("launch_rockets")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Action(99).String())
}
