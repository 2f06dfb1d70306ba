package keys

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Binding modifier prefixes, always in this order: ctrl before alt.
const (
	ctrlPrefix = "ctrl-"
	altPrefix  = "alt-"
)

// Key is a normalized key press. Token is the lowercase key name: a single
// character for printable keys, or a fixed name such as "enter" or "f5".
// An empty Token means the key has no name and never matches a binding.
type Key struct {
	Token string
	Ctrl  bool
	Alt   bool
}

// namedKeys lists every multi-character token a binding may use.
var namedKeys = map[string]bool{
	"enter": true, "esc": true, "backspace": true, "tab": true, "backtab": true,
	"delete": true, "insert": true, "left": true, "right": true, "up": true,
	"down": true, "home": true, "end": true, "pageup": true, "pagedown": true,
	"space": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
}

// FromMsg normalizes a bubbletea key message.
func FromMsg(msg tea.KeyMsg) Key {
	k := Key{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyRunes:
		k.Token = strings.ToLower(string(msg.Runes))
		return k
	case tea.KeySpace:
		k.Token = " "
		return k
	case tea.KeyEnter:
		k.Token = "enter"
		return k
	case tea.KeyEsc:
		k.Token = "esc"
		return k
	case tea.KeyBackspace:
		k.Token = "backspace"
		return k
	case tea.KeyTab:
		k.Token = "tab"
		return k
	case tea.KeyShiftTab:
		k.Token = "backtab"
		return k
	case tea.KeyDelete:
		k.Token = "delete"
		return k
	case tea.KeyInsert:
		k.Token = "insert"
		return k
	}

	if token, ctrl, ok := navigationToken(msg.Type); ok {
		k.Token = token
		k.Ctrl = ctrl
		return k
	}

	if token, ok := functionToken(msg.Type); ok {
		k.Token = token
		return k
	}

	// KeyCtrlA..KeyCtrlZ occupy the contiguous control codes 1..26. Tab and
	// Enter share codes with ctrl-i and ctrl-m and were handled above.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		k.Token = string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
		k.Ctrl = true
		return k
	}

	return k
}

// navigationToken maps arrow and paging keys. Shift variants collapse onto the
// plain key.
func navigationToken(t tea.KeyType) (string, bool, bool) {
	switch t {
	case tea.KeyUp, tea.KeyShiftUp:
		return "up", false, true
	case tea.KeyDown, tea.KeyShiftDown:
		return "down", false, true
	case tea.KeyLeft, tea.KeyShiftLeft:
		return "left", false, true
	case tea.KeyRight, tea.KeyShiftRight:
		return "right", false, true
	case tea.KeyHome, tea.KeyShiftHome:
		return "home", false, true
	case tea.KeyEnd, tea.KeyShiftEnd:
		return "end", false, true
	case tea.KeyPgUp:
		return "pageup", false, true
	case tea.KeyPgDown:
		return "pagedown", false, true
	case tea.KeyCtrlUp, tea.KeyCtrlShiftUp:
		return "up", true, true
	case tea.KeyCtrlDown, tea.KeyCtrlShiftDown:
		return "down", true, true
	case tea.KeyCtrlLeft, tea.KeyCtrlShiftLeft:
		return "left", true, true
	case tea.KeyCtrlRight, tea.KeyCtrlShiftRight:
		return "right", true, true
	case tea.KeyCtrlHome, tea.KeyCtrlShiftHome:
		return "home", true, true
	case tea.KeyCtrlEnd, tea.KeyCtrlShiftEnd:
		return "end", true, true
	case tea.KeyCtrlPgUp:
		return "pageup", true, true
	case tea.KeyCtrlPgDown:
		return "pagedown", true, true
	}
	return "", false, false
}

func functionToken(t tea.KeyType) (string, bool) {
	switch t {
	case tea.KeyF1:
		return "f1", true
	case tea.KeyF2:
		return "f2", true
	case tea.KeyF3:
		return "f3", true
	case tea.KeyF4:
		return "f4", true
	case tea.KeyF5:
		return "f5", true
	case tea.KeyF6:
		return "f6", true
	case tea.KeyF7:
		return "f7", true
	case tea.KeyF8:
		return "f8", true
	case tea.KeyF9:
		return "f9", true
	case tea.KeyF10:
		return "f10", true
	case tea.KeyF11:
		return "f11", true
	case tea.KeyF12:
		return "f12", true
	}
	return "", false
}

// String renders the key in binding syntax.
func (k Key) String() string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString(ctrlPrefix)
	}
	if k.Alt {
		b.WriteString(altPrefix)
	}
	b.WriteString(k.Token)
	return b.String()
}

// Matches reports whether the key satisfies the binding string. Comparison is
// case-insensitive. A modified key or a named key compares in the joined
// "ctrl-alt-token" form; a bare printable key compares directly.
func Matches(k Key, binding string) bool {
	if k.Token == "" {
		return false
	}

	want := strings.ToLower(binding)
	if want == "space" || strings.HasSuffix(want, "-space") {
		want = strings.TrimSuffix(want, "space") + " "
	}
	if k.Ctrl || k.Alt || utf8.RuneCountInString(k.Token) > 1 {
		return k.String() == want
	}
	return k.Token == want
}

// ParseBinding checks that a binding string has the form [ctrl-][alt-]<key>
// and returns its normalized Key.
func ParseBinding(binding string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(binding))
	if s == "" {
		return Key{}, fmt.Errorf("binding is empty")
	}

	var k Key
	// A lone "-" is a valid key, so only strip a prefix that leaves something behind.
	if strings.HasPrefix(s, ctrlPrefix) && len(s) > len(ctrlPrefix) {
		k.Ctrl = true
		s = s[len(ctrlPrefix):]
	}
	if strings.HasPrefix(s, altPrefix) && len(s) > len(altPrefix) {
		k.Alt = true
		s = s[len(altPrefix):]
	}

	if utf8.RuneCountInString(s) == 1 || namedKeys[s] {
		k.Token = s
		return k, nil
	}
	return Key{}, fmt.Errorf("invalid binding %q: expected [ctrl-][alt-]<key>", binding)
}
