package keys

import "strings"

// Action is a logical command a key press can trigger.
type Action int

const (
	ActionQuit Action = iota
	ActionSearch
	ActionCancel
	ActionSubmit
	ActionDown
	ActionUp
	ActionDelete
	ActionCreate
	ActionFocusFiles
	ActionFocusDrives
	ActionBackDir
	ActionReload
	ActionCopyPath
	ActionOpen

	actionCount
)

var actionNames = [actionCount]string{
	ActionQuit:        "quit",
	ActionSearch:      "search",
	ActionCancel:      "cancel",
	ActionSubmit:      "submit",
	ActionDown:        "down",
	ActionUp:          "up",
	ActionDelete:      "delete",
	ActionCreate:      "create",
	ActionFocusFiles:  "focus_files",
	ActionFocusDrives: "focus_drives",
	ActionBackDir:     "back_dir",
	ActionReload:      "reload",
	ActionCopyPath:    "copy_path",
	ActionOpen:        "open",
}

// String returns the configuration name of the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	all := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		all = append(all, a)
	}
	return all
}

// ActionByName looks up an action by its configuration name.
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// ActionSet is the set of actions a single key press resolved to.
type ActionSet uint32

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<uint(a)
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

// Empty reports whether the key press resolved to nothing.
func (s ActionSet) Empty() bool {
	return s == 0
}

func (s ActionSet) String() string {
	var names []string
	for _, a := range Actions() {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
