package keys

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type actionBinding struct {
	action  Action
	binding string
}

// Resolver turns key presses into the set of actions they trigger under one
// binding table. A Resolver is immutable; build a new one when the table changes.
type Resolver struct {
	bindings []actionBinding
}

// NewResolver builds a resolver from an action-name to binding-string table.
// Unknown action names are ignored.
func NewResolver(table map[string]string) *Resolver {
	r := &Resolver{}
	for _, a := range Actions() {
		binding, ok := table[a.String()]
		if !ok || binding == "" {
			continue
		}
		r.bindings = append(r.bindings, actionBinding{action: a, binding: binding})
	}
	for name := range table {
		if _, ok := ActionByName(name); !ok {
			logrus.Debugf("Resolver: ignoring unknown action %q", name)
		}
	}
	return r
}

// Resolve returns every action the key press matches. F5 always reloads and the
// bare arrow keys always navigate, whatever the table says.
func (r *Resolver) Resolve(msg tea.KeyMsg) ActionSet {
	return r.ResolveKey(FromMsg(msg))
}

// ResolveKey is Resolve for an already normalized key.
func (r *Resolver) ResolveKey(k Key) ActionSet {
	var set ActionSet

	if k.Token == "f5" {
		set = set.With(ActionReload)
	}
	if !k.Ctrl && !k.Alt {
		switch k.Token {
		case "down":
			set = set.With(ActionDown)
		case "up":
			set = set.With(ActionUp)
		}
	}

	for _, b := range r.bindings {
		if Matches(k, b.binding) {
			set = set.With(b.action)
		}
	}
	return set
}

// Binding returns the configured binding string for an action.
func (r *Resolver) Binding(a Action) string {
	for _, b := range r.bindings {
		if b.action == a {
			return b.binding
		}
	}
	return ""
}
