package browser

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher selects which names match a non-empty query. It returns indices
// into names in ascending order, so a filtered view keeps the source order.
type Matcher interface {
	Match(query string, names []string) []int
}

// NewMatcher returns the matcher for a search mode; unknown modes use substring.
func NewMatcher(mode string) Matcher {
	if strings.EqualFold(mode, "fuzzy") {
		return fuzzyMatcher{}
	}
	return substringMatcher{}
}

type substringMatcher struct{}

func (substringMatcher) Match(query string, names []string) []int {
	q := strings.ToLower(query)
	var out []int
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, i)
		}
	}
	return out
}

type fuzzyMatcher struct{}

func (fuzzyMatcher) Match(query string, names []string) []int {
	matches := fuzzy.Find(query, names)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Index)
	}
	sort.Ints(out)
	return out
}

// Filter returns the entries whose names match query, in their original order.
// An empty query returns entries unchanged.
func Filter(m Matcher, query string, entries []Entry) []Entry {
	if query == "" {
		return entries
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	idx := m.Match(query, names)
	out := make([]Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, entries[i])
	}
	return out
}
