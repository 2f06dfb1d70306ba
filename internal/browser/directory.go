package browser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/dirnav/internal/fsys"
)

// Entry is one child of the current directory. Whether it is a directory is
// not cached; ask Directory.IsDir, which checks the filesystem each time.
type Entry struct {
	Path string
}

// Name returns the final path element.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Options controls listing and search behaviour.
type Options struct {
	SearchMode string
	Hide       []string
}

// Directory is the state of the files panel: the current path, its sorted
// children, the subset matching the search query, the selection within that
// subset and the preview of the selected entry.
type Directory struct {
	gw       *fsys.Gateway
	path     string
	entries  []Entry
	filtered []Entry
	cursor   Cursor
	query    string
	preview  string
	matcher  Matcher
	hide     []glob.Glob
}

// NewDirectory lists path and selects its first entry.
func NewDirectory(gw *fsys.Gateway, path string, opts Options) *Directory {
	d := &Directory{gw: gw, path: filepath.Clean(path)}
	d.Configure(opts)
	d.Refresh()
	return d
}

// Configure replaces the search mode and hide patterns. Listings pick them up
// on the next Refresh.
func (d *Directory) Configure(opts Options) {
	d.matcher = NewMatcher(opts.SearchMode)
	d.hide = d.hide[:0]
	for _, pattern := range opts.Hide {
		g, err := glob.Compile(pattern)
		if err != nil {
			logrus.Warnf("Directory: ignoring hide pattern %q: %v", pattern, err)
			continue
		}
		d.hide = append(d.hide, g)
	}
}

// Path returns the current directory.
func (d *Directory) Path() string { return d.path }

// Entries returns every listed child, sorted.
func (d *Directory) Entries() []Entry { return d.entries }

// Filtered returns the children matching the current query.
func (d *Directory) Filtered() []Entry { return d.filtered }

// Query returns the active search query.
func (d *Directory) Query() string { return d.query }

// Preview returns the preview text of the selected entry.
func (d *Directory) Preview() string { return d.preview }

// SelectedIndex returns the selection within Filtered.
func (d *Directory) SelectedIndex() (int, bool) {
	i, ok := d.cursor.Index()
	if !ok || i >= len(d.filtered) {
		return 0, false
	}
	return i, true
}

// Selected returns the selected entry.
func (d *Directory) Selected() (Entry, bool) {
	i, ok := d.SelectedIndex()
	if !ok {
		return Entry{}, false
	}
	return d.filtered[i], true
}

// IsDir reports whether the entry is a directory right now.
func (d *Directory) IsDir(e Entry) bool {
	return d.gw.IsDir(e.Path)
}

// Stat returns file info for the entry.
func (d *Directory) Stat(e Entry) (os.FileInfo, error) {
	return d.gw.Stat(e.Path)
}

// Refresh re-lists the current directory, directories first and then by name.
// The search query is cleared. A directory that cannot be read lists as empty.
func (d *Directory) Refresh() {
	d.entries = nil

	children, err := d.gw.ListChildren(d.path)
	if err != nil {
		logrus.Debugf("Directory: cannot read %s: %v", d.path, err)
	}

	for _, child := range children {
		e := Entry{Path: child}
		if d.hidden(e.Name()) {
			continue
		}
		d.entries = append(d.entries, e)
	}

	isDir := make(map[string]bool, len(d.entries))
	for _, e := range d.entries {
		isDir[e.Path] = d.gw.IsDir(e.Path)
	}
	sort.SliceStable(d.entries, func(i, j int) bool {
		a, b := d.entries[i], d.entries[j]
		if isDir[a.Path] != isDir[b.Path] {
			return isDir[a.Path]
		}
		return a.Name() < b.Name()
	})

	d.SetQuery("")
}

func (d *Directory) hidden(name string) bool {
	for _, g := range d.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// SetQuery filters the listing, selects the first match and updates the preview.
func (d *Directory) SetQuery(query string) {
	d.query = query
	d.filtered = Filter(d.matcher, query, d.entries)
	d.cursor.Reset(len(d.filtered))
	d.UpdatePreview()
}

// Next selects the following entry and updates the preview.
func (d *Directory) Next() {
	if d.cursor.Next(len(d.filtered)) {
		d.UpdatePreview()
	}
}

// Previous selects the preceding entry and updates the preview.
func (d *Directory) Previous() {
	if d.cursor.Previous(len(d.filtered)) {
		d.UpdatePreview()
	}
}

// ChangeDir makes path current and refreshes.
func (d *Directory) ChangeDir(path string) {
	d.path = filepath.Clean(path)
	d.Refresh()
}

// OpenSelected enters the selected entry if it is a directory. It reports
// whether the current path changed.
func (d *Directory) OpenSelected() bool {
	e, ok := d.Selected()
	if !ok || !d.IsDir(e) {
		return false
	}
	d.ChangeDir(e.Path)
	return true
}

// GoParent moves to the parent directory. At a root it does nothing.
func (d *Directory) GoParent() bool {
	parent := filepath.Dir(d.path)
	if parent == d.path {
		return false
	}
	d.ChangeDir(parent)
	return true
}

// Create makes a new entry under the current path: a directory when name ends
// with a path separator, otherwise an empty file. The listing is refreshed
// whether or not creation succeeded.
func (d *Directory) Create(name string) error {
	target := filepath.Join(d.path, name)

	var err error
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator)) {
		err = d.gw.CreateDirectory(target)
	} else {
		err = d.gw.CreateFile(target)
	}

	d.Refresh()
	return err
}

// DeleteSelected removes the selected entry, recursively for a directory, and
// refreshes. It reports false when nothing was selected.
func (d *Directory) DeleteSelected() (bool, error) {
	e, ok := d.Selected()
	if !ok {
		return false, nil
	}

	var err error
	if d.IsDir(e) {
		err = d.gw.DeleteTree(e.Path)
	} else {
		err = d.gw.DeleteFile(e.Path)
	}

	d.Refresh()
	return true, err
}
