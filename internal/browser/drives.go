package browser

// DriveList is the state of the drives panel.
type DriveList struct {
	mounts []string
	cursor Cursor
}

// NewDriveList selects the first mount point, if any.
func NewDriveList(mounts []string) *DriveList {
	l := &DriveList{mounts: mounts}
	l.cursor.Reset(len(mounts))
	return l
}

// Mounts returns every mount point.
func (l *DriveList) Mounts() []string { return l.mounts }

// SelectedIndex returns the selection.
func (l *DriveList) SelectedIndex() (int, bool) {
	return l.cursor.Index()
}

// Selected returns the selected mount point.
func (l *DriveList) Selected() (string, bool) {
	i, ok := l.cursor.Index()
	if !ok || i >= len(l.mounts) {
		return "", false
	}
	return l.mounts[i], true
}

// Next selects the following mount point.
func (l *DriveList) Next() { l.cursor.Next(len(l.mounts)) }

// Previous selects the preceding mount point.
func (l *DriveList) Previous() { l.cursor.Previous(len(l.mounts)) }
