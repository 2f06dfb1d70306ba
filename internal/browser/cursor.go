package browser

// Cursor is a wraparound selection over a list. The list length is passed to
// each call so one Cursor can follow a list that is replaced underneath it.
// The zero value selects nothing.
type Cursor struct {
	index    int
	selected bool
}

// Index returns the selected index, or false when nothing is selected.
func (c Cursor) Index() (int, bool) {
	return c.index, c.selected
}

// Reset selects the first item, or nothing when the list is empty.
func (c *Cursor) Reset(n int) {
	c.index = 0
	c.selected = n > 0
}

// Next moves to the following item, wrapping to the first. It is a no-op on an
// empty list and reports whether it ran.
func (c *Cursor) Next(n int) bool {
	if n == 0 {
		return false
	}
	if !c.selected || c.index >= n-1 {
		c.index = 0
	} else {
		c.index++
	}
	c.selected = true
	return true
}

// Previous moves to the preceding item, wrapping to the last.
func (c *Cursor) Previous(n int) bool {
	if n == 0 {
		return false
	}
	switch {
	case !c.selected:
		c.index = 0
	case c.index == 0 || c.index >= n:
		c.index = n - 1
	default:
		c.index--
	}
	c.selected = true
	return true
}
