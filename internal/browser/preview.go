package browser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	previewMaxChildren = 21
	previewMaxBytes    = 1024
)

// UpdatePreview recomputes the preview for the current selection.
func (d *Directory) UpdatePreview() {
	e, ok := d.Selected()
	if !ok {
		d.preview = ""
		return
	}

	if d.IsDir(e) {
		d.preview = d.directoryPreview(e.Path)
	} else {
		d.preview = d.filePreview(e.Path)
	}
}

// directoryPreview lists up to previewMaxChildren children in enumeration order.
func (d *Directory) directoryPreview(path string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s\n\nContains:", path)

	children, err := d.gw.ListChildrenN(path, previewMaxChildren+1)
	if err != nil {
		return b.String()
	}

	for i, child := range children {
		if i >= previewMaxChildren {
			b.WriteString("\n...and more...")
			break
		}
		b.WriteString("\n- ")
		b.WriteString(Entry{Path: child}.Name())
	}
	return b.String()
}

// filePreview shows the head of a file as text. Invalid UTF-8 is replaced.
func (d *Directory) filePreview(path string) string {
	data, err := d.gw.ReadPrefix(path, previewMaxBytes)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return decodeLossy(data)
}

// decodeLossy decodes data as UTF-8, writing U+FFFD for every byte that does
// not start a valid sequence.
func decodeLossy(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.Write(data[:size])
		}
		data = data[size:]
	}
	return b.String()
}
