package utils

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"
)

// CopyToClipboard places content on the system clipboard.
func CopyToClipboard(content string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available (install xclip, xsel or wl-clipboard)")
	}
	return clipboard.WriteAll(content)
}

// OpenPath opens a file or directory with the system default application
// without waiting for it to exit.
func OpenPath(path string) error {
	return open.Start(path)
}
