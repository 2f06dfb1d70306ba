package messaging

import "fmt"

// Status texts shown after file and config operations.
const (
	DeletedMessage        = "Deleted"
	ConfigReloadedMessage = "Config reloaded successfully!"
)

// FormatCreatedMessage formats the message for a successful create
func FormatCreatedMessage(name string) string {
	return fmt.Sprintf("Created: %s", name)
}

// FormatCopiedMessage formats the message for a path copied to the clipboard
func FormatCopiedMessage(path string) string {
	return fmt.Sprintf("Copied: %s", path)
}

// FormatOpenedMessage formats the message for a path handed to the system opener
func FormatOpenedMessage(path string) string {
	return fmt.Sprintf("Opened: %s", path)
}

// FormatErrorMessage formats a failed file operation
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatReloadFailedMessage formats a failed config reload
func FormatReloadFailedMessage(err error) string {
	return fmt.Sprintf("Config reload failed: %v", err)
}

// FormatLoadErrorMessage formats a startup config load failure
func FormatLoadErrorMessage(err error) string {
	return fmt.Sprintf("Config Load Error: %v", err)
}
