package messaging

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/dirnav/internal/tui/theme"
)

// MessageType represents different message types for status display
type MessageType int

// Message type constants
const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// StatusManager manages status messages and their display
type StatusManager interface {
	SetMessage(message string, msgType MessageType)
	GetMessage() (string, MessageType, bool)
	RenderMessage() string
	HasMessage() bool
}

// StatusManagerImpl implements the StatusManager interface. A message stays
// until it is replaced.
type StatusManagerImpl struct {
	statusMessage string
	messageType   MessageType
}

// NewStatusManager creates a new status manager instance
func NewStatusManager() StatusManager {
	return &StatusManagerImpl{
		messageType: MessageInfo,
	}
}

// SetMessage sets a status message with type
func (sm *StatusManagerImpl) SetMessage(message string, msgType MessageType) {
	sm.statusMessage = message
	sm.messageType = msgType

	logrus.Debugf("StatusManager: setMessage called with message='%s', type=%d", message, msgType)
}

// GetMessage returns the current message, type, and whether a message exists
func (sm *StatusManagerImpl) GetMessage() (string, MessageType, bool) {
	hasMessage := sm.statusMessage != ""
	return sm.statusMessage, sm.messageType, hasMessage
}

// HasMessage returns whether there is currently a status message
func (sm *StatusManagerImpl) HasMessage() bool {
	return sm.statusMessage != ""
}

// RenderMessage renders the current status message with appropriate styling
func (sm *StatusManagerImpl) RenderMessage() string {
	if !sm.HasMessage() {
		return ""
	}

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(messageColor(sm.messageType))).
		Bold(true)

	return messageStyle.Render(fmt.Sprintf("%s %s", messageIcon(sm.messageType), sm.statusMessage))
}

func messageColor(t MessageType) string {
	switch t {
	case MessageError:
		return theme.ColorBrightRed
	case MessageSuccess:
		return theme.ColorBrightGreen
	case MessageWarning:
		return theme.ColorBrightYellow
	default:
		return theme.ColorBrightCyan
	}
}

func messageIcon(t MessageType) string {
	switch t {
	case MessageError:
		return "✗"
	case MessageSuccess:
		return "✓"
	case MessageWarning:
		return "!"
	default:
		return "i"
	}
}
