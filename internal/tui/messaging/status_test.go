package messaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusManager_Lifecycle(t *testing.T) {
	sm := NewStatusManager()
	assert.False(t, sm.HasMessage())
	assert.Equal(t, "", sm.RenderMessage())

	sm.SetMessage("Deleted", MessageSuccess)
	msg, msgType, ok := sm.GetMessage()
	assert.True(t, ok)
	assert.Equal(t, "Deleted", msg)
	assert.Equal(t, MessageSuccess, msgType)
	assert.Contains(t, sm.RenderMessage(), "Deleted")

	sm.SetMessage("Error: boom", MessageError)
	msg, msgType, _ = sm.GetMessage()
	assert.Equal(t, "Error: boom", msg)
	assert.Equal(t, MessageError, msgType)
	assert.True(t, sm.HasMessage())
}

func TestMessageStyling(t *testing.T) {
	assert.NotEqual(t, messageColor(MessageError), messageColor(MessageSuccess))
	assert.Equal(t, messageColor(MessageInfo), messageColor(MessageType(42)))
	assert.Equal(t, "✗", messageIcon(MessageError))
}

func TestFormatMessages(t *testing.T) {
	err := errors.New("permission denied")

	assert.Equal(t, "Created: note.txt", FormatCreatedMessage("note.txt"))
	assert.Equal(t, "Copied: /tmp/x", FormatCopiedMessage("/tmp/x"))
	assert.Equal(t, "Opened: /tmp/x", FormatOpenedMessage("/tmp/x"))
	assert.Equal(t, "Error: permission denied", FormatErrorMessage(err))
	assert.Equal(t, "Config reload failed: permission denied", FormatReloadFailedMessage(err))
	assert.Equal(t, "Config Load Error: permission denied", FormatLoadErrorMessage(err))
}
