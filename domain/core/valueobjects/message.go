package valueobjects

import (
	"strings"

	pkgerrors "teachback-backend/pkg/errors"
)

// MessageRole identifies the author of a chat message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// IsValid reports whether the role is one of the known roles
func (r MessageRole) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatMessage is one entry in a teaching conversation.
// Messages are immutable once appended; the turn is computed at append
// time from the message's one-based position in the conversation.
type ChatMessage struct {
	Role MessageRole `json:"role"`
	Text string      `json:"text"`
	Turn int         `json:"turn"`
}

// NewChatMessage creates a message with the turn derived from its
// one-based position in the conversation after the append.
func NewChatMessage(role MessageRole, text string, indexOneBased int) (ChatMessage, error) {
	if !role.IsValid() {
		return ChatMessage{}, pkgerrors.NewValidationError("unknown message role")
	}
	if strings.TrimSpace(text) == "" {
		return ChatMessage{}, pkgerrors.NewValidationError("message text cannot be empty")
	}
	if indexOneBased < 1 {
		return ChatMessage{}, pkgerrors.NewValidationError("message index must be positive")
	}
	return ChatMessage{
		Role: role,
		Text: text,
		Turn: TurnOf(indexOneBased),
	}, nil
}

// TurnOf returns the rally number of the message at the given one-based
// position. One rally is one user+assistant exchange, so every two
// messages advance the turn by one.
func TurnOf(indexOneBased int) int {
	if indexOneBased <= 0 {
		return 0
	}
	return (indexOneBased + 1) / 2
}

// CurrentTurn returns the rally number of a conversation: ceil(len/2).
func CurrentTurn(messages []ChatMessage) int {
	return TurnOf(len(messages))
}
