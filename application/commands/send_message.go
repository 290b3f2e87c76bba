package commands

import (
	"strings"

	pkgerrors "teachback-backend/pkg/errors"
)

// SendMessageCommand appends a user message to the live conversation and
// requests the assistant's reply
type SendMessageCommand struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// Validate validates the command
func (c SendMessageCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if strings.TrimSpace(c.Text) == "" {
		return pkgerrors.NewValidationError("text is required")
	}
	return nil
}
