package commands

import (
	pkgerrors "teachback-backend/pkg/errors"
)

// ContinueSessionCommand restores a past session's conversation into the
// workspace so the user can keep teaching. The session itself is untouched.
type ContinueSessionCommand struct {
	UserID    string `json:"user_id" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

// Validate validates the command
func (c ContinueSessionCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if c.SessionID == "" {
		return pkgerrors.NewValidationError("session_id is required")
	}
	return nil
}
