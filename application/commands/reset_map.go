package commands

import (
	pkgerrors "teachback-backend/pkg/errors"
)

// ResetMapCommand collapses the user's map back to the center. The
// selected node survives a reset.
type ResetMapCommand struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate validates the command
func (c ResetMapCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	return nil
}
