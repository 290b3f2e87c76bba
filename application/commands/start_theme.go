// Package commands defines the write operations of the application layer.
package commands

import (
	pkgerrors "teachback-backend/pkg/errors"
)

// StartThemeCommand resets the user's workspace for a new teaching theme
type StartThemeCommand struct {
	UserID string `json:"user_id" validate:"required"`
	Theme  string `json:"theme" validate:"required,max=200"`
}

// Validate validates the command
func (c StartThemeCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if c.Theme == "" {
		return pkgerrors.NewValidationError("theme is required")
	}
	return nil
}
