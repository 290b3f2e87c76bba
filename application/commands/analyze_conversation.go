package commands

import (
	pkgerrors "teachback-backend/pkg/errors"
)

// AnalyzeConversationCommand triggers analysis of the live conversation,
// freezing it into a new session on success
type AnalyzeConversationCommand struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate validates the command
func (c AnalyzeConversationCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	return nil
}
