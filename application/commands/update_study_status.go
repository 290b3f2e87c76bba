package commands

import (
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// UpdateStudyStatusCommand changes the triage status of a weak point
// wherever it appears in the user's sessions
type UpdateStudyStatusCommand struct {
	UserID      string `json:"user_id" validate:"required"`
	WeakPointID string `json:"weak_point_id" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=todo doing done"`
}

// Validate validates the command
func (c UpdateStudyStatusCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if c.WeakPointID == "" {
		return pkgerrors.NewValidationError("weak_point_id is required")
	}
	if !valueobjects.StudyStatus(c.Status).IsValid() {
		return pkgerrors.NewValidationError("unknown study status: " + c.Status)
	}
	return nil
}
