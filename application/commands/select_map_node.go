package commands

import (
	pkgerrors "teachback-backend/pkg/errors"
)

// SelectMapNodeCommand records a node click: selection always moves, and
// nodes with children join the expansion set
type SelectMapNodeCommand struct {
	UserID string `json:"user_id" validate:"required"`
	NodeID string `json:"node_id" validate:"required"`
	// Scope is "all" or a session id; the click is validated against
	// the same map the user is looking at
	Scope string `json:"scope" validate:"required"`
}

// Validate validates the command
func (c SelectMapNodeCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if c.NodeID == "" {
		return pkgerrors.NewValidationError("node_id is required")
	}
	if c.Scope == "" {
		return pkgerrors.NewValidationError("scope is required")
	}
	return nil
}
