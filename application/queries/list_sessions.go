package queries

import (
	pkgerrors "teachback-backend/pkg/errors"
)

// ListSessionsQuery fetches the user's analyzed sessions, newest first
type ListSessionsQuery struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate validates the query
func (q ListSessionsQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	return nil
}

// SessionSummary is one row of the session list
type SessionSummary struct {
	ID             string `json:"id"`
	Theme          string `json:"theme"`
	CreatedAt      string `json:"created_at"`
	MessageCount   int    `json:"message_count"`
	WeakPointCount int    `json:"weak_point_count"`
	NodeCount      int    `json:"node_count"`
}
