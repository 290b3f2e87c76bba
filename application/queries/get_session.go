package queries

import (
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// GetSessionQuery fetches one analyzed session in full
type GetSessionQuery struct {
	UserID    string `json:"user_id" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

// Validate validates the query
func (q GetSessionQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if q.SessionID == "" {
		return pkgerrors.NewValidationError("session_id is required")
	}
	return nil
}

// SessionDetail is the full frozen session read model
type SessionDetail struct {
	ID         string                        `json:"id"`
	Theme      string                        `json:"theme"`
	CreatedAt  string                        `json:"created_at"`
	Messages   []valueobjects.ChatMessage    `json:"messages"`
	WeakPoints []valueobjects.WeakPoint      `json:"weak_points"`
	Map        valueobjects.UnderstandingMap `json:"map"`
}
