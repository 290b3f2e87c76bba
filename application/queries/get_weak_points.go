package queries

import (
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// ScopeAll selects every session the user owns
const ScopeAll = "all"

// GetWeakPointsQuery fetches active weak points for one session or all
type GetWeakPointsQuery struct {
	UserID string `json:"user_id" validate:"required"`
	// Scope is "all" or a session id
	Scope string `json:"scope" validate:"required"`
}

// Validate validates the query
func (q GetWeakPointsQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	if q.Scope == "" {
		return pkgerrors.NewValidationError("scope is required")
	}
	return nil
}

// SessionWeakPoints groups a session's active weak points. Grouping is
// preserved even in the "all" scope.
type SessionWeakPoints struct {
	SessionID  string                   `json:"session_id"`
	Theme      string                   `json:"theme"`
	CreatedAt  string                   `json:"created_at"`
	WeakPoints []valueobjects.WeakPoint `json:"weak_points"`
}
