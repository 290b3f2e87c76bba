package queries

import (
	pkgerrors "teachback-backend/pkg/errors"
)

// GetDashboardQuery fetches the home-screen statistics
type GetDashboardQuery struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate validates the query
func (q GetDashboardQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user_id is required")
	}
	return nil
}

// DashboardView is the home-screen read model, recomputed on every
// request from the stored sessions
type DashboardView struct {
	MonthlyThreadCount int             `json:"monthly_thread_count"`
	TotalNodes         int             `json:"total_nodes"`
	WeeklyNodesBefore  int             `json:"weekly_nodes_before"`
	WeeklyNodesAfter   int             `json:"weekly_nodes_after"`
	WeakPointCount     int             `json:"weak_point_count"`
	LastSession        *SessionSummary `json:"last_session,omitempty"`
}
