package services

import (
	"time"

	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
)

// DashboardStats is the summary computed across a user's sessions.
// It is pure derived data, recomputed on every read.
type DashboardStats struct {
	MonthlyThreadCount int
	TotalNodes         int
	WeeklyNodesBefore  int
	WeeklyNodesAfter   int
	WeakPointCount     int
	LastSession        *entities.Session
}

// DashboardService aggregates session statistics for the home screen
type DashboardService struct{}

// NewDashboardService creates a dashboard service
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Compute derives the dashboard statistics from a newest-first session
// list. Timestamps are compared as structured instants; formatting
// happens at the presentation boundary.
func (s *DashboardService) Compute(sessions []*entities.Session, now time.Time) DashboardStats {
	stats := DashboardStats{}

	for _, session := range sessions {
		if sameCalendarMonth(session.CreatedAt(), now) {
			stats.MonthlyThreadCount++
		}
		stats.TotalNodes += len(session.Map().Nodes)
		for _, wp := range session.WeakPoints() {
			if wp.StudyStatus != valueobjects.StudyDone {
				stats.WeakPointCount++
			}
		}
	}

	if len(sessions) > 0 {
		stats.LastSession = sessions[0]
		stats.WeeklyNodesAfter = len(sessions[0].Map().Nodes)
	} else {
		stats.WeeklyNodesAfter = stats.TotalNodes
	}
	if len(sessions) > 1 {
		stats.WeeklyNodesBefore = len(sessions[1].Map().Nodes)
	}

	return stats
}

func sameCalendarMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
