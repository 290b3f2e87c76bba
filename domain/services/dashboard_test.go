package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
)

func dashboardSession(t *testing.T, id string, createdAt time.Time, nodeCount int, weakPoints []valueobjects.WeakPoint) *entities.Session {
	t.Helper()

	nodes := make([]valueobjects.UnderstandingNode, nodeCount)
	for i := range nodes {
		nodes[i] = valueobjects.UnderstandingNode{
			ID:        string(rune('a' + i)),
			RelatedTo: []string{valueobjects.CenterID},
		}
	}
	m := valueobjects.UnderstandingMap{
		Center: valueobjects.NewPlaceholderCenter("HTTP"),
		Nodes:  nodes,
	}
	messages := []valueobjects.ChatMessage{{Role: valueobjects.RoleUser, Text: "hi", Turn: 1}}

	session, err := entities.NewSession(id, "user-1", "HTTP", createdAt, messages, weakPoints, m)
	require.NoError(t, err)
	return session
}

func TestDashboardCompute(t *testing.T) {
	svc := NewDashboardService()
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	t.Run("empty repository", func(t *testing.T) {
		stats := svc.Compute(nil, now)

		assert.Zero(t, stats.MonthlyThreadCount)
		assert.Zero(t, stats.TotalNodes)
		assert.Zero(t, stats.WeeklyNodesBefore)
		assert.Zero(t, stats.WeeklyNodesAfter)
		assert.Nil(t, stats.LastSession)
	})

	t.Run("aggregates across sessions", func(t *testing.T) {
		weakPoints := []valueobjects.WeakPoint{
			{ID: "wp1", StudyStatus: valueobjects.StudyTodo},
			{ID: "wp2", StudyStatus: valueobjects.StudyDone},
		}

		newest := dashboardSession(t, "sess-3", now.Add(-24*time.Hour), 5, weakPoints)
		middle := dashboardSession(t, "sess-2", now.Add(-72*time.Hour), 3, nil)
		// Previous calendar month
		oldest := dashboardSession(t, "sess-1", now.AddDate(0, -1, 0), 2, nil)

		stats := svc.Compute([]*entities.Session{newest, middle, oldest}, now)

		assert.Equal(t, 2, stats.MonthlyThreadCount)
		assert.Equal(t, 10, stats.TotalNodes)
		assert.Equal(t, 5, stats.WeeklyNodesAfter)
		assert.Equal(t, 3, stats.WeeklyNodesBefore)
		// Done weak points are not counted
		assert.Equal(t, 1, stats.WeakPointCount)
		require.NotNil(t, stats.LastSession)
		assert.Equal(t, "sess-3", stats.LastSession.ID())
	})

	t.Run("single session uses zero for before", func(t *testing.T) {
		only := dashboardSession(t, "sess-1", now, 4, nil)
		stats := svc.Compute([]*entities.Session{only}, now)

		assert.Equal(t, 4, stats.WeeklyNodesAfter)
		assert.Zero(t, stats.WeeklyNodesBefore)
	})

	t.Run("month comparison respects the year", func(t *testing.T) {
		lastYear := dashboardSession(t, "sess-1", now.AddDate(-1, 0, 0), 1, nil)
		stats := svc.Compute([]*entities.Session{lastYear}, now)
		assert.Zero(t, stats.MonthlyThreadCount)
	})
}
