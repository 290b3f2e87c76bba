package handlers

import (
	"context"
	"time"

	"teachback-backend/application/ports"
	"teachback-backend/application/queries"
	"teachback-backend/application/queries/bus"
	"teachback-backend/domain/services"
	pkgerrors "teachback-backend/pkg/errors"
)

// dashboardCacheTTLSeconds bounds staleness of the cached dashboard
const dashboardCacheTTLSeconds = 30

// GetDashboardHandler computes the home-screen statistics
type GetDashboardHandler struct {
	sessions  ports.SessionRepository
	dashboard *services.DashboardService
	cache     ports.Cache
}

// NewGetDashboardHandler creates the handler
func NewGetDashboardHandler(sessions ports.SessionRepository, dashboard *services.DashboardService, cache ports.Cache) *GetDashboardHandler {
	return &GetDashboardHandler{
		sessions:  sessions,
		dashboard: dashboard,
		cache:     cache,
	}
}

// Handle returns the dashboard view, briefly cached per user. Writes
// that change the inputs invalidate the cache entry.
func (h *GetDashboardHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetDashboardQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid query type", nil)
	}

	cacheKey := "dashboard:" + q.UserID
	if cached, found := h.cache.Get(ctx, cacheKey); found {
		if view, ok := cached.(queries.DashboardView); ok {
			return view, nil
		}
	}

	sessions, err := h.sessions.ListByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	stats := h.dashboard.Compute(sessions, time.Now())

	view := queries.DashboardView{
		MonthlyThreadCount: stats.MonthlyThreadCount,
		TotalNodes:         stats.TotalNodes,
		WeeklyNodesBefore:  stats.WeeklyNodesBefore,
		WeeklyNodesAfter:   stats.WeeklyNodesAfter,
		WeakPointCount:     stats.WeakPointCount,
	}
	if stats.LastSession != nil {
		summary := summarize(stats.LastSession)
		view.LastSession = &summary
	}

	h.cache.Set(ctx, cacheKey, view, dashboardCacheTTLSeconds)
	return view, nil
}
