package handlers

import (
	"context"
	"sort"

	"teachback-backend/application/ports"
	"teachback-backend/application/queries"
	"teachback-backend/application/queries/bus"
	"teachback-backend/domain/core/valueobjects"
	"teachback-backend/domain/services"
	pkgerrors "teachback-backend/pkg/errors"
)

// GetUnderstandingMapHandler computes the map view for a scope using the
// workspace's expansion and selection state
type GetUnderstandingMapHandler struct {
	workspaces ports.WorkspaceRepository
	sessions   ports.SessionRepository
	mapView    *services.MapViewService
}

// NewGetUnderstandingMapHandler creates the handler
func NewGetUnderstandingMapHandler(
	workspaces ports.WorkspaceRepository,
	sessions ports.SessionRepository,
	mapView *services.MapViewService,
) *GetUnderstandingMapHandler {
	return &GetUnderstandingMapHandler{
		workspaces: workspaces,
		sessions:   sessions,
		mapView:    mapView,
	}
}

// Handle returns the map view for the query's scope
func (h *GetUnderstandingMapHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetUnderstandingMapQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid query type", nil)
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	mapData, err := h.resolveMap(ctx, q.UserID, q.Scope, workspace.Theme())
	if err != nil {
		return nil, err
	}

	expanded := workspace.ExpandedNodes()

	expandedIDs := make([]string, 0, len(expanded))
	for id := range expanded {
		expandedIDs = append(expandedIDs, id)
	}
	sort.Strings(expandedIDs)

	return queries.MapView{
		Center:         mapData.Center,
		VisibleNodes:   h.mapView.VisibleNodes(mapData, expanded),
		Connectors:     h.mapView.Connectors(mapData, expanded),
		ExpandedNodes:  expandedIDs,
		SelectedNodeID: workspace.SelectedNodeID(),
		TotalNodes:     len(mapData.Nodes),
	}, nil
}

// resolveMap picks the map for the scope: one session's own map, or the
// concatenation of every session's map for "all"
func (h *GetUnderstandingMapHandler) resolveMap(ctx context.Context, userID, scope, theme string) (valueobjects.UnderstandingMap, error) {
	if scope == queries.ScopeAll {
		sessions, err := h.sessions.ListByUser(ctx, userID)
		if err != nil {
			return valueobjects.UnderstandingMap{}, err
		}
		placeholder := theme
		if placeholder == "" {
			placeholder = "Not analyzed yet"
		}
		return h.mapView.Merge(sessions, placeholder), nil
	}

	session, err := h.sessions.FindByID(ctx, userID, scope)
	if err != nil {
		return valueobjects.UnderstandingMap{}, err
	}
	return session.Map(), nil
}
