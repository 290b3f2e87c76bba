package handlers

import (
	"context"

	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/application/commands/bus"
	"teachback-backend/application/ports"
	"teachback-backend/domain/core/valueobjects"
	"teachback-backend/domain/services"
	pkgerrors "teachback-backend/pkg/errors"
)

// SelectMapNodeResult reports the interaction state after a click
type SelectMapNodeResult struct {
	SelectedNodeID string `json:"selected_node_id"`
	Expanded       bool   `json:"expanded"`
}

// SelectMapNodeHandler applies a node click to the workspace
type SelectMapNodeHandler struct {
	workspaces ports.WorkspaceRepository
	sessions   ports.SessionRepository
	mapView    *services.MapViewService
	logger     *zap.Logger
}

// NewSelectMapNodeHandler creates the handler
func NewSelectMapNodeHandler(
	workspaces ports.WorkspaceRepository,
	sessions ports.SessionRepository,
	mapView *services.MapViewService,
	logger *zap.Logger,
) *SelectMapNodeHandler {
	return &SelectMapNodeHandler{
		workspaces: workspaces,
		sessions:   sessions,
		mapView:    mapView,
		logger:     logger,
	}
}

// Handle resolves the scoped map and applies the click
func (h *SelectMapNodeHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.SelectMapNodeCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid command type", nil)
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, c.UserID)
	if err != nil {
		return nil, err
	}

	mapData, err := h.resolveMap(ctx, c.UserID, c.Scope, workspace.Theme())
	if err != nil {
		return nil, err
	}

	if err := workspace.SelectNode(c.NodeID, mapData); err != nil {
		return nil, err
	}

	return SelectMapNodeResult{
		SelectedNodeID: workspace.SelectedNodeID(),
		Expanded:       workspace.ExpandedNodes()[c.NodeID],
	}, nil
}

func (h *SelectMapNodeHandler) resolveMap(ctx context.Context, userID, scope, theme string) (valueobjects.UnderstandingMap, error) {
	if scope == "all" {
		sessions, err := h.sessions.ListByUser(ctx, userID)
		if err != nil {
			return valueobjects.UnderstandingMap{}, err
		}
		return h.mapView.Merge(sessions, theme), nil
	}

	session, err := h.sessions.FindByID(ctx, userID, scope)
	if err != nil {
		return valueobjects.UnderstandingMap{}, err
	}
	return session.Map(), nil
}

// ResetMapHandler collapses the map back to the center
type ResetMapHandler struct {
	workspaces ports.WorkspaceRepository
}

// NewResetMapHandler creates the handler
func NewResetMapHandler(workspaces ports.WorkspaceRepository) *ResetMapHandler {
	return &ResetMapHandler{workspaces: workspaces}
}

// Handle resets the expansion set. The selection is kept.
func (h *ResetMapHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.ResetMapCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid command type", nil)
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, c.UserID)
	if err != nil {
		return nil, err
	}

	workspace.ResetExpansion()

	return SelectMapNodeResult{
		SelectedNodeID: workspace.SelectedNodeID(),
		Expanded:       false,
	}, nil
}
