// Package handlers implements the query handlers.
package handlers

import (
	"context"

	"teachback-backend/application/ports"
	"teachback-backend/application/queries"
	"teachback-backend/application/queries/bus"
	pkgerrors "teachback-backend/pkg/errors"
)

// GetConversationHandler reads the live conversation state
type GetConversationHandler struct {
	workspaces ports.WorkspaceRepository
}

// NewGetConversationHandler creates the handler
func NewGetConversationHandler(workspaces ports.WorkspaceRepository) *GetConversationHandler {
	return &GetConversationHandler{workspaces: workspaces}
}

// Handle returns the conversation view
func (h *GetConversationHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetConversationQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid query type", nil)
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	return queries.ConversationView{
		Theme:       workspace.Theme(),
		Messages:    workspace.Messages(),
		Turn:        workspace.CurrentTurn(),
		CanAnalyze:  workspace.CanAnalyze(),
		IsAnalyzing: workspace.IsAnalyzing(),
		IsAnalyzed:  workspace.IsAnalyzed(),
	}, nil
}
