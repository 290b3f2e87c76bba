package handlers

import (
	"context"

	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/application/commands/bus"
	"teachback-backend/application/ports"
	pkgerrors "teachback-backend/pkg/errors"
)

// ContinueSessionResult reports the restored workspace state
type ContinueSessionResult struct {
	SessionID    string `json:"session_id"`
	Theme        string `json:"theme"`
	MessageCount int    `json:"message_count"`
	Turn         int    `json:"turn"`
}

// ContinueSessionHandler copies a stored session's conversation back into
// the workspace. The stored session is not removed or modified.
type ContinueSessionHandler struct {
	workspaces ports.WorkspaceRepository
	sessions   ports.SessionRepository
	logger     *zap.Logger
}

// NewContinueSessionHandler creates the handler
func NewContinueSessionHandler(workspaces ports.WorkspaceRepository, sessions ports.SessionRepository, logger *zap.Logger) *ContinueSessionHandler {
	return &ContinueSessionHandler{
		workspaces: workspaces,
		sessions:   sessions,
		logger:     logger,
	}
}

// Handle restores the session's conversation into the workspace
func (h *ContinueSessionHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.ContinueSessionCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid command type", nil)
	}

	session, err := h.sessions.FindByID(ctx, c.UserID, c.SessionID)
	if err != nil {
		return nil, err
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, c.UserID)
	if err != nil {
		return nil, err
	}

	workspace.Restore(session.Theme(), session.Messages())

	h.logger.Info("session continued",
		zap.String("user_id", c.UserID),
		zap.String("session_id", c.SessionID),
	)

	return ContinueSessionResult{
		SessionID:    session.ID(),
		Theme:        workspace.Theme(),
		MessageCount: len(workspace.Messages()),
		Turn:         workspace.CurrentTurn(),
	}, nil
}
