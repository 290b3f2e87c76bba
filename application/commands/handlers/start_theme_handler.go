// Package handlers implements the command handlers.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/application/commands/bus"
	"teachback-backend/application/ports"
	pkgerrors "teachback-backend/pkg/errors"
)

// StartThemeResult reports the workspace state after a theme reset
type StartThemeResult struct {
	Theme        string `json:"theme"`
	MessageCount int    `json:"message_count"`
	Turn         int    `json:"turn"`
}

// StartThemeHandler resets the user's workspace for a new theme
type StartThemeHandler struct {
	workspaces ports.WorkspaceRepository
	analysis   ports.AnalysisProvider
	logger     *zap.Logger
}

// NewStartThemeHandler creates the handler
func NewStartThemeHandler(workspaces ports.WorkspaceRepository, analysis ports.AnalysisProvider, logger *zap.Logger) *StartThemeHandler {
	return &StartThemeHandler{
		workspaces: workspaces,
		analysis:   analysis,
		logger:     logger,
	}
}

// Handle installs the seed conversation for the theme and clears all
// analysis and map-view state.
func (h *StartThemeHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.StartThemeCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid command type", nil)
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, c.UserID)
	if err != nil {
		return nil, err
	}

	seed := h.analysis.Seed(c.Theme)
	if err := workspace.ResetForTheme(c.Theme, seed); err != nil {
		return nil, err
	}

	h.logger.Info("theme started",
		zap.String("user_id", c.UserID),
		zap.String("theme", c.Theme),
	)

	return StartThemeResult{
		Theme:        workspace.Theme(),
		MessageCount: len(workspace.Messages()),
		Turn:         workspace.CurrentTurn(),
	}, nil
}
