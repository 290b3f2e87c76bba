package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/application/commands/bus"
	"teachback-backend/application/ports"
	"teachback-backend/domain/core/entities"
	pkgerrors "teachback-backend/pkg/errors"
)

// AnalyzeConversationResult reports the session created by the analysis
type AnalyzeConversationResult struct {
	SessionID      string `json:"session_id"`
	Theme          string `json:"theme"`
	WeakPointCount int    `json:"weak_point_count"`
	NodeCount      int    `json:"node_count"`
}

// AnalyzeConversationHandler freezes the live conversation, runs the
// analysis provider and stores the resulting session. A failed analysis
// leaves the gate open so the user can retry.
type AnalyzeConversationHandler struct {
	workspaces ports.WorkspaceRepository
	sessions   ports.SessionRepository
	analysis   ports.AnalysisProvider
	cache      ports.Cache
	logger     *zap.Logger
}

// NewAnalyzeConversationHandler creates the handler
func NewAnalyzeConversationHandler(
	workspaces ports.WorkspaceRepository,
	sessions ports.SessionRepository,
	analysis ports.AnalysisProvider,
	cache ports.Cache,
	logger *zap.Logger,
) *AnalyzeConversationHandler {
	return &AnalyzeConversationHandler{
		workspaces: workspaces,
		sessions:   sessions,
		analysis:   analysis,
		cache:      cache,
		logger:     logger,
	}
}

// Handle executes the analysis flow
func (h *AnalyzeConversationHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.AnalyzeConversationCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid command type", nil)
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, c.UserID)
	if err != nil {
		return nil, err
	}

	snapshot, err := workspace.BeginAnalysis()
	if err != nil {
		return nil, err
	}
	theme := workspace.Theme()

	result, err := h.analysis.Analyze(ctx, theme, snapshot)
	if err != nil {
		workspace.FailAnalysis()
		return nil, pkgerrors.NewAnalysisError("analysis failed", err)
	}

	session, err := entities.NewSession(
		uuid.NewString(),
		c.UserID,
		theme,
		time.Now(),
		snapshot,
		result.WeakPoints,
		result.Map,
	)
	if err != nil {
		workspace.FailAnalysis()
		return nil, pkgerrors.NewAnalysisError("analysis produced an invalid session", err)
	}

	if err := h.sessions.AddSession(ctx, session); err != nil {
		workspace.FailAnalysis()
		return nil, pkgerrors.NewDatabaseError("failed to store session", err)
	}

	workspace.CompleteAnalysis()
	h.cache.Delete(ctx, dashboardCacheKey(c.UserID))

	h.logger.Info("conversation analyzed",
		zap.String("user_id", c.UserID),
		zap.String("session_id", session.ID()),
		zap.Int("weak_points", len(session.WeakPoints())),
	)

	return AnalyzeConversationResult{
		SessionID:      session.ID(),
		Theme:          session.Theme(),
		WeakPointCount: len(session.WeakPoints()),
		NodeCount:      len(session.Map().Nodes),
	}, nil
}

// dashboardCacheKey names the cached dashboard read model for a user
func dashboardCacheKey(userID string) string {
	return "dashboard:" + userID
}
