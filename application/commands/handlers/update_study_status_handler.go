package handlers

import (
	"context"

	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/application/commands/bus"
	"teachback-backend/application/ports"
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// UpdateStudyStatusResult confirms the applied status
type UpdateStudyStatusResult struct {
	WeakPointID string `json:"weak_point_id"`
	Status      string `json:"status"`
}

// UpdateStudyStatusHandler applies a triage status change across every
// session holding the weak point
type UpdateStudyStatusHandler struct {
	sessions ports.SessionRepository
	cache    ports.Cache
	logger   *zap.Logger
}

// NewUpdateStudyStatusHandler creates the handler
func NewUpdateStudyStatusHandler(sessions ports.SessionRepository, cache ports.Cache, logger *zap.Logger) *UpdateStudyStatusHandler {
	return &UpdateStudyStatusHandler{
		sessions: sessions,
		cache:    cache,
		logger:   logger,
	}
}

// Handle applies the status change
func (h *UpdateStudyStatusHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.UpdateStudyStatusCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid command type", nil)
	}

	status := valueobjects.StudyStatus(c.Status)
	if err := h.sessions.UpdateWeakPointStatus(ctx, c.UserID, c.WeakPointID, status); err != nil {
		return nil, err
	}

	h.cache.Delete(ctx, dashboardCacheKey(c.UserID))

	h.logger.Info("weak point status updated",
		zap.String("user_id", c.UserID),
		zap.String("weak_point_id", c.WeakPointID),
		zap.String("status", c.Status),
	)

	return UpdateStudyStatusResult{
		WeakPointID: c.WeakPointID,
		Status:      c.Status,
	}, nil
}
