package handlers

import (
	"context"

	"teachback-backend/application/ports"
	"teachback-backend/application/queries"
	"teachback-backend/application/queries/bus"
	"teachback-backend/domain/core/entities"
	pkgerrors "teachback-backend/pkg/errors"
	"teachback-backend/pkg/utils"
)

// GetWeakPointsHandler reads active weak points, grouped per session
type GetWeakPointsHandler struct {
	sessions ports.SessionRepository
}

// NewGetWeakPointsHandler creates the handler
func NewGetWeakPointsHandler(sessions ports.SessionRepository) *GetWeakPointsHandler {
	return &GetWeakPointsHandler{sessions: sessions}
}

// Handle returns the weak-point groups for the scope. Points marked done
// are filtered out; sessions whose points are all done still appear with
// an empty group so the screen can show them as cleared.
func (h *GetWeakPointsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetWeakPointsQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid query type", nil)
	}

	if q.Scope == queries.ScopeAll {
		sessions, err := h.sessions.ListByUser(ctx, q.UserID)
		if err != nil {
			return nil, err
		}
		groups := make([]queries.SessionWeakPoints, len(sessions))
		for i, session := range sessions {
			groups[i] = groupWeakPoints(session)
		}
		return groups, nil
	}

	session, err := h.sessions.FindByID(ctx, q.UserID, q.Scope)
	if err != nil {
		return nil, err
	}
	return []queries.SessionWeakPoints{groupWeakPoints(session)}, nil
}

func groupWeakPoints(session *entities.Session) queries.SessionWeakPoints {
	return queries.SessionWeakPoints{
		SessionID:  session.ID(),
		Theme:      session.Theme(),
		CreatedAt:  utils.FormatDisplay(session.CreatedAt()),
		WeakPoints: session.ActiveWeakPoints(),
	}
}
