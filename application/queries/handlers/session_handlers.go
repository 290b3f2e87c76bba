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

// ListSessionsHandler reads the user's session list
type ListSessionsHandler struct {
	sessions ports.SessionRepository
}

// NewListSessionsHandler creates the handler
func NewListSessionsHandler(sessions ports.SessionRepository) *ListSessionsHandler {
	return &ListSessionsHandler{sessions: sessions}
}

// Handle returns session summaries, newest first
func (h *ListSessionsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.ListSessionsQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid query type", nil)
	}

	sessions, err := h.sessions.ListByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	summaries := make([]queries.SessionSummary, len(sessions))
	for i, session := range sessions {
		summaries[i] = summarize(session)
	}
	return summaries, nil
}

// GetSessionHandler reads one full session
type GetSessionHandler struct {
	sessions ports.SessionRepository
}

// NewGetSessionHandler creates the handler
func NewGetSessionHandler(sessions ports.SessionRepository) *GetSessionHandler {
	return &GetSessionHandler{sessions: sessions}
}

// Handle returns the full session detail
func (h *GetSessionHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetSessionQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid query type", nil)
	}

	session, err := h.sessions.FindByID(ctx, q.UserID, q.SessionID)
	if err != nil {
		return nil, err
	}

	return queries.SessionDetail{
		ID:         session.ID(),
		Theme:      session.Theme(),
		CreatedAt:  utils.FormatDisplay(session.CreatedAt()),
		Messages:   session.Messages(),
		WeakPoints: session.WeakPoints(),
		Map:        session.Map(),
	}, nil
}

// summarize builds the list row for a session
func summarize(session *entities.Session) queries.SessionSummary {
	return queries.SessionSummary{
		ID:             session.ID(),
		Theme:          session.Theme(),
		CreatedAt:      utils.FormatDisplay(session.CreatedAt()),
		MessageCount:   len(session.Messages()),
		WeakPointCount: len(session.WeakPoints()),
		NodeCount:      len(session.Map().Nodes),
	}
}
