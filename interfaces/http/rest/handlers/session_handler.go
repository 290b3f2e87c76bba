package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"teachback-backend/application/commands"
	cmdbus "teachback-backend/application/commands/bus"
	"teachback-backend/application/queries"
	querybus "teachback-backend/application/queries/bus"
	"teachback-backend/pkg/common"
	pkgerrors "teachback-backend/pkg/errors"
)

// SessionHandler serves the stored-session endpoints
type SessionHandler struct {
	commandBus *cmdbus.CommandBus
	queryBus   *querybus.QueryBus
	errHandler *pkgerrors.ErrorHandler
}

// NewSessionHandler creates the handler
func NewSessionHandler(commandBus *cmdbus.CommandBus, queryBus *querybus.QueryBus, errHandler *pkgerrors.ErrorHandler) *SessionHandler {
	return &SessionHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errHandler: errHandler,
	}
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListSessionsQuery{UserID: user.UserID})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// Get handles GET /api/v1/sessions/{sessionID}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetSessionQuery{
		UserID:    user.UserID,
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// Continue handles POST /api/v1/sessions/{sessionID}/continue
func (h *SessionHandler) Continue(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.commandBus.Execute(r.Context(), commands.ContinueSessionCommand{
		UserID:    user.UserID,
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
