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

// MapHandler serves the understanding-map endpoints
type MapHandler struct {
	commandBus *cmdbus.CommandBus
	queryBus   *querybus.QueryBus
	errHandler *pkgerrors.ErrorHandler
}

// NewMapHandler creates the handler
func NewMapHandler(commandBus *cmdbus.CommandBus, queryBus *querybus.QueryBus, errHandler *pkgerrors.ErrorHandler) *MapHandler {
	return &MapHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errHandler: errHandler,
	}
}

// Get handles GET /api/v1/map?scope=all|{sessionID}
func (h *MapHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetUnderstandingMapQuery{
		UserID: user.UserID,
		Scope:  scopeParam(r),
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// SelectNode handles POST /api/v1/map/nodes/{nodeID}/select
func (h *MapHandler) SelectNode(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.commandBus.Execute(r.Context(), commands.SelectMapNodeCommand{
		UserID: user.UserID,
		NodeID: chi.URLParam(r, "nodeID"),
		Scope:  scopeParam(r),
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// Reset handles POST /api/v1/map/reset
func (h *MapHandler) Reset(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.commandBus.Execute(r.Context(), commands.ResetMapCommand{
		UserID: user.UserID,
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
