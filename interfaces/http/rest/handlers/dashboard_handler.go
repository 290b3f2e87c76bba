package handlers

import (
	"net/http"

	"teachback-backend/application/queries"
	querybus "teachback-backend/application/queries/bus"
	"teachback-backend/pkg/common"
	pkgerrors "teachback-backend/pkg/errors"
)

// DashboardHandler serves the home-screen statistics
type DashboardHandler struct {
	queryBus   *querybus.QueryBus
	errHandler *pkgerrors.ErrorHandler
}

// NewDashboardHandler creates the handler
func NewDashboardHandler(queryBus *querybus.QueryBus, errHandler *pkgerrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		queryBus:   queryBus,
		errHandler: errHandler,
	}
}

// Get handles GET /api/v1/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetDashboardQuery{UserID: user.UserID})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
