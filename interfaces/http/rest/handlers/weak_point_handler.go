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
	"teachback-backend/pkg/utils"
)

// UpdateStudyStatusRequest is the triage payload
type UpdateStudyStatusRequest struct {
	StudyStatus string `json:"studyStatus" validate:"required,oneof=todo doing done"`
}

// WeakPointHandler serves the weak-point endpoints
type WeakPointHandler struct {
	commandBus *cmdbus.CommandBus
	queryBus   *querybus.QueryBus
	errHandler *pkgerrors.ErrorHandler
}

// NewWeakPointHandler creates the handler
func NewWeakPointHandler(commandBus *cmdbus.CommandBus, queryBus *querybus.QueryBus, errHandler *pkgerrors.ErrorHandler) *WeakPointHandler {
	return &WeakPointHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errHandler: errHandler,
	}
}

// List handles GET /api/v1/weak-points?scope=all|{sessionID}
func (h *WeakPointHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetWeakPointsQuery{
		UserID: user.UserID,
		Scope:  scopeParam(r),
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus handles PUT /api/v1/weak-points/{weakPointID}/status
func (h *WeakPointHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req UpdateStudyStatusRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	result, err := h.commandBus.Execute(r.Context(), commands.UpdateStudyStatusCommand{
		UserID:      user.UserID,
		WeakPointID: chi.URLParam(r, "weakPointID"),
		Status:      req.StudyStatus,
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
