package handlers

import (
	"net/http"

	"teachback-backend/application/commands"
	cmdbus "teachback-backend/application/commands/bus"
	"teachback-backend/application/queries"
	querybus "teachback-backend/application/queries/bus"
	"teachback-backend/pkg/common"
	pkgerrors "teachback-backend/pkg/errors"
	"teachback-backend/pkg/utils"
)

// StartThemeRequest is the theme reset payload
type StartThemeRequest struct {
	Theme string `json:"theme" validate:"required,max=200"`
}

// SendMessageRequest is the chat send payload
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=10000"`
}

// ChatHandler serves the live conversation endpoints
type ChatHandler struct {
	commandBus *cmdbus.CommandBus
	queryBus   *querybus.QueryBus
	errHandler *pkgerrors.ErrorHandler
}

// NewChatHandler creates the handler
func NewChatHandler(commandBus *cmdbus.CommandBus, queryBus *querybus.QueryBus, errHandler *pkgerrors.ErrorHandler) *ChatHandler {
	return &ChatHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errHandler: errHandler,
	}
}

// StartTheme handles POST /api/v1/chat/theme
func (h *ChatHandler) StartTheme(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req StartThemeRequest
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

	result, err := h.commandBus.Execute(r.Context(), commands.StartThemeCommand{
		UserID: user.UserID,
		Theme:  req.Theme,
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetMessages handles GET /api/v1/chat/messages
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetConversationQuery{UserID: user.UserID})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// SendMessage handles POST /api/v1/chat/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req SendMessageRequest
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

	result, err := h.commandBus.Execute(r.Context(), commands.SendMessageCommand{
		UserID: user.UserID,
		Text:   req.Text,
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// Analyze handles POST /api/v1/chat/analyze
func (h *ChatHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.commandBus.Execute(r.Context(), commands.AnalyzeConversationCommand{
		UserID: user.UserID,
	})
	if err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, result)
}
