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

// FallbackReply is appended when the assistant backend cannot be reached.
// The conversation always receives a reply for every accepted send.
const FallbackReply = "Sorry, I couldn't reach the tutor just now. Please try sending that again."

// SendMessageResult carries both halves of the exchange
type SendMessageResult struct {
	UserMessage      valueobjects.ChatMessage `json:"user_message"`
	AssistantMessage valueobjects.ChatMessage `json:"assistant_message"`
	Turn             int                      `json:"turn"`
	CanAnalyze       bool                     `json:"can_analyze"`
	UsedFallback     bool                     `json:"used_fallback"`
}

// SendMessageHandler runs the send flow: the user message lands
// synchronously, then the assistant reply (or the fallback) is appended
// when the completion round trip resolves.
type SendMessageHandler struct {
	workspaces ports.WorkspaceRepository
	completer  ports.ChatCompleter
	logger     *zap.Logger
}

// NewSendMessageHandler creates the handler
func NewSendMessageHandler(workspaces ports.WorkspaceRepository, completer ports.ChatCompleter, logger *zap.Logger) *SendMessageHandler {
	return &SendMessageHandler{
		workspaces: workspaces,
		completer:  completer,
		logger:     logger,
	}
}

// Handle executes the send flow for one user message
func (h *SendMessageHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.SendMessageCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError("invalid command type", nil)
	}

	workspace, err := h.workspaces.GetOrCreate(ctx, c.UserID)
	if err != nil {
		return nil, err
	}

	userMsg, err := workspace.AppendUserMessage(c.Text)
	if err != nil {
		return nil, err
	}

	// The snapshot for the completion includes the message just sent
	conversation := workspace.Messages()

	usedFallback := false
	reply, err := h.completer.Complete(ctx, workspace.Theme(), conversation)
	if err != nil {
		// The user message stays; the exchange recovers with the fallback
		h.logger.Warn("chat completion failed, using fallback",
			zap.String("user_id", c.UserID),
			zap.Error(err),
		)
		reply = FallbackReply
		usedFallback = true
	}

	assistantMsg := workspace.AppendAssistantReply(reply)

	return SendMessageResult{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Turn:             workspace.CurrentTurn(),
		CanAnalyze:       workspace.CanAnalyze(),
		UsedFallback:     usedFallback,
	}, nil
}
