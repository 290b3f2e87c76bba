// Package ai implements the chat completion port against the OpenAI API.
package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

const tutorPrompt = "You are a curious student being taught about %q. " +
	"The user is learning by teaching you. Ask short probing questions " +
	"that expose gaps in their explanation. Never lecture; let them do " +
	"the explaining. Reply in at most three sentences."

// ChatClient calls the OpenAI chat completion API for assistant replies
type ChatClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewChatClient creates a chat client for the given model. The timeout
// bounds each completion round trip; zero disables the bound.
func NewChatClient(apiKey, model string, timeout time.Duration, logger *zap.Logger) *ChatClient {
	return &ChatClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Complete returns the assistant's next reply for the conversation.
// Every failure, the deadline included, is surfaced as a Network error
// so the send flow can recover with its fallback.
func (c *ChatClient) Complete(ctx context.Context, theme string, conversation []valueobjects.ChatMessage) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(conversation)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf(tutorPrompt, theme),
	})
	for _, msg := range conversation {
		role := openai.ChatMessageRoleUser
		if msg.Role == valueobjects.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", pkgerrors.NewNetworkError("chat completion request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", pkgerrors.NewNetworkError("chat completion returned no choices", nil)
	}

	c.logger.Debug("chat completion",
		zap.String("model", c.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}
