package ai

import (
	"context"

	"teachback-backend/domain/core/valueobjects"
)

// stubReplies cycle when no API key is configured, keeping the teaching
// loop usable in local development
var stubReplies = []string{
	"Interesting. Can you give me a concrete example of that?",
	"Wait, why does it work that way? What would break otherwise?",
	"I think I follow. Could you explain that part again as if I were ten?",
	"How does that connect to what you told me earlier?",
}

// StubClient is an offline ChatCompleter used when no API key is set
type StubClient struct{}

// NewStubClient creates the stub completer
func NewStubClient() *StubClient {
	return &StubClient{}
}

// Complete returns a canned probing question
func (c *StubClient) Complete(ctx context.Context, theme string, conversation []valueobjects.ChatMessage) (string, error) {
	return stubReplies[len(conversation)%len(stubReplies)], nil
}
