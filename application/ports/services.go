package ports

import (
	"context"

	"teachback-backend/domain/core/valueobjects"
)

// ChatCompleter produces the assistant's next reply for a conversation.
// Transport failures and non-2xx responses surface as Network errors;
// the send flow recovers from those with a fallback reply.
type ChatCompleter interface {
	Complete(ctx context.Context, theme string, conversation []valueobjects.ChatMessage) (string, error)
}

// AnalysisResult is what the analysis step derives from a conversation
type AnalysisResult struct {
	WeakPoints []valueobjects.WeakPoint
	Map        valueobjects.UnderstandingMap
}

// AnalysisProvider analyzes a frozen conversation snapshot into weak
// points and an understanding map. Seed returns the opening conversation
// installed when a theme is (re)started.
type AnalysisProvider interface {
	Analyze(ctx context.Context, theme string, conversation []valueobjects.ChatMessage) (AnalysisResult, error)
	Seed(theme string) []valueobjects.ChatMessage
}
