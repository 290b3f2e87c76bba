// Package analysis provides analysis-provider implementations. The
// dataset provider ships a fixed result and stands in until a
// model-backed provider replaces it.
package analysis

import (
	"context"
	"time"

	"teachback-backend/application/ports"
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// DatasetProvider returns a canned analysis result after a configured
// processing delay. The delay makes the analyzing state observable to
// clients the way a real provider would.
type DatasetProvider struct {
	delay time.Duration
}

// NewDatasetProvider creates the provider
func NewDatasetProvider(delay time.Duration) *DatasetProvider {
	return &DatasetProvider{delay: delay}
}

// Seed returns the opening conversation installed for a new theme
func (p *DatasetProvider) Seed(theme string) []valueobjects.ChatMessage {
	return seedConversation()
}

// Analyze waits out the processing delay and returns the dataset.
// Context cancellation aborts the wait.
func (p *DatasetProvider) Analyze(ctx context.Context, theme string, conversation []valueobjects.ChatMessage) (ports.AnalysisResult, error) {
	if len(conversation) == 0 {
		return ports.AnalysisResult{}, pkgerrors.NewValidationError("nothing to analyze")
	}

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ports.AnalysisResult{}, pkgerrors.NewTimeoutError("analysis cancelled")
		}
	}

	return ports.AnalysisResult{
		WeakPoints: datasetWeakPoints(),
		Map:        datasetMap(),
	}, nil
}

// seedConversation is the worked example conversation about HTTP that a
// fresh theme starts from. It ends at turn 3, right at the analysis
// threshold.
func seedConversation() []valueobjects.ChatMessage {
	texts := []struct {
		role valueobjects.MessageRole
		text string
	}{
		{valueobjects.RoleUser, "Today I want to explain how HTTP works. HTTP is the protocol browsers and servers use to exchange data on the web."},
		{valueobjects.RoleAssistant, "Nice, let's dig in. You said browsers and servers exchange data. What does one exchange actually look like?"},
		{valueobjects.RoleUser, "The browser sends a request with a method like GET or POST, and the server answers with a status code and a body. Each request is independent because HTTP is stateless."},
		{valueobjects.RoleAssistant, "You mentioned HTTP is stateless. If each request is independent, how does a shopping site remember what's in my cart?"},
		{valueobjects.RoleUser, "That's done with cookies. The server sets a cookie and the browser sends it back with later requests, so the server can tie them together."},
		{valueobjects.RoleAssistant, "Good. So the protocol stays stateless and the state lives somewhere else. Could you walk me through exactly what the server does with that cookie value?"},
	}

	messages := make([]valueobjects.ChatMessage, len(texts))
	for i, t := range texts {
		messages[i] = valueobjects.ChatMessage{
			Role: t.role,
			Text: t.text,
			Turn: valueobjects.TurnOf(i + 1),
		}
	}
	return messages
}

func datasetWeakPoints() []valueobjects.WeakPoint {
	return []valueobjects.WeakPoint{
		{
			ID:           "wp_stateless",
			Concept:      "Statelessness",
			Status:       valueobjects.StatusWeak,
			Reason:       "You stated that HTTP is stateless but could not explain what the server gives up by not keeping state, or why the design is still useful.",
			RelatedTurns: []int{2, 3},
			Suggestion:   "Explain one concrete consequence of statelessness, such as how load balancers benefit from it, then connect it to why sessions need external storage.",
			AiLevel:      valueobjects.AiLevelCritical,
			StudyStatus:  valueobjects.StudyTodo,
		},
		{
			ID:           "wp_cookie",
			Concept:      "Cookie mechanics",
			Status:       valueobjects.StatusVague,
			Reason:       "The explanation stopped at 'the server sets a cookie'. The Set-Cookie and Cookie header exchange was never described.",
			RelatedTurns: []int{3},
			Suggestion:   "Trace one full round trip: the Set-Cookie response header, browser storage, and the Cookie request header on the next request.",
			AiLevel:      valueobjects.AiLevelWeak,
			StudyStatus:  valueobjects.StudyTodo,
		},
	}
}

func datasetMap() valueobjects.UnderstandingMap {
	return valueobjects.UnderstandingMap{
		Center: valueobjects.UnderstandingNode{
			ID:        valueobjects.CenterID,
			Concept:   "HTTP",
			Status:    valueobjects.StatusMastered,
			X:         50,
			Y:         50,
			RelatedTo: []string{},
		},
		Nodes: []valueobjects.UnderstandingNode{
			{ID: "n1", Concept: "Request / Response", Status: valueobjects.StatusMastered, X: 50, Y: 22, Explanation: "Clearly explained the method, status code and body exchange.", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n2", Concept: "Statelessness", Status: valueobjects.StatusWeak, X: 72, Y: 32, Explanation: "Named the property but not its consequences.", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n3", Concept: "Cookies", Status: valueobjects.StatusVague, X: 78, Y: 55, Explanation: "Knows cookies carry state; the header mechanics stayed fuzzy.", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n4", Concept: "Methods", Status: valueobjects.StatusMastered, X: 65, Y: 75, Explanation: "GET and POST used correctly in context.", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n5", Concept: "Status codes", Status: valueobjects.StatusPartial, X: 35, Y: 75, Explanation: "Mentioned status codes without classes or examples.", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n6", Concept: "Headers", Status: valueobjects.StatusPartial, X: 22, Y: 55, Explanation: "Implied by the cookie discussion, never explained directly.", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n7", Concept: "Idempotency", Status: valueobjects.StatusWeak, X: 28, Y: 32, Explanation: "Not mentioned; closely tied to the methods you described.", RelatedTo: []string{"n1"}},
			{ID: "n8", Concept: "REST APIs", Status: valueobjects.StatusVague, X: 50, Y: 8, Explanation: "A natural next step built on the request/response model.", RelatedTo: []string{"n1"}},
		},
	}
}
