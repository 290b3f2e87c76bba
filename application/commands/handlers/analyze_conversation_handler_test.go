package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/application/ports"
	"teachback-backend/domain/core/valueobjects"
	"teachback-backend/infrastructure/persistence/memory"
	pkgerrors "teachback-backend/pkg/errors"
)

type fakeAnalysis struct {
	err   error
	calls int
}

func (f *fakeAnalysis) Analyze(ctx context.Context, theme string, conversation []valueobjects.ChatMessage) (ports.AnalysisResult, error) {
	f.calls++
	if f.err != nil {
		return ports.AnalysisResult{}, f.err
	}
	return ports.AnalysisResult{
		WeakPoints: []valueobjects.WeakPoint{
			{ID: "wp_a", Concept: "Statelessness", StudyStatus: valueobjects.StudyTodo},
		},
		Map: valueobjects.UnderstandingMap{
			Center: valueobjects.NewPlaceholderCenter(theme),
			Nodes: []valueobjects.UnderstandingNode{
				{ID: "n1", Concept: "Basics", RelatedTo: []string{valueobjects.CenterID}},
			},
		},
	}, nil
}

func (f *fakeAnalysis) Seed(theme string) []valueobjects.ChatMessage {
	return nil
}

type fakeCache struct {
	deleted []string
}

func (f *fakeCache) Get(ctx context.Context, key string) (interface{}, bool) { return nil, false }
func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error {
	return nil
}
func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

// teachUpTo advances the workspace to the analysis threshold
func teachUpTo(t *testing.T, workspaces ports.WorkspaceRepository, userID string, turns int) {
	t.Helper()
	workspace, err := workspaces.GetOrCreate(context.Background(), userID)
	require.NoError(t, err)
	require.NoError(t, workspace.ResetForTheme("HTTP", nil))
	for i := 0; i < turns; i++ {
		_, err := workspace.AppendUserMessage("explaining something")
		require.NoError(t, err)
		workspace.AppendAssistantReply("a question back")
	}
}

func TestAnalyzeConversationHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects before the gate opens", func(t *testing.T) {
		workspaces := newWorkspaces()
		sessions := memory.NewSessionRepository()
		provider := &fakeAnalysis{}
		handler := NewAnalyzeConversationHandler(workspaces, sessions, provider, &fakeCache{}, zap.NewNop())

		teachUpTo(t, workspaces, "user-1", 2)

		_, err := handler.Handle(ctx, commands.AnalyzeConversationCommand{UserID: "user-1"})
		assert.True(t, pkgerrors.IsConflict(err))
		assert.Zero(t, provider.calls)
	})

	t.Run("freezes the conversation into a prepended session", func(t *testing.T) {
		workspaces := newWorkspaces()
		sessions := memory.NewSessionRepository()
		cache := &fakeCache{}
		handler := NewAnalyzeConversationHandler(workspaces, sessions, &fakeAnalysis{}, cache, zap.NewNop())

		teachUpTo(t, workspaces, "user-1", 3)

		result, err := handler.Handle(ctx, commands.AnalyzeConversationCommand{UserID: "user-1"})
		require.NoError(t, err)

		r := result.(AnalyzeConversationResult)
		assert.NotEmpty(t, r.SessionID)
		assert.Equal(t, "HTTP", r.Theme)
		assert.Equal(t, 1, r.WeakPointCount)

		list, err := sessions.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, r.SessionID, list[0].ID())
		assert.Len(t, list[0].Messages(), 6)

		// Weak point ids are namespaced with the new session id
		assert.Equal(t, r.SessionID+":wp_a", list[0].WeakPoints()[0].ID)

		// The gate closes and the dashboard cache is invalidated
		workspace, err := workspaces.GetOrCreate(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, workspace.IsAnalyzed())
		assert.False(t, workspace.IsAnalyzing())
		assert.Contains(t, cache.deleted, "dashboard:user-1")
	})

	t.Run("second analysis of the same conversation is rejected", func(t *testing.T) {
		workspaces := newWorkspaces()
		sessions := memory.NewSessionRepository()
		handler := NewAnalyzeConversationHandler(workspaces, sessions, &fakeAnalysis{}, &fakeCache{}, zap.NewNop())

		teachUpTo(t, workspaces, "user-1", 3)

		_, err := handler.Handle(ctx, commands.AnalyzeConversationCommand{UserID: "user-1"})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, commands.AnalyzeConversationCommand{UserID: "user-1"})
		assert.True(t, pkgerrors.IsConflict(err))
	})

	t.Run("provider failure leaves the gate open for retry", func(t *testing.T) {
		workspaces := newWorkspaces()
		sessions := memory.NewSessionRepository()
		provider := &fakeAnalysis{err: errors.New("model unavailable")}
		handler := NewAnalyzeConversationHandler(workspaces, sessions, provider, &fakeCache{}, zap.NewNop())

		teachUpTo(t, workspaces, "user-1", 3)

		_, err := handler.Handle(ctx, commands.AnalyzeConversationCommand{UserID: "user-1"})
		assert.True(t, pkgerrors.IsAnalysis(err))

		list, err := sessions.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, list)

		// Retry succeeds once the provider recovers
		provider.err = nil
		_, err = handler.Handle(ctx, commands.AnalyzeConversationCommand{UserID: "user-1"})
		assert.NoError(t, err)
	})
}
