package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/application/ports"
	"teachback-backend/domain/config"
	"teachback-backend/domain/core/valueobjects"
	"teachback-backend/infrastructure/persistence/memory"
	pkgerrors "teachback-backend/pkg/errors"
)

type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, theme string, conversation []valueobjects.ChatMessage) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newWorkspaces() ports.WorkspaceRepository {
	return memory.NewWorkspaceRepository(config.DefaultDomainConfig())
}

func TestSendMessageHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("appends user message and reply in order", func(t *testing.T) {
		workspaces := newWorkspaces()
		completer := &fakeCompleter{reply: "why is that?"}
		handler := NewSendMessageHandler(workspaces, completer, zap.NewNop())

		result, err := handler.Handle(ctx, commands.SendMessageCommand{UserID: "user-1", Text: "HTTP is stateless"})
		require.NoError(t, err)

		r := result.(SendMessageResult)
		assert.Equal(t, valueobjects.RoleUser, r.UserMessage.Role)
		assert.Equal(t, "why is that?", r.AssistantMessage.Text)
		assert.False(t, r.UsedFallback)

		workspace, err := workspaces.GetOrCreate(ctx, "user-1")
		require.NoError(t, err)
		messages := workspace.Messages()
		require.Len(t, messages, 2)
		assert.Equal(t, valueobjects.RoleUser, messages[0].Role)
		assert.Equal(t, valueobjects.RoleAssistant, messages[1].Role)
	})

	t.Run("network failure recovers with the fallback reply", func(t *testing.T) {
		workspaces := newWorkspaces()
		completer := &fakeCompleter{err: pkgerrors.NewNetworkError("connection refused", nil)}
		handler := NewSendMessageHandler(workspaces, completer, zap.NewNop())

		result, err := handler.Handle(ctx, commands.SendMessageCommand{UserID: "user-1", Text: "hello"})
		require.NoError(t, err)

		r := result.(SendMessageResult)
		assert.True(t, r.UsedFallback)
		assert.Equal(t, FallbackReply, r.AssistantMessage.Text)

		// The user message survives the failure
		workspace, err := workspaces.GetOrCreate(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, workspace.Messages(), 2)
		assert.Equal(t, "hello", workspace.Messages()[0].Text)
	})

	t.Run("blank text appends nothing", func(t *testing.T) {
		workspaces := newWorkspaces()
		completer := &fakeCompleter{reply: "never sent"}
		handler := NewSendMessageHandler(workspaces, completer, zap.NewNop())

		_, err := handler.Handle(ctx, commands.SendMessageCommand{UserID: "user-1", Text: "   "})
		assert.Error(t, err)
		assert.Zero(t, completer.calls)

		workspace, err := workspaces.GetOrCreate(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, workspace.Messages())
	})

	t.Run("turns advance across sends", func(t *testing.T) {
		workspaces := newWorkspaces()
		completer := &fakeCompleter{reply: "go on"}
		handler := NewSendMessageHandler(workspaces, completer, zap.NewNop())

		for i := 0; i < 3; i++ {
			_, err := handler.Handle(ctx, commands.SendMessageCommand{UserID: "user-1", Text: "more detail"})
			require.NoError(t, err)
		}

		result, err := handler.Handle(ctx, commands.SendMessageCommand{UserID: "user-1", Text: "final"})
		require.NoError(t, err)

		r := result.(SendMessageResult)
		assert.Equal(t, 4, r.Turn)
		assert.True(t, r.CanAnalyze)
	})
}
