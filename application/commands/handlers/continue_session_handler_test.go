package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teachback-backend/application/commands"
	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
	"teachback-backend/infrastructure/persistence/memory"
	pkgerrors "teachback-backend/pkg/errors"
)

func TestContinueSessionHandler(t *testing.T) {
	ctx := context.Background()

	messages := []valueobjects.ChatMessage{
		{Role: valueobjects.RoleUser, Text: "HTTP is a protocol", Turn: 1},
		{Role: valueobjects.RoleAssistant, Text: "go on", Turn: 1},
	}
	m := valueobjects.UnderstandingMap{
		Center: valueobjects.NewPlaceholderCenter("HTTP"),
		Nodes:  []valueobjects.UnderstandingNode{},
	}

	t.Run("restores the conversation without touching the session", func(t *testing.T) {
		workspaces := newWorkspaces()
		sessions := memory.NewSessionRepository()
		stored, err := entities.NewSession("sess-1", "user-1", "HTTP", time.Now(), messages, nil, m)
		require.NoError(t, err)
		require.NoError(t, sessions.AddSession(ctx, stored))

		handler := NewContinueSessionHandler(workspaces, sessions, zap.NewNop())
		result, err := handler.Handle(ctx, commands.ContinueSessionCommand{UserID: "user-1", SessionID: "sess-1"})
		require.NoError(t, err)

		r := result.(ContinueSessionResult)
		assert.Equal(t, "HTTP", r.Theme)
		assert.Equal(t, 2, r.MessageCount)

		workspace, err := workspaces.GetOrCreate(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, workspace.Messages(), 2)
		assert.False(t, workspace.IsAnalyzed())

		// The stored session is still there
		list, err := sessions.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		workspaces := newWorkspaces()
		sessions := memory.NewSessionRepository()
		handler := NewContinueSessionHandler(workspaces, sessions, zap.NewNop())

		_, err := handler.Handle(ctx, commands.ContinueSessionCommand{UserID: "user-1", SessionID: "sess-9"})
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}
