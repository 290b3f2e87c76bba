package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

func TestCompleteTimeout(t *testing.T) {
	// An already-expired deadline fails the round trip before any dial,
	// and the failure must surface as the Network kind so the send flow
	// falls back instead of hanging.
	client := NewChatClient("test-key", "gpt-4o-mini", time.Nanosecond, zap.NewNop())

	_, err := client.Complete(context.Background(), "HTTP", []valueobjects.ChatMessage{
		{Role: valueobjects.RoleUser, Text: "HTTP is a protocol", Turn: 1},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
}
