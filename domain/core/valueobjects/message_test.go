package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnOf(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TurnOf(tt.index), "index %d", tt.index)
	}
}

func TestCurrentTurn(t *testing.T) {
	t.Run("empty conversation is turn zero", func(t *testing.T) {
		assert.Equal(t, 0, CurrentTurn(nil))
	})

	t.Run("advances every two messages", func(t *testing.T) {
		var messages []ChatMessage
		for i := 1; i <= 6; i++ {
			role := RoleUser
			if i%2 == 0 {
				role = RoleAssistant
			}
			msg, err := NewChatMessage(role, "text", i)
			require.NoError(t, err)
			messages = append(messages, msg)

			// The appended message's turn always equals the
			// conversation turn after the append
			assert.Equal(t, CurrentTurn(messages), msg.Turn)
		}
		assert.Equal(t, 3, CurrentTurn(messages))
	})
}

func TestNewChatMessage(t *testing.T) {
	t.Run("rejects blank text", func(t *testing.T) {
		_, err := NewChatMessage(RoleUser, "   ", 1)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewChatMessage(MessageRole("system"), "hi", 1)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive index", func(t *testing.T) {
		_, err := NewChatMessage(RoleUser, "hi", 0)
		assert.Error(t, err)
	})
}
