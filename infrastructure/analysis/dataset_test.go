package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachback-backend/domain/core/valueobjects"
)

func TestSeedConversation(t *testing.T) {
	provider := NewDatasetProvider(0)
	seed := provider.Seed("HTTP")

	// The seed ends exactly at the analysis threshold
	require.Len(t, seed, 6)
	assert.Equal(t, 3, valueobjects.CurrentTurn(seed))

	for i, msg := range seed {
		expected := valueobjects.RoleUser
		if i%2 == 1 {
			expected = valueobjects.RoleAssistant
		}
		assert.Equal(t, expected, msg.Role, "message %d", i)
		assert.Equal(t, valueobjects.TurnOf(i+1), msg.Turn, "message %d", i)
	}
}

func TestDatasetAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns weak points and a consistent map", func(t *testing.T) {
		provider := NewDatasetProvider(0)
		result, err := provider.Analyze(ctx, "HTTP", provider.Seed("HTTP"))
		require.NoError(t, err)

		assert.Len(t, result.WeakPoints, 2)
		assert.Len(t, result.Map.Nodes, 8)

		// Every parent reference resolves within the map
		for _, node := range result.Map.Nodes {
			for _, parent := range node.RelatedTo {
				_, ok := result.Map.ParentOf(parent)
				assert.True(t, ok, "node %s references %s", node.ID, parent)
			}
		}
	})

	t.Run("rejects an empty conversation", func(t *testing.T) {
		provider := NewDatasetProvider(0)
		_, err := provider.Analyze(ctx, "HTTP", nil)
		assert.Error(t, err)
	})

	t.Run("cancellation aborts the delay", func(t *testing.T) {
		provider := NewDatasetProvider(5 * time.Second)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		start := time.Now()
		_, err := provider.Analyze(cancelled, "HTTP", provider.Seed("HTTP"))
		assert.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})
}
