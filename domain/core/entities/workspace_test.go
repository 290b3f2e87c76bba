package entities

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachback-backend/domain/config"
	"teachback-backend/domain/core/valueobjects"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	workspace, err := NewWorkspace("user-1", config.DefaultDomainConfig())
	require.NoError(t, err)
	return workspace
}

func testMap() valueobjects.UnderstandingMap {
	return valueobjects.UnderstandingMap{
		Center: valueobjects.NewPlaceholderCenter("HTTP"),
		Nodes: []valueobjects.UnderstandingNode{
			{ID: "n1", Concept: "Request / Response", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n2", Concept: "Statelessness", RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n7", Concept: "Idempotency", RelatedTo: []string{"n1"}},
		},
	}
}

// exchange appends one user message and its reply
func exchange(t *testing.T, w *Workspace, n int) {
	t.Helper()
	_, err := w.AppendUserMessage(fmt.Sprintf("user message %d", n))
	require.NoError(t, err)
	w.AppendAssistantReply(fmt.Sprintf("reply %d", n))
}

func TestWorkspaceAnalysisGate(t *testing.T) {
	t.Run("closed below three turns", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))

		exchange(t, workspace, 1)
		exchange(t, workspace, 2)
		assert.False(t, workspace.CanAnalyze())

		_, err := workspace.BeginAnalysis()
		assert.Error(t, err)
	})

	t.Run("opens at turn three", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))

		for i := 1; i <= 3; i++ {
			exchange(t, workspace, i)
		}
		assert.True(t, workspace.CanAnalyze())
	})

	t.Run("a lone fifth message still opens the gate", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))

		exchange(t, workspace, 1)
		exchange(t, workspace, 2)
		_, err := workspace.AppendUserMessage("fifth message")
		require.NoError(t, err)

		// ceil(5/2) = 3, but the send is still outstanding
		assert.Equal(t, 3, workspace.CurrentTurn())
		assert.True(t, workspace.CanAnalyze())
		_, err = workspace.BeginAnalysis()
		assert.Error(t, err)

		workspace.AppendAssistantReply("reply 3")
		_, err = workspace.BeginAnalysis()
		assert.NoError(t, err)
	})

	t.Run("closes after completed analysis", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))
		for i := 1; i <= 3; i++ {
			exchange(t, workspace, i)
		}

		snapshot, err := workspace.BeginAnalysis()
		require.NoError(t, err)
		assert.Len(t, snapshot, 6)
		assert.True(t, workspace.IsAnalyzing())

		workspace.CompleteAnalysis()
		assert.True(t, workspace.IsAnalyzed())
		assert.False(t, workspace.CanAnalyze())

		// More conversation does not reopen the gate
		exchange(t, workspace, 4)
		assert.False(t, workspace.CanAnalyze())
	})

	t.Run("failed analysis leaves the gate open for retry", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))
		for i := 1; i <= 3; i++ {
			exchange(t, workspace, i)
		}

		_, err := workspace.BeginAnalysis()
		require.NoError(t, err)
		workspace.FailAnalysis()

		assert.False(t, workspace.IsAnalyzed())
		assert.True(t, workspace.CanAnalyze())
		_, err = workspace.BeginAnalysis()
		assert.NoError(t, err)
	})

	t.Run("rejects concurrent analysis", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))
		for i := 1; i <= 3; i++ {
			exchange(t, workspace, i)
		}

		_, err := workspace.BeginAnalysis()
		require.NoError(t, err)
		_, err = workspace.BeginAnalysis()
		assert.Error(t, err)
	})
}

func TestWorkspaceResetForTheme(t *testing.T) {
	seed := []valueobjects.ChatMessage{
		{Role: valueobjects.RoleUser, Text: "seed", Turn: 1},
		{Role: valueobjects.RoleAssistant, Text: "seed reply", Turn: 1},
	}

	t.Run("installs seed and clears state", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", seed))
		for i := 1; i <= 3; i++ {
			exchange(t, workspace, i)
		}
		_, err := workspace.BeginAnalysis()
		require.NoError(t, err)
		workspace.CompleteAnalysis()
		require.NoError(t, workspace.SelectNode("n1", testMap()))

		require.NoError(t, workspace.ResetForTheme("TCP", seed))

		assert.Equal(t, "TCP", workspace.Theme())
		assert.Len(t, workspace.Messages(), 2)
		assert.False(t, workspace.IsAnalyzed())
		assert.Empty(t, workspace.SelectedNodeID())
		assert.Equal(t, map[string]bool{valueobjects.CenterID: true}, workspace.ExpandedNodes())
	})

	t.Run("rejects blank theme", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		assert.Error(t, workspace.ResetForTheme("   ", nil))
	})
}

func TestWorkspaceAppendUserMessage(t *testing.T) {
	t.Run("blank text appends nothing", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))

		_, err := workspace.AppendUserMessage("  \n ")
		assert.Error(t, err)
		assert.Empty(t, workspace.Messages())
	})

	t.Run("turn computed from post-append position", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.ResetForTheme("HTTP", nil))

		msg, err := workspace.AppendUserMessage("first")
		require.NoError(t, err)
		assert.Equal(t, 1, msg.Turn)

		reply := workspace.AppendAssistantReply("reply")
		assert.Equal(t, 1, reply.Turn)

		msg, err = workspace.AppendUserMessage("second")
		require.NoError(t, err)
		assert.Equal(t, 2, msg.Turn)
	})
}

func TestWorkspaceMapInteraction(t *testing.T) {
	t.Run("clicking a parent expands it", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.SelectNode("n1", testMap()))

		assert.Equal(t, "n1", workspace.SelectedNodeID())
		assert.True(t, workspace.ExpandedNodes()["n1"])
	})

	t.Run("clicking a leaf selects without expanding", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.SelectNode("n7", testMap()))

		assert.Equal(t, "n7", workspace.SelectedNodeID())
		assert.False(t, workspace.ExpandedNodes()["n7"])
	})

	t.Run("expansion is monotonic and idempotent", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		m := testMap()

		require.NoError(t, workspace.SelectNode("n1", m))
		require.NoError(t, workspace.SelectNode("n7", m))
		require.NoError(t, workspace.SelectNode("n1", m))

		expanded := workspace.ExpandedNodes()
		assert.True(t, expanded["n1"])
		assert.True(t, expanded[valueobjects.CenterID])
		assert.Len(t, expanded, 2)
	})

	t.Run("unknown node is rejected", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		assert.Error(t, workspace.SelectNode("missing", testMap()))
	})

	t.Run("reset collapses but keeps selection", func(t *testing.T) {
		workspace := newTestWorkspace(t)
		require.NoError(t, workspace.SelectNode("n1", testMap()))

		workspace.ResetExpansion()

		assert.Equal(t, map[string]bool{valueobjects.CenterID: true}, workspace.ExpandedNodes())
		assert.Equal(t, "n1", workspace.SelectedNodeID())
	})
}

func TestWorkspaceRestore(t *testing.T) {
	workspace := newTestWorkspace(t)
	require.NoError(t, workspace.ResetForTheme("HTTP", nil))
	for i := 1; i <= 3; i++ {
		exchange(t, workspace, i)
	}
	_, err := workspace.BeginAnalysis()
	require.NoError(t, err)
	workspace.CompleteAnalysis()

	restored := []valueobjects.ChatMessage{
		{Role: valueobjects.RoleUser, Text: "old", Turn: 1},
		{Role: valueobjects.RoleAssistant, Text: "old reply", Turn: 1},
	}
	workspace.Restore("DNS", restored)

	assert.Equal(t, "DNS", workspace.Theme())
	assert.Len(t, workspace.Messages(), 2)
	// The restored conversation can be analyzed again once long enough
	assert.False(t, workspace.IsAnalyzed())
}
