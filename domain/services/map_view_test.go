package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
)

func radialMap() valueobjects.UnderstandingMap {
	return valueobjects.UnderstandingMap{
		Center: valueobjects.NewPlaceholderCenter("HTTP"),
		Nodes: []valueobjects.UnderstandingNode{
			{ID: "n1", Concept: "Request / Response", X: 50, Y: 22, RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n2", Concept: "Statelessness", X: 72, Y: 32, RelatedTo: []string{valueobjects.CenterID}},
			{ID: "n7", Concept: "Idempotency", X: 28, Y: 32, RelatedTo: []string{"n1"}},
			{ID: "n8", Concept: "REST APIs", X: 50, Y: 8, RelatedTo: []string{"n1"}},
		},
	}
}

func sessionWithMap(t *testing.T, id string, m valueobjects.UnderstandingMap) *entities.Session {
	t.Helper()
	messages := []valueobjects.ChatMessage{
		{Role: valueobjects.RoleUser, Text: "hello", Turn: 1},
	}
	session, err := entities.NewSession(id, "user-1", "HTTP", time.Now(), messages, nil, m)
	require.NoError(t, err)
	return session
}

func TestVisibleNodes(t *testing.T) {
	svc := NewMapViewService()
	m := radialMap()

	t.Run("only center expanded shows first ring", func(t *testing.T) {
		visible := svc.VisibleNodes(m, map[string]bool{valueobjects.CenterID: true})

		ids := make([]string, len(visible))
		for i, n := range visible {
			ids[i] = n.ID
		}
		assert.ElementsMatch(t, []string{"n1", "n2"}, ids)
	})

	t.Run("expanding a node reveals its children", func(t *testing.T) {
		expanded := map[string]bool{valueobjects.CenterID: true, "n1": true}
		visible := svc.VisibleNodes(m, expanded)
		assert.Len(t, visible, 4)
	})

	t.Run("nothing expanded hides everything", func(t *testing.T) {
		visible := svc.VisibleNodes(m, map[string]bool{})
		assert.Empty(t, visible)
	})
}

func TestConnectors(t *testing.T) {
	svc := NewMapViewService()
	m := radialMap()

	t.Run("edges only reach expanded parents", func(t *testing.T) {
		expanded := map[string]bool{valueobjects.CenterID: true, "n1": true}
		connectors := svc.Connectors(m, expanded)

		// n1 and n2 hang off the center, n7 and n8 off n1
		require.Len(t, connectors, 4)
		for _, c := range connectors {
			assert.True(t, expanded[c.FromID], "edge from unexpanded parent %s", c.FromID)
		}
	})

	t.Run("hidden children contribute no edges", func(t *testing.T) {
		connectors := svc.Connectors(m, map[string]bool{valueobjects.CenterID: true})
		assert.Len(t, connectors, 2)
	})

	t.Run("edge endpoints carry node coordinates", func(t *testing.T) {
		connectors := svc.Connectors(m, map[string]bool{valueobjects.CenterID: true})
		for _, c := range connectors {
			parent, ok := m.ParentOf(c.FromID)
			require.True(t, ok)
			assert.Equal(t, parent.X, c.FromX)
			assert.Equal(t, parent.Y, c.FromY)
		}
	})
}

func TestMerge(t *testing.T) {
	svc := NewMapViewService()

	t.Run("no sessions yields placeholder center", func(t *testing.T) {
		merged := svc.Merge(nil, "Not analyzed yet")
		assert.Equal(t, "Not analyzed yet", merged.Center.Concept)
		assert.Empty(t, merged.Nodes)
	})

	t.Run("center comes from the first session", func(t *testing.T) {
		first := sessionWithMap(t, "sess-1", radialMap())

		other := radialMap()
		other.Center.Concept = "TCP"
		second := sessionWithMap(t, "sess-2", other)

		merged := svc.Merge([]*entities.Session{first, second}, "")
		assert.Equal(t, "HTTP", merged.Center.Concept)
	})

	t.Run("concatenates without deduplication", func(t *testing.T) {
		first := sessionWithMap(t, "sess-1", radialMap())
		second := sessionWithMap(t, "sess-2", radialMap())

		merged := svc.Merge([]*entities.Session{first, second}, "")

		// Identical node ids appear twice; subtrees stay independent
		assert.Len(t, merged.Nodes, 8)
		count := 0
		for _, n := range merged.Nodes {
			if n.ID == "n1" {
				count++
			}
		}
		assert.Equal(t, 2, count)
	})
}
