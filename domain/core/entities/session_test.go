package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teachback-backend/domain/core/valueobjects"
)

func testMessages() []valueobjects.ChatMessage {
	return []valueobjects.ChatMessage{
		{Role: valueobjects.RoleUser, Text: "HTTP is a protocol", Turn: 1},
		{Role: valueobjects.RoleAssistant, Text: "tell me more", Turn: 1},
	}
}

func testWeakPoints() []valueobjects.WeakPoint {
	return []valueobjects.WeakPoint{
		{ID: "wp_stateless", Concept: "Statelessness", Status: valueobjects.StatusWeak, RelatedTurns: []int{2, 3}, AiLevel: valueobjects.AiLevelCritical, StudyStatus: valueobjects.StudyTodo},
		{ID: "wp_cookie", Concept: "Cookies", Status: valueobjects.StatusVague, RelatedTurns: []int{3}, AiLevel: valueobjects.AiLevelWeak, StudyStatus: valueobjects.StudyTodo},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	session, err := NewSession("sess-1", "user-1", "HTTP", time.Now(), testMessages(), testWeakPoints(), testMap())
	require.NoError(t, err)
	return session
}

func TestNewSession(t *testing.T) {
	t.Run("namespaces weak point ids with the session id", func(t *testing.T) {
		session := newTestSession(t)

		points := session.WeakPoints()
		require.Len(t, points, 2)
		assert.Equal(t, "sess-1:wp_stateless", points[0].ID)
		assert.Equal(t, "sess-1:wp_cookie", points[1].ID)
	})

	t.Run("rejects duplicate weak point ids", func(t *testing.T) {
		dup := []valueobjects.WeakPoint{
			{ID: "wp_x", Concept: "a"},
			{ID: "wp_x", Concept: "b"},
		}
		_, err := NewSession("sess-1", "user-1", "HTTP", time.Now(), testMessages(), dup, testMap())
		assert.Error(t, err)
	})

	t.Run("rejects empty conversation", func(t *testing.T) {
		_, err := NewSession("sess-1", "user-1", "HTTP", time.Now(), nil, nil, testMap())
		assert.Error(t, err)
	})

	t.Run("rejects dangling parent references", func(t *testing.T) {
		bad := testMap()
		bad.Nodes = append(bad.Nodes, valueobjects.UnderstandingNode{
			ID:        "n9",
			RelatedTo: []string{"missing"},
		})
		_, err := NewSession("sess-1", "user-1", "HTTP", time.Now(), testMessages(), nil, bad)
		assert.Error(t, err)
	})

	t.Run("emits a created event", func(t *testing.T) {
		session := newTestSession(t)
		events := session.GetUncommittedEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "session.created", events[0].GetEventType())
	})
}

func TestSessionImmutability(t *testing.T) {
	session := newTestSession(t)

	t.Run("returned messages are copies", func(t *testing.T) {
		messages := session.Messages()
		messages[0].Text = "mutated"
		assert.Equal(t, "HTTP is a protocol", session.Messages()[0].Text)
	})

	t.Run("returned map is a copy", func(t *testing.T) {
		m := session.Map()
		m.Nodes[0].Concept = "mutated"
		assert.Equal(t, "Request / Response", session.Map().Nodes[0].Concept)
	})
}

func TestUpdateWeakPointStatus(t *testing.T) {
	t.Run("moves only the study status", func(t *testing.T) {
		session := newTestSession(t)
		before := session.WeakPoints()[0]

		found, err := session.UpdateWeakPointStatus("sess-1:wp_stateless", valueobjects.StudyDoing)
		require.NoError(t, err)
		assert.True(t, found)

		after := session.WeakPoints()[0]
		assert.Equal(t, valueobjects.StudyDoing, after.StudyStatus)
		assert.Equal(t, before.Concept, after.Concept)
		assert.Equal(t, before.AiLevel, after.AiLevel)
		assert.Equal(t, before.RelatedTurns, after.RelatedTurns)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		session := newTestSession(t)
		found, err := session.UpdateWeakPointStatus("sess-1:nope", valueobjects.StudyDone)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		session := newTestSession(t)
		_, err := session.UpdateWeakPointStatus("sess-1:wp_cookie", valueobjects.StudyStatus("paused"))
		assert.Error(t, err)
	})
}

func TestActiveWeakPoints(t *testing.T) {
	session := newTestSession(t)

	_, err := session.UpdateWeakPointStatus("sess-1:wp_cookie", valueobjects.StudyDone)
	require.NoError(t, err)

	active := session.ActiveWeakPoints()
	require.Len(t, active, 1)
	assert.Equal(t, "sess-1:wp_stateless", active[0].ID)
}
