package events

import (
	"time"

	"teachback-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Session Events

// SessionCreated is raised when an analyzed conversation is frozen into
// a session record
type SessionCreated struct {
	BaseEvent
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Theme     string `json:"theme"`
	NodeCount int    `json:"node_count"`
}

// NewSessionCreated creates a SessionCreated event
func NewSessionCreated(sessionID, userID, theme string, nodeCount int, timestamp time.Time) SessionCreated {
	return SessionCreated{
		BaseEvent: BaseEvent{
			AggregateID: sessionID,
			EventType:   "session.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		SessionID: sessionID,
		UserID:    userID,
		Theme:     theme,
		NodeCount: nodeCount,
	}
}

// WeakPointStatusUpdated is raised when the user triages a weak point
type WeakPointStatusUpdated struct {
	BaseEvent
	SessionID   string                   `json:"session_id"`
	WeakPointID string                   `json:"weak_point_id"`
	OldStatus   valueobjects.StudyStatus `json:"old_status"`
	NewStatus   valueobjects.StudyStatus `json:"new_status"`
}

// NewWeakPointStatusUpdated creates a WeakPointStatusUpdated event
func NewWeakPointStatusUpdated(sessionID, weakPointID string, oldStatus, newStatus valueobjects.StudyStatus, timestamp time.Time) WeakPointStatusUpdated {
	return WeakPointStatusUpdated{
		BaseEvent: BaseEvent{
			AggregateID: sessionID,
			EventType:   "session.weak_point_status_updated",
			Timestamp:   timestamp,
			Version:     1,
		},
		SessionID:   sessionID,
		WeakPointID: weakPointID,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
	}
}
