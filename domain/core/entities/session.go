package entities

import (
	"fmt"
	"time"

	"teachback-backend/domain/core/valueobjects"
	"teachback-backend/domain/events"
	pkgerrors "teachback-backend/pkg/errors"
)

// Session is a frozen record of one completed teaching conversation
// plus its derived weak-point list and understanding map.
// This is a rich domain model with encapsulated business logic.
type Session struct {
	// Private fields ensure encapsulation
	id         string
	userID     string
	theme      string
	createdAt  time.Time
	messages   []valueobjects.ChatMessage
	weakPoints []valueobjects.WeakPoint
	mapData    valueobjects.UnderstandingMap

	// Domain events that occurred during this aggregate's lifetime
	events []events.DomainEvent
}

// NewSession freezes a conversation snapshot and its analysis output
// into a session record. Weak-point ids issued by the analysis provider
// are namespaced with the session id so they stay unique across the
// whole repository.
func NewSession(
	id string,
	userID string,
	theme string,
	createdAt time.Time,
	messages []valueobjects.ChatMessage,
	weakPoints []valueobjects.WeakPoint,
	mapData valueobjects.UnderstandingMap,
) (*Session, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("session id cannot be empty")
	}
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if len(messages) == 0 {
		return nil, pkgerrors.NewValidationError("session conversation cannot be empty")
	}
	if err := validateMap(mapData); err != nil {
		return nil, err
	}

	frozen := make([]valueobjects.ChatMessage, len(messages))
	copy(frozen, messages)

	points := make([]valueobjects.WeakPoint, len(weakPoints))
	seen := make(map[string]bool, len(weakPoints))
	for i, wp := range weakPoints {
		wp = wp.Clone()
		// Colon keeps the namespaced id usable as a URL path segment
		wp.ID = fmt.Sprintf("%s:%s", id, wp.ID)
		if seen[wp.ID] {
			return nil, pkgerrors.NewConflictError("duplicate weak point id: " + wp.ID)
		}
		seen[wp.ID] = true
		points[i] = wp
	}

	session := &Session{
		id:         id,
		userID:     userID,
		theme:      theme,
		createdAt:  createdAt,
		messages:   frozen,
		weakPoints: points,
		mapData:    mapData.Clone(),
		events:     []events.DomainEvent{},
	}

	session.addEvent(events.NewSessionCreated(id, userID, theme, len(mapData.Nodes), createdAt))

	return session, nil
}

// ReconstructSession rebuilds a session from repository data. Weak-point
// ids are taken as stored, already namespaced.
func ReconstructSession(
	id string,
	userID string,
	theme string,
	createdAt time.Time,
	messages []valueobjects.ChatMessage,
	weakPoints []valueobjects.WeakPoint,
	mapData valueobjects.UnderstandingMap,
) (*Session, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("session id cannot be empty")
	}
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}

	return &Session{
		id:         id,
		userID:     userID,
		theme:      theme,
		createdAt:  createdAt,
		messages:   messages,
		weakPoints: weakPoints,
		mapData:    mapData,
		events:     []events.DomainEvent{},
	}, nil
}

// ID returns the session's unique identifier
func (s *Session) ID() string {
	return s.id
}

// UserID returns the owner's ID
func (s *Session) UserID() string {
	return s.userID
}

// Theme returns the concept the user was explaining
func (s *Session) Theme() string {
	return s.theme
}

// CreatedAt returns when the analysis completed
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Messages returns the frozen conversation
func (s *Session) Messages() []valueobjects.ChatMessage {
	// Return a copy to maintain encapsulation
	messages := make([]valueobjects.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// WeakPoints returns the analyzed weak points
func (s *Session) WeakPoints() []valueobjects.WeakPoint {
	points := make([]valueobjects.WeakPoint, len(s.weakPoints))
	for i, wp := range s.weakPoints {
		points[i] = wp.Clone()
	}
	return points
}

// ActiveWeakPoints returns the weak points the user has not marked done
func (s *Session) ActiveWeakPoints() []valueobjects.WeakPoint {
	points := []valueobjects.WeakPoint{}
	for _, wp := range s.weakPoints {
		if wp.StudyStatus != valueobjects.StudyDone {
			points = append(points, wp.Clone())
		}
	}
	return points
}

// Map returns the understanding map
func (s *Session) Map() valueobjects.UnderstandingMap {
	return s.mapData.Clone()
}

// Clone returns a deep copy of the session with no pending events.
// Repositories store and hand out clones so callers never share
// mutable state with the store.
func (s *Session) Clone() *Session {
	messages := make([]valueobjects.ChatMessage, len(s.messages))
	copy(messages, s.messages)

	points := make([]valueobjects.WeakPoint, len(s.weakPoints))
	for i, wp := range s.weakPoints {
		points[i] = wp.Clone()
	}

	return &Session{
		id:         s.id,
		userID:     s.userID,
		theme:      s.theme,
		createdAt:  s.createdAt,
		messages:   messages,
		weakPoints: points,
		mapData:    s.mapData.Clone(),
		events:     []events.DomainEvent{},
	}
}

// UpdateWeakPointStatus changes the triage status of a weak point. Only
// the study status moves; every other field stays frozen. It reports
// whether the id was found in this session.
func (s *Session) UpdateWeakPointStatus(weakPointID string, newStatus valueobjects.StudyStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, pkgerrors.NewValidationError("unknown study status: " + string(newStatus))
	}

	for i := range s.weakPoints {
		if s.weakPoints[i].ID != weakPointID {
			continue
		}

		oldStatus := s.weakPoints[i].StudyStatus
		if oldStatus == newStatus {
			return true, nil // No change needed
		}

		s.weakPoints[i].StudyStatus = newStatus
		s.addEvent(events.NewWeakPointStatusUpdated(s.id, weakPointID, oldStatus, newStatus, time.Now()))
		return true, nil
	}

	return false, nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (s *Session) GetUncommittedEvents() []events.DomainEvent {
	return s.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (s *Session) MarkEventsAsCommitted() {
	s.events = []events.DomainEvent{}
}

// addEvent adds a domain event to the uncommitted list
func (s *Session) addEvent(event events.DomainEvent) {
	s.events = append(s.events, event)
}

// validateMap checks that every parent reference resolves to the center
// or to another node in the same map.
func validateMap(m valueobjects.UnderstandingMap) error {
	known := make(map[string]bool, len(m.Nodes)+1)
	known[valueobjects.CenterID] = true
	for _, n := range m.Nodes {
		known[n.ID] = true
	}
	for _, n := range m.Nodes {
		for _, parent := range n.RelatedTo {
			if !known[parent] {
				return pkgerrors.NewValidationError(
					fmt.Sprintf("node %s references unknown parent %s", n.ID, parent))
			}
		}
	}
	return nil
}
