// Package memory provides in-memory repository implementations. They
// are the default store and the fixtures for tests.
package memory

import (
	"context"
	"sync"

	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
	pkgerrors "teachback-backend/pkg/errors"
)

// SessionRepository keeps each user's sessions in memory, newest first.
// Sessions go in and come out as deep copies: the lock guards the
// stored instances, and no pointer to them ever escapes it.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string][]*entities.Session
}

// NewSessionRepository creates an empty session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string][]*entities.Session),
	}
}

// AddSession prepends the session to its owner's list
func (r *SessionRepository) AddSession(ctx context.Context, session *entities.Session) error {
	if session == nil {
		return pkgerrors.NewValidationError("session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	userID := session.UserID()
	for _, existing := range r.sessions[userID] {
		if existing.ID() == session.ID() {
			return pkgerrors.NewConflictError("session already exists: " + session.ID())
		}
	}

	r.sessions[userID] = append([]*entities.Session{session.Clone()}, r.sessions[userID]...)
	session.MarkEventsAsCommitted()
	return nil
}

// ListByUser returns the user's sessions, newest first
func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entities.Session, len(r.sessions[userID]))
	for i, session := range r.sessions[userID] {
		list[i] = session.Clone()
	}
	return list, nil
}

// FindByID returns the session or a NotFound error
func (r *SessionRepository) FindByID(ctx context.Context, userID, sessionID string) (*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions[userID] {
		if session.ID() == sessionID {
			return session.Clone(), nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("session")
}

// UpdateWeakPointStatus applies the status to every matching weak point
// across all of the user's sessions
func (r *SessionRepository) UpdateWeakPointStatus(ctx context.Context, userID, weakPointID string, status valueobjects.StudyStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, session := range r.sessions[userID] {
		ok, err := session.UpdateWeakPointStatus(weakPointID, status)
		if err != nil {
			return err
		}
		if ok {
			// The write is the commit for the stored instance
			session.MarkEventsAsCommitted()
			found = true
		}
	}

	if !found {
		return pkgerrors.NewNotFoundError("weak point")
	}
	return nil
}
