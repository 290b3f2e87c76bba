// Package ports defines the interfaces the application layer depends on.
// Implementations live in infrastructure.
package ports

import (
	"context"

	"teachback-backend/domain/core/entities"
	"teachback-backend/domain/core/valueobjects"
)

// SessionRepository persists frozen, analyzed sessions per user.
// Implementations keep each user's list ordered newest-first.
type SessionRepository interface {
	// AddSession prepends a new session to the user's list
	AddSession(ctx context.Context, session *entities.Session) error

	// ListByUser returns the user's sessions, newest first
	ListByUser(ctx context.Context, userID string) ([]*entities.Session, error)

	// FindByID returns one session or a NotFound error
	FindByID(ctx context.Context, userID, sessionID string) (*entities.Session, error)

	// UpdateWeakPointStatus applies the status to every weak point with
	// the given id across all of the user's sessions. It returns a
	// NotFound error when no session contains the id.
	UpdateWeakPointStatus(ctx context.Context, userID, weakPointID string, status valueobjects.StudyStatus) error
}

// WorkspaceRepository holds each user's live workspace
type WorkspaceRepository interface {
	// GetOrCreate returns the user's workspace, creating it on first use
	GetOrCreate(ctx context.Context, userID string) (*entities.Workspace, error)
}

// UserRepository persists registered accounts
type UserRepository interface {
	// Create stores a new user; duplicate emails yield a Conflict error
	Create(ctx context.Context, user *entities.User) error

	// FindByEmail returns the user or a NotFound error
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByID returns the user or a NotFound error
	FindByID(ctx context.Context, id string) (*entities.User, error)
}

// Cache provides short-lived caching for derived read models
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
