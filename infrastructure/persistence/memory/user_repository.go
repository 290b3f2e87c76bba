package memory

import (
	"context"
	"strings"
	"sync"

	"teachback-backend/domain/core/entities"
	pkgerrors "teachback-backend/pkg/errors"
)

// UserRepository keeps registered accounts in memory
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

// Create stores a new user. Emails are unique.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user == nil {
		return pkgerrors.NewValidationError("user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email()]; exists {
		return pkgerrors.NewConflictError("email already registered")
	}

	r.byID[user.ID()] = user
	r.byEmail[user.Email()] = user
	return nil
}

// FindByEmail returns the user or a NotFound error
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return user, nil
}

// FindByID returns the user or a NotFound error
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return user, nil
}
