// Package services holds application services that sit outside the
// command/query buses.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"teachback-backend/application/ports"
	"teachback-backend/domain/core/entities"
	"teachback-backend/pkg/auth"
	pkgerrors "teachback-backend/pkg/errors"
)

const minPasswordLength = 8

// LoginResult is what a successful login returns to the client
type LoginResult struct {
	UserID string
	Name   string
	Token  string
}

// AuthService implements signup and login on top of the user repository
type AuthService struct {
	users     ports.UserRepository
	generator *auth.JWTGenerator
	logger    *zap.Logger
}

// NewAuthService creates the auth service
func NewAuthService(users ports.UserRepository, generator *auth.JWTGenerator, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		generator: generator,
		logger:    logger,
	}
}

// Signup registers a new account. The password is hashed with bcrypt
// before anything is stored.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) error {
	if len(password) < minPasswordLength {
		return pkgerrors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return pkgerrors.NewInternalError("failed to hash password", err)
	}

	user, err := entities.NewUser(uuid.NewString(), email, name, string(hash), time.Now())
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID()))
	return nil
}

// Login checks credentials and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		return nil, pkgerrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.generator.Generate(user.ID(), user.Name())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID: user.ID(),
		Name:   user.Name(),
		Token:  token,
	}, nil
}
