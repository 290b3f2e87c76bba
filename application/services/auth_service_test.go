package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teachback-backend/infrastructure/persistence/memory"
	"teachback-backend/pkg/auth"
	pkgerrors "teachback-backend/pkg/errors"
)

func newAuthService() *AuthService {
	return NewAuthService(
		memory.NewUserRepository(),
		auth.NewJWTGenerator("test-secret", time.Hour),
		zap.NewNop(),
	)
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		svc := newAuthService()
		require.NoError(t, svc.Signup(ctx, "alice@example.com", "password123", "Alice"))

		result, err := svc.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Alice", result.Name)
		assert.NotEmpty(t, result.UserID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := newAuthService()
		require.NoError(t, svc.Signup(ctx, "alice@example.com", "password123", ""))

		err := svc.Signup(ctx, "alice@example.com", "password456", "")
		assert.True(t, pkgerrors.IsConflict(err))
	})

	t.Run("short password rejected", func(t *testing.T) {
		svc := newAuthService()
		err := svc.Signup(ctx, "bob@example.com", "short", "")
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		svc := newAuthService()
		require.NoError(t, svc.Signup(ctx, "alice@example.com", "password123", ""))

		_, errWrong := svc.Login(ctx, "alice@example.com", "nope-nope-nope")
		_, errUnknown := svc.Login(ctx, "nobody@example.com", "password123")

		assert.True(t, pkgerrors.IsUnauthorized(errWrong))
		assert.True(t, pkgerrors.IsUnauthorized(errUnknown))
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
	})
}
