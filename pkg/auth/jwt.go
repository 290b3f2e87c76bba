package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgerrors "teachback-backend/pkg/errors"
)

const (
	tokenIssuer   = "teachback-backend"
	tokenAudience = "teachback-api"
)

// Claims represents the JWT claims for an authenticated user
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTGenerator issues signed tokens for authenticated users
type JWTGenerator struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTGenerator creates a token generator
func NewJWTGenerator(secret string, ttl time.Duration) *JWTGenerator {
	return &JWTGenerator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate creates a signed token for the user
func (g *JWTGenerator) Generate(userID, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// JWTValidator verifies tokens presented by clients
type JWTValidator struct {
	secret []byte
}

// NewJWTValidator creates a token validator
func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

// Validate parses and verifies a token, returning its claims
func (v *JWTValidator) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, pkgerrors.NewUnauthorizedError("unexpected signing method")
		}
		return v.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)
	if err != nil {
		return nil, pkgerrors.NewUnauthorizedError("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, pkgerrors.NewUnauthorizedError("invalid token claims")
	}
	return claims, nil
}

// UserContext carries the authenticated user through request handling
type UserContext struct {
	UserID string
	Name   string
}

type contextKey string

const userContextKey contextKey = "auth_user"

// SetUserInContext stores the authenticated user in the context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}
