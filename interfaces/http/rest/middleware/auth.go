package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"teachback-backend/pkg/auth"
	"teachback-backend/pkg/common"
)

// Authenticate validates the Bearer token, applies the per-user rate
// limit and places the user in the request context
func Authenticate(validator *auth.JWTValidator, limiter *auth.UserRateLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "missing bearer token")
				return
			}

			claims, err := validator.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "invalid token")
				return
			}

			if !limiter.Allow(claims.UserID) {
				common.RespondError(w, http.StatusTooManyRequests,
					common.StandardErrorCodes.TooManyRequests, "rate limit exceeded")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				UserID: claims.UserID,
				Name:   claims.Name,
			})
			ctx = common.WithUserID(ctx, claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
