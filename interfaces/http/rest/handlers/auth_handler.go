// Package handlers implements the HTTP handlers of the REST interface.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"teachback-backend/application/services"
	"teachback-backend/pkg/auth"
	"teachback-backend/pkg/common"
	pkgerrors "teachback-backend/pkg/errors"
	"teachback-backend/pkg/utils"
)

const maxBodyBytes = 1 << 20

// SignupRequest is the signup payload
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"max=100"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse mirrors the contract the frontend expects
type LoginResponse struct {
	ResponseStatus int    `json:"responseStatus"`
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Token          string `json:"token"`
}

// AuthHandler serves the public auth endpoints
type AuthHandler struct {
	authService *services.AuthService
	ipLimiter   *auth.IPRateLimiter
	errHandler  *pkgerrors.ErrorHandler
	logger      *zap.Logger
}

// NewAuthHandler creates the handler
func NewAuthHandler(authService *services.AuthService, ipLimiter *auth.IPRateLimiter, errHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		ipLimiter:   ipLimiter,
		errHandler:  errHandler,
		logger:      logger,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if !h.ipLimiter.Allow(r.RemoteAddr) {
		common.RespondError(w, http.StatusTooManyRequests,
			common.StandardErrorCodes.TooManyRequests, "too many attempts")
		return
	}

	var req SignupRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	if err := h.authService.Signup(r.Context(), req.Email, req.Password, req.Name); err != nil {
		h.errHandler.Handle(w, r, err)
		return
	}

	writeRaw(w, http.StatusCreated, map[string]int{"responseStatus": 1})
}

// Login handles POST /api/auth/login. Failed credentials return a plain
// 401 text message, which is what the frontend renders directly.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.ipLimiter.Allow(r.RemoteAddr) {
		common.RespondError(w, http.StatusTooManyRequests,
			common.StandardErrorCodes.TooManyRequests, "too many attempts")
		return
	}

	var req LoginRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if pkgerrors.IsUnauthorized(err) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid email or password."))
			return
		}
		h.errHandler.Handle(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, LoginResponse{
		ResponseStatus: 1,
		UserID:         result.UserID,
		Name:           result.Name,
		Token:          result.Token,
	})
}
