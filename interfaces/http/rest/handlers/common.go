package handlers

import (
	"encoding/json"
	"net/http"

	"teachback-backend/pkg/auth"
	"teachback-backend/pkg/common"
)

// writeRaw writes a JSON body without the standard envelope, for
// endpoints whose shape is fixed by the frontend contract
func writeRaw(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// requireUser extracts the authenticated user or writes a 401
func requireUser(w http.ResponseWriter, r *http.Request) (*auth.UserContext, bool) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized,
			common.StandardErrorCodes.Unauthorized, "not authenticated")
		return nil, false
	}
	return user, true
}

// scopeParam reads the ?scope= query parameter, defaulting to "all"
func scopeParam(r *http.Request) string {
	if scope := r.URL.Query().Get("scope"); scope != "" {
		return scope
	}
	return "all"
}
