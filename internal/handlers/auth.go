package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"arsipku/internal/auth"
	"arsipku/internal/contextutil"
)

// AuthHandler handles sign-in, sign-out and session lookups for the
// single admin credential.
type AuthHandler struct {
	sessions *auth.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *auth.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// SignInRequest is the login payload.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessions.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.WarnContext(ctx, "failed sign-in attempt", "email", req.Email)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.ErrorContext(ctx, "sign-in failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Sign-in failed")
		return
	}

	logger.InfoContext(ctx, "admin signed in", "email", session.Email)
	writeJSON(w, http.StatusOK, session)
}

// SignOut handles POST /api/auth/signout. Always succeeds.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if token := BearerToken(r); token != "" {
		h.sessions.SignOut(token)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session, returning the session for
// the presented bearer token.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := BearerToken(r)
	session, err := h.sessions.Validate(token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "No active session")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// BearerToken extracts the token from an Authorization header. Empty
// when the header is missing or not a bearer scheme.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
