package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/taskward/taskward/internal/middleware"
	"github.com/taskward/taskward/internal/repository"
	"github.com/taskward/taskward/internal/service"
)

// AuthService defines the account operations required by the HTTP handlers.
type AuthService interface {
	// Signup registers a new user with the given credentials.
	Signup(ctx context.Context, email, password string) error
	// Login verifies credentials and returns the user id.
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionManager defines the session lifecycle operations required by the
// HTTP handlers. Token resolution happens in the auth middleware.
type SessionManager interface {
	// Start issues a session token for the user.
	Start(ctx context.Context, userID string) (string, error)
	// End revokes the token.
	End(ctx context.Context, token string) error
}

// AuthHandler handles signup, login, and logout requests.
type AuthHandler struct {
	// AuthService performs the underlying account operations.
	AuthService AuthService
	// Sessions issues and revokes session tokens.
	Sessions SessionManager
	// SessionTTL bounds the lifetime of the session cookie.
	SessionTTL time.Duration
}

// credentialsRequest is the JSON payload for signup and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/signup. It expects a JSON body with "email" and
// "password" and creates a new account.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.AuthService.Signup(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]string{"message": "User created"})
	case errors.Is(err, service.ErrValidation):
		errorJSON(w, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, repository.ErrDuplicateEmail):
		errorJSON(w, http.StatusBadRequest, "Email already registered")
	default:
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Login handles POST /api/login. On success it issues a session token and
// sets it as an HttpOnly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	userID, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		errorJSON(w, http.StatusBadRequest, "Email and password are required")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		errorJSON(w, http.StatusUnauthorized, "Invalid email or password")
		return
	default:
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.Sessions.Start(r.Context(), userID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.SessionTTL),
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged in"})
}

// Logout handles POST /api/logout. The auth middleware has already resolved
// the session, so the token is known to be valid; revoking it makes every
// later request with this token fail with 401.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.End(r.Context(), middleware.TokenFromRequest(r)); err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
