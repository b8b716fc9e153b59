// internal/api/handler/auth.go
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"expenselog/internal/domain"
	"expenselog/internal/service"
	"expenselog/internal/util"
)

// Context key type to avoid collisions.
type contextKey string

const (
	// UserContextKey is the context key for the authenticated user.
	UserContextKey contextKey = "user"
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "session"
)

// AuthHandler handles HTTP requests for signup, login and logout.
type AuthHandler struct {
	service      service.AuthService
	logger       *slog.Logger
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		logger:       logger,
		secureCookie: secureCookie,
	}
}

// GetUserFromContext retrieves the authenticated user from request context.
func GetUserFromContext(r *http.Request) *domain.User {
	if user, ok := r.Context().Value(UserContextKey).(*domain.User); ok {
		return user
	}
	return nil
}

// RequireAuth wraps handlers to require a valid session cookie.
// The resolved user is stored in the request context for downstream use.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			respondWithError(h.logger, w, util.ErrInvalidCredentials)
			return
		}

		user, err := h.service.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if util.IsError(err, util.ErrInvalidCredentials) {
				h.clearSessionCookie(w)
			}
			respondWithError(h.logger, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CredentialsRequest represents the request body for signup and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Password string `json:"password"`
}

// Signup handles the user registration request.
// POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.Signup(r.Context(), req.Username, req.Fullname, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, user)
}

// Login handles the login request and sets the session cookie.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(h.logger, w, http.StatusOK, user)
}

// Logout handles the logout request and clears the session cookie.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			respondWithError(h.logger, w, err)
			return
		}
	}
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
