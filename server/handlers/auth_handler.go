package handlers

import (
	"net/http"
	"time"

	"holidaze/models"
	services "holidaze/service"
)

// LoginResponse tells the browser who is logged in. The access token stays
// on the server.
type LoginResponse struct {
	SessionID    string    `json:"sessionId"`
	UserName     string    `json:"userName"`
	VenueManager bool      `json:"venueManager"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type AuthHandler struct {
	authService *services.AuthService
	secure      bool
}

// NewAuthHandler builds the auth endpoints. secureCookies marks the session
// cookie Secure, which production over HTTPS needs.
func NewAuthHandler(authService *services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secure: secureCookies}
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form models.RegisterForm
	if !decodeJSON(w, r, &form) {
		return
	}
	p, err := h.authService.Register(r.Context(), form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form models.LoginForm
	if !decodeJSON(w, r, &form) {
		return
	}
	sess, err := h.authService.Login(r.Context(), form)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, LoginResponse{
		SessionID:    sess.ID,
		UserName:     sess.UserName,
		VenueManager: sess.VenueManager,
		ExpiresAt:    sess.ExpiresAt,
	})
}

// Logout handles POST /v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), SessionID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
