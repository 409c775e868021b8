package handlers

import (
	"net/http"

	services "holidaze/service"
	"holidaze/session"
	"holidaze/util"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "holidaze_session"
)

// Sessions resolves the caller's session from the request.
type Sessions struct {
	authService *services.AuthService
}

func NewSessions(authService *services.AuthService) *Sessions {
	return &Sessions{authService: authService}
}

// SessionID reads the session id from the header, falling back to the cookie.
func SessionID(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// Optional returns the caller's session, or nil for anonymous callers.
func (s *Sessions) Optional(r *http.Request) *session.Session {
	id := SessionID(r)
	if id == "" {
		return nil
	}
	sess, err := s.authService.Resolve(r.Context(), id)
	if err != nil {
		if !services.IsAuthError(err) {
			util.GetLogger().Warnf("[Sessions] Could not resolve session: %v", err)
		}
		return nil
	}
	return sess
}

// Require returns the caller's session or writes 401.
func (s *Sessions) Require(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess := s.Optional(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "You are not logged in. Please log in to continue.")
		return nil, false
	}
	return sess, true
}
