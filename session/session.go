// Package session holds the identity of a logged-in user. A Session is passed
// explicitly to everything that talks to the remote API on the user's behalf.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"holidaze/models"
)

// Session is the BFF-side record of one login.
type Session struct {
	ID           string    `json:"id"`
	Token        string    `json:"token"`
	UserName     string    `json:"userName"`
	VenueManager bool      `json:"venueManager"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// New builds a session for a successful login. The expiry is taken from the
// token's exp claim when present, else now+ttl. The token signature is not
// checked here; the remote API does that on every call.
func New(token, userName string, venueManager bool, now time.Time, ttl time.Duration) (*Session, error) {
	if token == "" {
		return nil, models.ErrMissingToken
	}
	if userName == "" {
		return nil, models.ErrMissingUserName
	}

	expires := now.Add(ttl)
	if exp, ok := tokenExpiry(token); ok && exp.Before(expires) {
		expires = exp
	}

	return &Session{
		ID:           uuid.NewString(),
		Token:        token,
		UserName:     userName,
		VenueManager: venueManager,
		CreatedAt:    now,
		ExpiresAt:    expires,
	}, nil
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TTL is the remaining lifetime at now, never negative.
func (s *Session) TTL(now time.Time) time.Duration {
	if d := s.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// IsOwner reports whether name is the logged-in user.
func (s *Session) IsOwner(name string) bool {
	return s != nil && s.UserName != "" && s.UserName == name
}
