package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"holidaze/api/holidaze"
	"holidaze/dao/redis"
	"holidaze/models"
	"holidaze/models/profile"
	"holidaze/session"
	"holidaze/util"
)

// AuthService registers users and manages their sessions.
type AuthService struct {
	sessionDao  *redis.RedisSessionDAO
	holidazeApi holidaze.HolidazeAPI
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewAuthService(sessionDao *redis.RedisSessionDAO, holidazeApi holidaze.HolidazeAPI, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		sessionDao:  sessionDao,
		holidazeApi: holidazeApi,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// Register validates the sign-up form and creates the remote profile.
func (as *AuthService) Register(ctx context.Context, form models.RegisterForm) (*profile.Profile, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	p, err := as.holidazeApi.Register(ctx, profile.Registration{
		Name:         strings.TrimSpace(form.Name),
		Email:        strings.TrimSpace(form.Email),
		Password:     form.Password,
		VenueManager: form.VenueManager,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", form.Name, err)
	}
	util.GetLogger().Infof("[AuthService] Registered %s (venue manager: %t)", p.Name, p.VenueManager)
	return p, nil
}

// Login exchanges credentials for a stored session. The remote response must
// carry both an access token and a user name.
func (as *AuthService) Login(ctx context.Context, form models.LoginForm) (*session.Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	creds, err := as.holidazeApi.Login(ctx, profile.Login{
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	now := as.now()
	sess, err := session.New(creds.AccessToken, creds.Name, creds.VenueManager, now, as.sessionTTL)
	if err != nil {
		util.GetLogger().Errorf("[AuthService] Login response unusable: %v", err)
		return nil, err
	}
	if err := as.sessionDao.Save(ctx, sess, sess.TTL(now)); err != nil {
		return nil, err
	}
	util.GetLogger().Infof("[AuthService] %s logged in", sess.UserName)
	return sess, nil
}

// Logout forgets the session. Unknown ids are not an error.
func (as *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return as.sessionDao.Delete(ctx, sessionID)
}

// Resolve returns the live session for sessionID or models.ErrSessionNotFound.
func (as *AuthService) Resolve(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := as.sessionDao.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Expired(as.now()) {
		if err := as.sessionDao.Delete(ctx, sessionID); err != nil {
			util.GetLogger().Warnf("[AuthService] Could not delete expired session: %v", err)
		}
		return nil, models.ErrSessionNotFound
	}
	return sess, nil
}

// Refresh stores a changed session for the rest of its lifetime.
func (as *AuthService) Refresh(ctx context.Context, sess *session.Session) error {
	ttl := sess.TTL(as.now())
	if ttl <= 0 {
		return models.ErrSessionNotFound
	}
	return as.sessionDao.Save(ctx, sess, ttl)
}

// ActiveSessions counts stored sessions.
func (as *AuthService) ActiveSessions(ctx context.Context) (int, error) {
	ids, err := as.sessionDao.ListSessionIDs(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// IsAuthError reports whether err means the caller must log in again.
func IsAuthError(err error) bool {
	return errors.Is(err, models.ErrUnauthenticated) || errors.Is(err, models.ErrSessionNotFound)
}
