package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"holidaze/db"
	"holidaze/models"
	"holidaze/session"
)

const SESSION_KEY_FORMAT_V1 = "session_v1:%s"

// RedisSessionDAO stores logged-in sessions keyed by session id.
type RedisSessionDAO struct {
	client db.RedisClient
}

func NewRedisSessionDAO(client db.RedisClient) *RedisSessionDAO {
	return &RedisSessionDAO{client: client}
}

// Save stores s until ttl elapses.
func (dao *RedisSessionDAO) Save(ctx context.Context, s *session.Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", s.ID, err)
	}
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, s.ID)
	if err := dao.client.Set(ctx, key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

// Get returns the stored session or models.ErrSessionNotFound.
func (dao *RedisSessionDAO) Get(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, models.ErrSessionNotFound
	}
	str, err := dao.client.Get(ctx, fmt.Sprintf(SESSION_KEY_FORMAT_V1, id))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	var s session.Session
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session JSON: %w", err)
	}
	return &s, nil
}

func (dao *RedisSessionDAO) Delete(ctx context.Context, id string) error {
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, id)
	if err := dao.client.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

// ListSessionIDs returns the ids of all stored sessions.
func (dao *RedisSessionDAO) ListSessionIDs(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, fmt.Sprintf(SESSION_KEY_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list session keys: %w", err)
	}
	prefix := fmt.Sprintf(SESSION_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
