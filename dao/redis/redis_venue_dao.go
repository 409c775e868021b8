package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"holidaze/db"
	"holidaze/models/venue"
	"holidaze/util"
)

// VENUES_SNAPSHOT_KEY_V1 holds the whole newest-first venue catalog.
const VENUES_SNAPSHOT_KEY_V1 = "venues_snapshot_v1"

// VenuesSnapshot is the cached venue catalog and when it was fetched.
type VenuesSnapshot struct {
	FetchedAt time.Time     `json:"fetchedAt"`
	Venues    []venue.Venue `json:"venues"`
}

// RedisVenueDAO caches the venue catalog in Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// SaveSnapshot replaces the cached catalog. It expires after ttl.
func (dao *RedisVenueDAO) SaveSnapshot(ctx context.Context, venues []venue.Venue, fetchedAt time.Time, ttl time.Duration) error {
	data, err := json.Marshal(VenuesSnapshot{FetchedAt: fetchedAt, Venues: venues})
	if err != nil {
		return fmt.Errorf("failed to marshal venues snapshot: %w", err)
	}
	if err := dao.client.Set(ctx, VENUES_SNAPSHOT_KEY_V1, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set venues snapshot in redis: %w", err)
	}
	util.GetLogger().Debugf("[RedisVenueDAO] Stored snapshot of %d venues", len(venues))
	return nil
}

// GetSnapshot returns the cached catalog, or nil on a cache miss.
func (dao *RedisVenueDAO) GetSnapshot(ctx context.Context) (*VenuesSnapshot, error) {
	str, err := dao.client.Get(ctx, VENUES_SNAPSHOT_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venues snapshot from redis: %w", err)
	}
	var s VenuesSnapshot
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues snapshot JSON: %w", err)
	}
	return &s, nil
}

// InvalidateSnapshot drops the cached catalog so the next read goes live.
func (dao *RedisVenueDAO) InvalidateSnapshot(ctx context.Context) error {
	if err := dao.client.Del(ctx, VENUES_SNAPSHOT_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete venues snapshot: %w", err)
	}
	util.GetLogger().Debugf("[RedisVenueDAO] Invalidated venues snapshot")
	return nil
}
