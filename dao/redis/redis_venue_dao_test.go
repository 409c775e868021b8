package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/db"
	"holidaze/models/venue"
)

func TestRedisVenueDAO_SnapshotRoundTrip(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient()
	dao := NewRedisVenueDAO(mockClient)
	ctx := context.Background()
	fetchedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	venues := []venue.Venue{
		{ID: "v2", Name: "Bergen Cabin", Price: 150, MaxGuests: 6},
		{ID: "v1", Name: "Oslo Loft", Price: 80, MaxGuests: 2},
	}

	// Act
	require.NoError(t, dao.SaveSnapshot(ctx, venues, fetchedAt, time.Minute))
	snapshot, err := dao.GetSnapshot(ctx)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.True(t, fetchedAt.Equal(snapshot.FetchedAt))
	require.Len(t, snapshot.Venues, 2)
	assert.Equal(t, "Bergen Cabin", snapshot.Venues[0].Name)

	stored, err := mockClient.Get(ctx, VENUES_SNAPSHOT_KEY_V1)
	require.NoError(t, err)
	assert.Contains(t, stored, `"Oslo Loft"`)
}

func TestRedisVenueDAO_GetSnapshot_Miss(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient())

	snapshot, err := dao.GetSnapshot(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestRedisVenueDAO_GetSnapshot_Expired(t *testing.T) {
	now := time.Now()
	mockClient := db.NewMockRedisClient()
	mockClient.SetClock(func() time.Time { return now })
	dao := NewRedisVenueDAO(mockClient)
	ctx := context.Background()

	require.NoError(t, dao.SaveSnapshot(ctx, []venue.Venue{{ID: "v1"}}, now, time.Minute))
	now = now.Add(2 * time.Minute)

	snapshot, err := dao.GetSnapshot(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestRedisVenueDAO_GetSnapshot_Corrupt(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	dao := NewRedisVenueDAO(mockClient)
	ctx := context.Background()
	require.NoError(t, mockClient.Set(ctx, VENUES_SNAPSHOT_KEY_V1, "{not json", 0))

	_, err := dao.GetSnapshot(ctx)

	assert.ErrorContains(t, err, "failed to unmarshal venues snapshot JSON")
}

func TestRedisVenueDAO_InvalidateSnapshot(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient())
	ctx := context.Background()
	require.NoError(t, dao.SaveSnapshot(ctx, []venue.Venue{{ID: "v1"}}, time.Now(), 0))

	require.NoError(t, dao.InvalidateSnapshot(ctx))

	snapshot, err := dao.GetSnapshot(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}
