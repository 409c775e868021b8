package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/db"
	"holidaze/models"
	"holidaze/session"
)

func TestRedisSessionDAO_SaveGetDelete(t *testing.T) {
	dao := NewRedisSessionDAO(db.NewMockRedisClient())
	ctx := context.Background()
	s := &session.Session{
		ID:        "abc",
		Token:     "tok",
		UserName:  "kari",
		ExpiresAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, dao.Save(ctx, s, time.Hour))

	got, err := dao.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "kari", got.UserName)
	assert.Equal(t, "tok", got.Token)

	ids, err := dao.ListSessionIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, ids)

	require.NoError(t, dao.Delete(ctx, "abc"))
	_, err = dao.Get(ctx, "abc")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestRedisSessionDAO_Get_UnknownOrEmpty(t *testing.T) {
	dao := NewRedisSessionDAO(db.NewMockRedisClient())

	_, err := dao.Get(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	_, err = dao.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}
