package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestLoginAttemptRepositoryImpl_Record(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewLoginAttemptRepository(client)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := repo.Record(ctx, "user@example.com", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestLoginAttemptRepositoryImpl_RecordIsPerEmail(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewLoginAttemptRepository(client)
	ctx := context.Background()

	_, err := repo.Record(ctx, "a@example.com", 15*time.Minute)
	require.NoError(t, err)

	count, err := repo.Record(ctx, "b@example.com", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "counters must be independent per email")
}

func TestLoginAttemptRepositoryImpl_WindowExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewLoginAttemptRepository(client)
	ctx := context.Background()

	_, err := repo.Record(ctx, "user@example.com", time.Minute)
	require.NoError(t, err)
	_, err = repo.Record(ctx, "user@example.com", time.Minute)
	require.NoError(t, err)

	// The window is fixed from the first attempt, not extended by later ones
	mr.FastForward(61 * time.Second)

	count, err := repo.Record(ctx, "user@example.com", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "counter must restart after the window elapses")
}

func TestLoginAttemptRepositoryImpl_Reset(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewLoginAttemptRepository(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Record(ctx, "user@example.com", 15*time.Minute)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Reset(ctx, "user@example.com"))

	count, err := repo.Record(ctx, "user@example.com", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
