//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"snaplink/internal/core/domain"
)

func TestRedisLinkCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	ctx := context.Background()

	container, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewLinkCache(rdb, time.Minute)
	link := &domain.Link{
		ID:            uuid.New(),
		TenantID:      uuid.New(),
		CampaignTitle: "Spring",
		OriginalURL:   "https://example.com/spring",
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	got, err := c.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, link))
	got, err = c.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, link, got)

	ttl, err := rdb.TTL(ctx, linkKey(link.ID)).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	require.NoError(t, c.Invalidate(ctx, link.ID))
	got, err = c.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, rdb.Set(ctx, linkKey(link.ID), "not json", time.Minute).Err())
	got, err = c.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
