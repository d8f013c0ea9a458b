package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaplink/internal/core/domain"
)

func TestNoopCacheWhenRedisDisabled(t *testing.T) {
	c := NewLinkCache(nil, time.Minute)
	ctx := context.Background()
	link := &domain.Link{ID: uuid.New(), OriginalURL: "https://example.com"}

	require.NoError(t, c.Set(ctx, link))
	got, err := c.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, c.Invalidate(ctx, link.ID))
}

func TestLinkKey(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, "link:6ba7b810-9dad-11d1-80b4-00c04fd430c8", linkKey(id))
}
