package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

const linkKeyPrefix = "link:"

var (
	_ port.LinkCache = (*RedisLinkCache)(nil)
	_ port.LinkCache = noopLinkCache{}
)

// RedisLinkCache stores links as JSON under "link:<id>" with a fixed TTL.
type RedisLinkCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewLinkCache returns a Redis backed cache, or one that never hits when rdb
// is nil.
func NewLinkCache(rdb *redis.Client, ttl time.Duration) port.LinkCache {
	if rdb == nil {
		return noopLinkCache{}
	}
	return &RedisLinkCache{rdb: rdb, ttl: ttl}
}

func linkKey(id uuid.UUID) string {
	return linkKeyPrefix + id.String()
}

// Get returns nil, nil on a miss. An entry that fails to decode is dropped
// and reported as a miss.
func (c *RedisLinkCache) Get(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	data, err := c.rdb.Get(ctx, linkKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var link domain.Link
	if err = json.Unmarshal(data, &link); err != nil {
		_ = c.rdb.Del(ctx, linkKey(id)).Err()
		return nil, nil
	}
	return &link, nil
}

func (c *RedisLinkCache) Set(ctx context.Context, link *domain.Link) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	if err = c.rdb.Set(ctx, linkKey(link.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisLinkCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.rdb.Del(ctx, linkKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

type noopLinkCache struct{}

func (noopLinkCache) Get(context.Context, uuid.UUID) (*domain.Link, error) { return nil, nil }
func (noopLinkCache) Set(context.Context, *domain.Link) error              { return nil }
func (noopLinkCache) Invalidate(context.Context, uuid.UUID) error          { return nil }
