package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BakedBeans3210/limigo/internal/domain"
	"github.com/BakedBeans3210/limigo/internal/logger"

	"github.com/redis/go-redis/v9"
)

const feedKey = "feed:latest"

// NewClient connects to Redis. Returns nil when addr is empty or the ping
// fails, and callers fall back to uncached behavior.
func NewClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, feed cache disabled", "error", err)
		return nil
	}

	logger.Info("redis connected")
	return client
}

// FeedCache keeps the latest-posts feed in Redis for a short TTL.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

// Enabled reports whether a Redis client backs the cache
func (c *FeedCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Ping checks the Redis connection behind the cache
func (c *FeedCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the cached feed, or ok=false on miss or when Redis is not
// configured.
func (c *FeedCache) Get(ctx context.Context) ([]*domain.Post, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		return nil, false
	}

	var posts []*domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// Set stores the feed; errors are ignored, the cache is best-effort
func (c *FeedCache) Set(ctx context.Context, posts []*domain.Post) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, feedKey, raw, c.ttl).Err()
}

// Invalidate drops the cached feed after a new post lands
func (c *FeedCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, feedKey).Err()
}
