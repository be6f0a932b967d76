// File: services/feed/cache.go
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"craftlink/models"

	"github.com/go-redis/redis/v8"
)

// FeedCache stores assembled feed pages per user.
type FeedCache interface {
	GetPage(ctx context.Context, userID string, page int) ([]models.Post, bool)
	SetPage(ctx context.Context, userID string, page int, posts []models.Post) error
	Invalidate(ctx context.Context, userID string) error
}

// RedisFeedCache implements FeedCache on Redis with a short TTL, so stale
// pages from connections' writes age out on their own.
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisFeedCache builds a feed cache with the given TTL.
func NewRedisFeedCache(client *redis.Client, ttl time.Duration) FeedCache {
	return &RedisFeedCache{client: client, ttl: ttl}
}

const feedKeyPrefix = "feed:pages:"

func pageKey(userID string, page int) string {
	return fmt.Sprintf("%s%s:%d", feedKeyPrefix, userID, page)
}

// GetPage returns a cached page, reporting whether it was present.
func (c *RedisFeedCache) GetPage(ctx context.Context, userID string, page int) ([]models.Post, bool) {
	val, err := c.client.Get(ctx, pageKey(userID, page)).Result()
	if err != nil {
		return nil, false
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(val), &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// SetPage stores an assembled page.
func (c *RedisFeedCache) SetPage(ctx context.Context, userID string, page int, posts []models.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pageKey(userID, page), data, c.ttl).Err()
}

// Invalidate drops all cached pages for a user.
func (c *RedisFeedCache) Invalidate(ctx context.Context, userID string) error {
	keys, err := c.client.Keys(ctx, feedKeyPrefix+userID+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
