package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const targetKeyPrefix = "arkpid:target:"

// TargetCache caches resolved redirect targets in redis. Backend failures
// are logged and reported as misses; resolution must keep working without
// the cache.
type TargetCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTargetCache(redisClient *redis.Client, ttl time.Duration) *TargetCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &TargetCache{
		rdb: redisClient,
		ttl: ttl,
	}
}

func (c *TargetCache) Get(ctx context.Context, identifier string) (string, bool) {
	target, err := c.rdb.Get(ctx, targetKeyPrefix+identifier).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("target cache get failed", "identifier", identifier, "error", err)
		return "", false
	}
	return target, true
}

func (c *TargetCache) Set(ctx context.Context, identifier, target string) {
	if err := c.rdb.Set(ctx, targetKeyPrefix+identifier, target, c.ttl).Err(); err != nil {
		slog.Warn("target cache set failed", "identifier", identifier, "error", err)
	}
}

func (c *TargetCache) Invalidate(ctx context.Context, identifier string) {
	if err := c.rdb.Del(ctx, targetKeyPrefix+identifier).Err(); err != nil {
		slog.Warn("target cache invalidate failed", "identifier", identifier, "error", err)
	}
}
