package gateway

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"cruise-booking-api/internal/dal"
)

const tokenKey = "gateway:bearer_token"

// RedisTokenCache shares the gateway bearer token across instances.
type RedisTokenCache struct {
	Client *redis.Client
}

func NewRedisTokenCache() *RedisTokenCache {
	return &RedisTokenCache{Client: dal.RedisClient}
}

func (c *RedisTokenCache) Get(ctx context.Context) (string, bool) {
	if c.Client == nil {
		return "", false
	}
	tok, err := c.Client.Get(ctx, tokenKey).Result()
	if err != nil || tok == "" {
		return "", false
	}
	return tok, true
}

func (c *RedisTokenCache) Set(ctx context.Context, token string, ttl time.Duration) {
	if c.Client == nil {
		return
	}
	// best-effort; an expired cache just forces a re-auth
	_ = c.Client.Set(ctx, tokenKey, token, ttl).Err()
}
