package service

import (
	"context"
	"log"
	"time"

	"cruise-booking-api/internal/dal"
)

// RedisGuard latches a key via SETNX so the same reference cannot enter the
// gateway twice while a first attempt is in flight. Redis trouble fails open;
// the unique index on merchant_ref is the hard stop.
type RedisGuard struct{}

func NewRedisGuard() *RedisGuard { return &RedisGuard{} }

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) bool {
	if dal.RedisClient == nil {
		return true
	}
	ok, err := dal.RedisClient.SetNX(ctx, "guard:"+key, time.Now().Unix(), ttl).Result()
	if err != nil {
		log.Printf("[GUARD] redis setnx failed for %s: %v", key, err)
		return true
	}
	return ok
}
