// File: services/schedule/cache.go
package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// ScheduleCache is a short-lived response cache in front of the schedule
// storage. Misses and cache failures fall through to Mongo.
type ScheduleCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Set(ctx context.Context, key string, value any)
	Flush(ctx context.Context) error
}

// RedisScheduleCache implements ScheduleCache on Redis.
type RedisScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) ScheduleCache {
	return &RedisScheduleCache{client: client, ttl: ttl}
}

const cacheKeyPrefix = "schedule:resolve:"

func (c *RedisScheduleCache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	val, err := c.client.Get(ctx, cacheKeyPrefix+key).Result()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(val), true
}

func (c *RedisScheduleCache) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Best effort; a failed write only costs the next reader a Mongo round trip.
	c.client.Set(ctx, cacheKeyPrefix+key, data, c.ttl)
}

// Flush removes every cached response. Called after a schedule rebuild so
// readers never serve slots from the replaced schedule set.
func (c *RedisScheduleCache) Flush(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, cacheKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
