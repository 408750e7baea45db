package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	listTTL  = 24 * time.Hour
	usageTTL = 24 * time.Hour
)

type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

// SetList caches a reference list (countries, regions, trades) under key.
func (c *RedisCache) SetList(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, "ref:"+key, data, listTTL).Err()
}

// GetList loads a cached reference list into dest. Returns redis.Nil on miss.
func (c *RedisCache) GetList(key string, dest interface{}) error {
	data, err := c.client.Get(c.ctx, "ref:"+key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// InvalidateList drops a cached reference list.
func (c *RedisCache) InvalidateList(key string) error {
	return c.client.Del(c.ctx, "ref:"+key).Err()
}

// DemoUsage returns the number of completed demo chat exchanges recorded for
// a client. Missing counters read as zero.
func (c *RedisCache) DemoUsage(clientID string) (int, error) {
	n, err := c.client.Get(c.ctx, "demo:usage:"+clientID).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// IncrDemoUsage bumps a client's demo usage counter and refreshes its expiry.
func (c *RedisCache) IncrDemoUsage(clientID string) (int, error) {
	key := "demo:usage:" + clientID
	n, err := c.client.Incr(c.ctx, key).Result()
	if err != nil {
		return 0, err
	}
	c.client.Expire(c.ctx, key, usageTTL)
	return int(n), nil
}
