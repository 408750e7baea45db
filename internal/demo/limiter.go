package demo

import (
	"log"

	"redseal-waitlist/pkg/cache"
)

// UsageLimiter answers whether a client may run another demo exchange and
// records completed ones.
type UsageLimiter interface {
	Check(clientID string) (int, bool)
	Record(clientID string)
	Limit() int
}

// Limiter tracks completed demo exchanges per client and answers whether the
// next one is allowed. Counters live in redis with a 24h expiry.
type Limiter struct {
	cache *cache.RedisCache
	limit int
}

func NewLimiter(cache *cache.RedisCache, limit int) *Limiter {
	return &Limiter{cache: cache, limit: limit}
}

func (l *Limiter) Limit() int {
	return l.limit
}

// Check returns the current usage and whether the client is over the limit.
// Redis errors fail open so a cache outage never blocks the demo.
func (l *Limiter) Check(clientID string) (int, bool) {
	usage, err := l.cache.DemoUsage(clientID)
	if err != nil {
		log.Printf("Error reading demo usage for %s: %v", clientID, err)
		return 0, false
	}
	return usage, usage >= l.limit
}

// Record counts one completed exchange.
func (l *Limiter) Record(clientID string) {
	if _, err := l.cache.IncrDemoUsage(clientID); err != nil {
		log.Printf("Error recording demo usage for %s: %v", clientID, err)
	}
}
