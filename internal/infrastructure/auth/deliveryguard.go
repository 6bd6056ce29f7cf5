package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	deliveryKeyPrefix = "webhook:delivery:"
	// DefaultDeliveryTTL outlives the signature tolerance on both sides.
	DefaultDeliveryTTL = 10 * time.Minute
)

// RedisDeliveryGuard records webhook message IDs with SET NX so each
// delivery is processed once across instances.
type RedisDeliveryGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisDeliveryGuard(client redis.Cmdable, ttl time.Duration) *RedisDeliveryGuard {
	if ttl <= 0 {
		ttl = DefaultDeliveryTTL
	}
	return &RedisDeliveryGuard{client: client, ttl: ttl}
}

// Claim reports whether id was seen for the first time.
func (g *RedisDeliveryGuard) Claim(ctx context.Context, id string) (bool, error) {
	ok, err := g.client.SetNX(ctx, deliveryKeyPrefix+id, 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim webhook delivery %s: %w", id, err)
	}
	return ok, nil
}

// Release forgets id so a provider retry is processed again.
func (g *RedisDeliveryGuard) Release(ctx context.Context, id string) error {
	if err := g.client.Del(ctx, deliveryKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to release webhook delivery %s: %w", id, err)
	}
	return nil
}

// MemoryDeliveryGuard is the single-instance guard used without redis.
type MemoryDeliveryGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryDeliveryGuard(ttl time.Duration) *MemoryDeliveryGuard {
	if ttl <= 0 {
		ttl = DefaultDeliveryTTL
	}
	return &MemoryDeliveryGuard{seen: make(map[string]time.Time), ttl: ttl, now: time.Now}
}

func (g *MemoryDeliveryGuard) Claim(_ context.Context, id string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for key, expires := range g.seen {
		if !now.Before(expires) {
			delete(g.seen, key)
		}
	}
	if _, ok := g.seen[id]; ok {
		return false, nil
	}
	g.seen[id] = now.Add(g.ttl)
	return true, nil
}

func (g *MemoryDeliveryGuard) Release(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seen, id)
	return nil
}
