package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"atelier-admin-core/internal/domain"
	"atelier-admin-core/internal/ports"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultKey = "atelier:catalog:snapshot"

// RedisCache stores the last-known-good catalog snapshot in Redis so a
// restart with the catalog API down can serve recent data instead of seeds.
type RedisCache struct {
	rdb    *redis.Client
	key    string
	ttl    time.Duration
	logger zerolog.Logger
}

var _ ports.SnapshotCache = (*RedisCache)(nil)

// NewRedisCache creates a snapshot cache. A zero ttl keeps snapshots
// forever.
func NewRedisCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisCache {
	return &RedisCache{
		rdb:    rdb,
		key:    defaultKey,
		ttl:    ttl,
		logger: logger,
	}
}

// Save writes the snapshot, replacing any previous one.
func (c *RedisCache) Save(ctx context.Context, snap domain.CatalogSnapshot) error {
	encoded, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key, encoded, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	c.logger.Debug().
		Int("categories", len(snap.Categories)).
		Int("products", len(snap.Products)).
		Msg("Catalog snapshot cached")
	return nil
}

// Load returns the stored snapshot, or (nil, nil) when none exists.
func (c *RedisCache) Load(ctx context.Context) (*domain.CatalogSnapshot, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	var snap domain.CatalogSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}
