package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sankofamarket/catalog-api/internal/models"
)

const (
	keyCategoryTree   = "catalog:categories:tree"
	keyFilterMetadata = "catalog:filters:metadata"
)

// CatalogCache caches the storefront's slow-moving catalog payloads (category
// tree, filter metadata) in Redis. All methods are safe on a nil receiver so
// a deployment without Redis degrades to cache misses.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a CatalogCache with the given TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

// GetCategoryTree returns the cached hierarchy, or ok=false on a miss.
func (c *CatalogCache) GetCategoryTree(ctx context.Context) ([]models.Category, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, keyCategoryTree)
	if err != nil {
		return nil, false
	}
	var tree []models.Category
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		return nil, false
	}
	return tree, true
}

// SetCategoryTree stores the hierarchy.
func (c *CatalogCache) SetCategoryTree(ctx context.Context, tree []models.Category) error {
	if c == nil || c.redis == nil {
		return nil
	}
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal category tree: %w", err)
	}
	return c.redis.Set(ctx, keyCategoryTree, string(data), c.ttl)
}

// GetFilterMetadata returns the cached filter sidebar payload, or ok=false.
func (c *CatalogCache) GetFilterMetadata(ctx context.Context) (*models.FilterMetadata, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, keyFilterMetadata)
	if err != nil {
		return nil, false
	}
	var meta models.FilterMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, false
	}
	return &meta, true
}

// SetFilterMetadata stores the filter sidebar payload.
func (c *CatalogCache) SetFilterMetadata(ctx context.Context, meta *models.FilterMetadata) error {
	if c == nil || c.redis == nil {
		return nil
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal filter metadata: %w", err)
	}
	return c.redis.Set(ctx, keyFilterMetadata, string(data), c.ttl)
}

// Invalidate drops both cached payloads. Called on any catalog mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if c == nil || c.redis == nil {
		return nil
	}
	err := c.redis.Delete(ctx, keyCategoryTree, keyFilterMetadata)
	if err == redis.Nil {
		return nil
	}
	return err
}
