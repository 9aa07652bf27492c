package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized read model stored in Redis.
// Rating is a pointer: a product with no active reviews has no rating,
// which is distinct from a rating of zero.
type CachedProduct struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Developer     string    `json:"developer"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Version       string    `json:"version"`
	Rating        *float64  `json:"rating"`
	DownloadCount int64     `json:"download_count"`
	IconURL       string    `json:"icon_url,omitempty"`
	Screenshots   []string  `json:"screenshots"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductCache provides read/write operations for product cache entries.
// Key format: "product:{productID}". Entries are JSON-encoded with a 24-hour
// TTL and invalidated on every catalog mutation and rating recomputation.
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID string) (*CachedProduct, error) {
	data, err := c.client.Client().Get(ctx, c.key(productID)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var p CachedProduct
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &p, nil
}

// Set writes a cached product with a 24-hour TTL.
func (c *ProductCache) Set(ctx context.Context, p *CachedProduct) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(p.ID), data, ProductCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product.
func (c *ProductCache) Delete(ctx context.Context, productID string) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{productID}"
func (c *ProductCache) key(productID string) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}
