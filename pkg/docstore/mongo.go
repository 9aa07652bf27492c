// Package docstore wraps the MongoDB client that owns the catalog's product
// collection. Connection pooling and socket safety are managed by the driver;
// this package only handles lifecycle, health checks, and handle access.
package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ghuser/appmarket/pkg/config"
)

// Client wraps a mongo.Client scoped to the catalog database.
type Client struct {
	client     *mongo.Client
	database   string
	collection string
}

// Connect dials the catalog MongoDB from cfg and verifies connectivity via ping.
func Connect(ctx context.Context, cfg *config.Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.CatalogMongoURL).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mc.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Client{
		client:     mc,
		database:   cfg.CatalogMongoDatabase,
		collection: cfg.CatalogMongoCollection,
	}, nil
}

// Products returns the catalog's product collection handle.
func (c *Client) Products() *mongo.Collection {
	return c.client.Database(c.database).Collection(c.collection)
}

// Ping checks the MongoDB connection health.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect: %w", err)
	}
	return nil
}
