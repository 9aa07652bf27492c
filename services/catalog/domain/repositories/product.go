package repositories

import (
	"context"
	"time"

	"github.com/ghuser/appmarket/services/catalog/domain/models"
)

// QueryOpts contains pagination and filter parameters for list queries.
type QueryOpts struct {
	Limit    int    // Maximum number of records to return
	Offset   int    // Number of records to skip
	Category string // Optional category filter; empty means all
}

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	// Save persists a new Product and fills in its store-assigned ID.
	Save(ctx context.Context, product *models.Product) error

	// GetByID retrieves a product. Returns ErrProductNotFound when absent and
	// ErrInvalidProductID when id is not a valid catalog key.
	GetByID(ctx context.Context, id string) (*models.Product, error)

	// Find retrieves a paginated list of products.
	// Returns the products slice and the total count (ignoring pagination).
	Find(ctx context.Context, opts QueryOpts) ([]*models.Product, int, error)

	// Update persists changes to an existing Product.
	Update(ctx context.Context, product *models.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a product with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)

	// SetRating overwrites the product's derived aggregate rating and bumps
	// updated_at. A nil rating clears the aggregate (no active reviews).
	// Returns matched=false when no product with the given ID exists.
	SetRating(ctx context.Context, id string, rating *float64, updatedAt time.Time) (bool, error)
}
