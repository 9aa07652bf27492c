package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain/models"
)

// QueryOpts carries pagination for review listings.
type QueryOpts struct {
	Limit  int
	Offset int
}

// ReviewRepository persists reviews. Implementations return the domain
// sentinel errors for not-found and duplicate conditions.
type ReviewRepository interface {
	// Save inserts a new review. Returns domain.ErrDuplicateReview when the
	// user already has an active review for the product.
	Save(ctx context.Context, review *models.Review) error

	// GetByID returns the review with the given id, deleted ones included.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)

	// FindByProduct returns active reviews for a product, newest first,
	// along with the total active count.
	FindByProduct(ctx context.Context, productID string, opts QueryOpts) ([]*models.Review, int, error)

	// Update persists rating and description changes to an existing review.
	Update(ctx context.Context, review *models.Review) error

	// SoftDelete marks the review deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// ActiveRatings returns the rating values of every active review for
	// the product. Used by rating aggregation; order is unspecified.
	ActiveRatings(ctx context.Context, productID string) ([]int, error)

	// ExistsByUserAndProduct reports whether the user already holds an
	// active review for the product.
	ExistsByUserAndProduct(ctx context.Context, userID uuid.UUID, productID string) (bool, error)

	// RatingDistribution returns the per-star counts of active reviews for
	// the product. Used by the product metrics summary.
	RatingDistribution(ctx context.Context, productID string) (models.RatingDistribution, error)
}
