package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain/models"
)

// MetricsRepository persists per-review engagement counters.
type MetricsRepository interface {
	// Create inserts a zeroed metrics row for a freshly created review.
	Create(ctx context.Context, reviewID uuid.UUID) error

	// GetByReview returns the counters for a review. A review without a
	// metrics row reads as all zeros.
	GetByReview(ctx context.Context, reviewID uuid.UUID) (*models.ReviewMetrics, error)

	// IncrementComments bumps the comment counter by one.
	IncrementComments(ctx context.Context, reviewID uuid.UUID) error

	// UpdateVotes sets the absolute vote counters. Nil values are left
	// unchanged. Returns domain.ErrReviewNotFound when no metrics row exists.
	UpdateVotes(ctx context.Context, reviewID uuid.UUID, upvotes, downvotes *int) error
}
