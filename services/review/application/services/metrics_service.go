package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain/models"
	"github.com/ghuser/appmarket/services/review/domain/repositories"
)

// ProductRatingSummary aggregates the active reviews of one product.
type ProductRatingSummary struct {
	TotalReviews  int
	AverageRating float64
	Distribution  models.RatingDistribution
}

// MetricsService exposes review engagement counters and per-product rating
// summaries.
type MetricsService struct {
	reviews repositories.ReviewRepository
	metrics repositories.MetricsRepository
}

// NewMetricsService returns a MetricsService wired to the given repositories.
func NewMetricsService(reviews repositories.ReviewRepository, metrics repositories.MetricsRepository) *MetricsService {
	return &MetricsService{reviews: reviews, metrics: metrics}
}

// ProductSummary returns the rating summary for a product. A product without
// active reviews yields zero totals and a zero distribution; unknown products
// are indistinguishable from unreviewed ones here.
func (s *MetricsService) ProductSummary(ctx context.Context, productID string) (*ProductRatingSummary, error) {
	dist, err := s.reviews.RatingDistribution(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &ProductRatingSummary{
		TotalReviews:  dist.Total(),
		AverageRating: dist.Average(),
		Distribution:  dist,
	}, nil
}

// ForReview returns the engagement counters of one review, zeros when no
// counters have been recorded yet.
func (s *MetricsService) ForReview(ctx context.Context, reviewID uuid.UUID) (*models.ReviewMetrics, error) {
	return s.metrics.GetByReview(ctx, reviewID)
}
