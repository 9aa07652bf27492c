package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain/models"
)

func TestProductSummary(t *testing.T) {
	t.Run("aggregates active reviews only", func(t *testing.T) {
		repo, metrics := newFakeRepo(), newFakeMetrics()
		svc := NewMetricsService(repo, metrics)

		var deleted *models.Review
		for _, rating := range []int{5, 4, 4, 1} {
			review, err := models.NewReview(testProductID, uuid.New(), rating, "x")
			if err != nil {
				t.Fatalf("seed review: %v", err)
			}
			if err := repo.Save(context.Background(), review); err != nil {
				t.Fatalf("seed save: %v", err)
			}
			if rating == 1 {
				deleted = review
			}
		}
		if err := repo.SoftDelete(context.Background(), deleted.ID); err != nil {
			t.Fatalf("seed delete: %v", err)
		}

		summary, err := svc.ProductSummary(context.Background(), testProductID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalReviews != 3 {
			t.Fatalf("expected 3 reviews, got %d", summary.TotalReviews)
		}
		if summary.AverageRating != 4.33 {
			t.Fatalf("expected average 4.33, got %v", summary.AverageRating)
		}
		want := models.RatingDistribution{0, 0, 0, 2, 1}
		if summary.Distribution != want {
			t.Fatalf("expected distribution %v, got %v", want, summary.Distribution)
		}
	})

	t.Run("product without reviews yields zero stats", func(t *testing.T) {
		svc := NewMetricsService(newFakeRepo(), newFakeMetrics())

		summary, err := svc.ProductSummary(context.Background(), testProductID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalReviews != 0 || summary.AverageRating != 0 {
			t.Fatalf("expected zero stats, got %+v", summary)
		}
		if summary.Distribution != (models.RatingDistribution{}) {
			t.Fatalf("expected zero distribution, got %v", summary.Distribution)
		}
	})
}

func TestMetricsForReview(t *testing.T) {
	t.Run("review without a metrics row reads as zeros", func(t *testing.T) {
		svc := NewMetricsService(newFakeRepo(), newFakeMetrics())

		row, err := svc.ForReview(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.Upvotes != 0 || row.Downvotes != 0 || row.CommentsCount != 0 {
			t.Fatalf("expected zeroed counters, got %+v", row)
		}
	})

	t.Run("returns recorded counters", func(t *testing.T) {
		metrics := newFakeMetrics()
		svc := NewMetricsService(newFakeRepo(), metrics)
		reviewID := uuid.New()

		if err := metrics.Create(context.Background(), reviewID); err != nil {
			t.Fatalf("seed metrics: %v", err)
		}
		up, down := 3, 1
		if err := metrics.UpdateVotes(context.Background(), reviewID, &up, &down); err != nil {
			t.Fatalf("seed votes: %v", err)
		}

		row, err := svc.ForReview(context.Background(), reviewID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.Upvotes != 3 || row.Downvotes != 1 {
			t.Fatalf("expected votes 3/1, got %d/%d", row.Upvotes, row.Downvotes)
		}
	})
}
