package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/events"
	catalogdomain "github.com/ghuser/appmarket/services/catalog/domain"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
	"github.com/ghuser/appmarket/services/review/domain/models"
	"github.com/ghuser/appmarket/services/review/domain/repositories"
)

// ProductChecker reports whether a catalog product exists. Satisfied by the
// catalog service; keeps the review context from depending on catalog
// internals.
type ProductChecker interface {
	Exists(ctx context.Context, productID string) (bool, error)
}

// ReviewService implements review use cases. Writes go to PostgreSQL first;
// a matching event is published afterwards on a best-effort basis, so a
// dropped event never rolls back the review itself.
type ReviewService struct {
	repo     repositories.ReviewRepository
	metrics  repositories.MetricsRepository
	products ProductChecker
	bus      *events.Bus
}

// NewReviewService returns a ReviewService wired to the given repositories,
// product checker and event bus.
func NewReviewService(
	repo repositories.ReviewRepository,
	metrics repositories.MetricsRepository,
	products ProductChecker,
	bus *events.Bus,
) *ReviewService {
	return &ReviewService{repo: repo, metrics: metrics, products: products, bus: bus}
}

// CreateParams carries the input for Create.
type CreateParams struct {
	ProductID   string
	UserID      uuid.UUID
	Rating      int
	Description string
}

// Create validates the target product exists, persists the review, then
// publishes a ReviewCreated event.
func (s *ReviewService) Create(ctx context.Context, params CreateParams) (*models.Review, error) {
	exists, err := s.products.Exists(ctx, params.ProductID)
	if err != nil {
		// Invalid product ids can't refer to a real product.
		if errors.Is(err, catalogdomain.ErrInvalidProductID) {
			return nil, err
		}
		return nil, fmt.Errorf("check product exists: %w", err)
	}
	if !exists {
		return nil, catalogdomain.ErrProductNotFound
	}

	// Pre-check for a clean 409; the partial unique index still backstops
	// concurrent creates.
	duplicate, err := s.repo.ExistsByUserAndProduct(ctx, params.UserID, params.ProductID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if duplicate {
		return nil, reviewdomain.ErrDuplicateReview
	}

	review, err := models.NewReview(params.ProductID, params.UserID, params.Rating, params.Description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, review); err != nil {
		return nil, err
	}

	if err := s.metrics.Create(ctx, review.ID); err != nil {
		return nil, fmt.Errorf("create review metrics: %w", err)
	}

	s.bus.Publish(ctx, events.ReviewCreated{
		ProductID:  review.ProductID,
		ReviewID:   review.ID,
		UserID:     review.UserID,
		Rating:     review.Rating.Int(),
		OccurredAt: review.CreatedAt,
	})

	return review, nil
}

// GetByID returns a single review. Deleted reviews surface as not found.
func (s *ReviewService) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.Status != models.StatusActive {
		return nil, reviewdomain.ErrReviewNotFound
	}
	return review, nil
}

// ListByProduct returns active reviews for a product with the total count.
func (s *ReviewService) ListByProduct(ctx context.Context, productID string, opts repositories.QueryOpts) ([]*models.Review, int, error) {
	return s.repo.FindByProduct(ctx, productID, opts)
}

// UpdateParams carries the input for Update. Upvotes and Downvotes are
// absolute counter values; nil leaves the current counter untouched.
type UpdateParams struct {
	Rating      int
	Description string
	Upvotes     *int
	Downvotes   *int
}

// Update edits an existing review owned by userID and publishes a
// ReviewUpdated event when the rating value changed.
func (s *ReviewService) Update(ctx context.Context, id, userID uuid.UUID, params UpdateParams) (*models.Review, error) {
	review, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		// Hide other users' reviews behind not-found rather than 403.
		return nil, reviewdomain.ErrReviewNotFound
	}

	previousRating := review.Rating.Int()
	if err := review.Edit(params.Rating, params.Description); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	if params.Upvotes != nil || params.Downvotes != nil {
		if err := s.metrics.UpdateVotes(ctx, id, params.Upvotes, params.Downvotes); err != nil {
			return nil, err
		}
	}

	if review.Rating.Int() != previousRating {
		s.bus.Publish(ctx, events.ReviewUpdated{
			ProductID:  review.ProductID,
			ReviewID:   review.ID,
			Rating:     review.Rating.Int(),
			OccurredAt: review.UpdatedAt,
		})
	}

	return review, nil
}

// Delete soft-deletes a review owned by userID and publishes a
// ReviewDeleted event.
func (s *ReviewService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	review, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return reviewdomain.ErrReviewNotFound
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.ReviewDeleted{
		ProductID:  review.ProductID,
		ReviewID:   review.ID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
