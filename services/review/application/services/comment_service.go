package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
	"github.com/ghuser/appmarket/services/review/domain/models"
	"github.com/ghuser/appmarket/services/review/domain/repositories"
)

// CommentService implements the comment use cases for reviews. Comments can
// only be added to active reviews, but listing keeps working after the parent
// review is soft-deleted.
type CommentService struct {
	comments repositories.CommentRepository
	reviews  repositories.ReviewRepository
	metrics  repositories.MetricsRepository
}

// NewCommentService returns a CommentService wired to the given repositories.
func NewCommentService(
	comments repositories.CommentRepository,
	reviews repositories.ReviewRepository,
	metrics repositories.MetricsRepository,
) *CommentService {
	return &CommentService{comments: comments, reviews: reviews, metrics: metrics}
}

// Create attaches a comment to an active review and bumps the review's
// comment counter.
func (s *CommentService) Create(ctx context.Context, reviewID, userID uuid.UUID, description string) (*models.Comment, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.Status != models.StatusActive {
		return nil, fmt.Errorf("%w: cannot comment on an inactive review", reviewdomain.ErrInvalidComment)
	}

	comment, err := models.NewComment(reviewID, userID, description)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.metrics.IncrementComments(ctx, reviewID); err != nil {
		return nil, fmt.Errorf("bump comment counter: %w", err)
	}

	return comment, nil
}

// ListByReview returns comments on a review, newest first, with the total
// count. The review must exist but may be deleted.
func (s *CommentService) ListByReview(ctx context.Context, reviewID uuid.UUID, opts repositories.QueryOpts) ([]*models.Comment, int, error) {
	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		return nil, 0, err
	}
	return s.comments.FindByReview(ctx, reviewID, opts)
}
