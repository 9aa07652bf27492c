package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain/models"
)

// CommentRepository persists review comments.
type CommentRepository interface {
	// Save inserts a new comment.
	Save(ctx context.Context, comment *models.Comment) error

	// FindByReview returns comments on a review, newest first, along with
	// the total count.
	FindByReview(ctx context.Context, reviewID uuid.UUID, opts QueryOpts) ([]*models.Comment, int, error)
}
