package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/database"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
	"github.com/ghuser/appmarket/services/review/domain/models"
)

// MetricsRepository implements repositories.MetricsRepository against PostgreSQL.
type MetricsRepository struct {
	db *database.Database
}

// NewMetricsRepository returns a MetricsRepository backed by the given connection pool.
func NewMetricsRepository(database *database.Database) *MetricsRepository {
	return &MetricsRepository{db: database}
}

// Create inserts a zeroed metrics row for a freshly created review. Retrying
// a create for a review that already has a row is a no-op.
func (r *MetricsRepository) Create(ctx context.Context, reviewID uuid.UUID) error {
	const query = `
		INSERT INTO review_metrics (review_id, upvotes, downvotes, comments_count)
		VALUES ($1, 0, 0, 0)
		ON CONFLICT (review_id) DO NOTHING`

	if _, err := r.db.DB().ExecContext(ctx, query, reviewID); err != nil {
		return fmt.Errorf("insert review metrics: %w", err)
	}
	return nil
}

// GetByReview returns the counters for a review, all zeros when no row exists.
func (r *MetricsRepository) GetByReview(ctx context.Context, reviewID uuid.UUID) (*models.ReviewMetrics, error) {
	const query = `
		SELECT review_id, upvotes, downvotes, comments_count
		FROM review_metrics
		WHERE review_id = $1`

	var metrics models.ReviewMetrics
	err := r.db.DB().QueryRowContext(ctx, query, reviewID).Scan(
		&metrics.ReviewID,
		&metrics.Upvotes,
		&metrics.Downvotes,
		&metrics.CommentsCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.ReviewMetrics{ReviewID: reviewID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query review metrics: %w", err)
	}
	return &metrics, nil
}

// IncrementComments bumps the comment counter by one.
func (r *MetricsRepository) IncrementComments(ctx context.Context, reviewID uuid.UUID) error {
	const query = `
		UPDATE review_metrics
		SET comments_count = comments_count + 1
		WHERE review_id = $1`

	if _, err := r.db.DB().ExecContext(ctx, query, reviewID); err != nil {
		return fmt.Errorf("increment comments count: %w", err)
	}
	return nil
}

// UpdateVotes sets the absolute vote counters, leaving nil values unchanged.
func (r *MetricsRepository) UpdateVotes(ctx context.Context, reviewID uuid.UUID, upvotes, downvotes *int) error {
	const query = `
		UPDATE review_metrics
		SET upvotes = COALESCE($2, upvotes), downvotes = COALESCE($3, downvotes)
		WHERE review_id = $1`

	res, err := r.db.DB().ExecContext(ctx, query, reviewID, upvotes, downvotes)
	if err != nil {
		return fmt.Errorf("update votes: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update votes rows affected: %w", err)
	}
	if affected == 0 {
		return reviewdomain.ErrReviewNotFound
	}
	return nil
}
