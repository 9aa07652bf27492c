package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/appmarket/pkg/database"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
	"github.com/ghuser/appmarket/services/review/domain/models"
	"github.com/ghuser/appmarket/services/review/domain/repositories"
)

// ReviewRepository implements repositories.ReviewRepository against PostgreSQL.
type ReviewRepository struct {
	db *database.Database
}

// NewReviewRepository returns a ReviewRepository backed by the given connection pool.
func NewReviewRepository(database *database.Database) *ReviewRepository {
	return &ReviewRepository{db: database}
}

// Save persists a new review. Returns ErrDuplicateReview when the user
// already holds an active review for the product.
func (r *ReviewRepository) Save(ctx context.Context, review *models.Review) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const query = `
			INSERT INTO reviews (id, product_id, user_id, rating, description, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

		_, err := tx.ExecContext(ctx, query,
			review.ID,
			review.ProductID,
			review.UserID,
			review.Rating.Int(),
			review.Description,
			string(review.Status),
			review.CreatedAt,
			review.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return reviewdomain.ErrDuplicateReview
			}
			return fmt.Errorf("insert review: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a review by ID. Returns ErrReviewNotFound if not found.
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	const query = `
		SELECT id, product_id, user_id, rating, description, status, created_at, updated_at
		FROM reviews
		WHERE id = $1`

	review, err := scanReview(r.db.DB().QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reviewdomain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("query review: %w", err)
	}
	return review, nil
}

// FindByProduct retrieves a paginated list of active reviews for a product,
// newest first, along with the total active count.
func (r *ReviewRepository) FindByProduct(ctx context.Context, productID string, opts repositories.QueryOpts) ([]*models.Review, int, error) {
	const query = `
		SELECT id, product_id, user_id, rating, description, status, created_at, updated_at
		FROM reviews
		WHERE product_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.DB().QueryContext(ctx, query, productID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reviews: %w", err)
	}

	const countQuery = `SELECT COUNT(*) FROM reviews WHERE product_id = $1 AND status = 'active'`
	var total int
	if err := r.db.DB().QueryRowContext(ctx, countQuery, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	return reviews, total, nil
}

// Update persists rating and description changes to an existing review.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	const query = `
		UPDATE reviews
		SET rating = $2, description = $3, updated_at = $4
		WHERE id = $1 AND status = 'active'`

	res, err := r.db.DB().ExecContext(ctx, query,
		review.ID,
		review.Rating.Int(),
		review.Description,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update review rows affected: %w", err)
	}
	if affected == 0 {
		return reviewdomain.ErrReviewNotFound
	}
	return nil
}

// SoftDelete marks a review as deleted, keeping the row for audit purposes.
// Deleted reviews no longer count toward rating aggregation.
func (r *ReviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE reviews
		SET status = 'deleted', updated_at = NOW()
		WHERE id = $1 AND status = 'active'`

	res, err := r.db.DB().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete rows affected: %w", err)
	}
	if affected == 0 {
		return reviewdomain.ErrReviewNotFound
	}
	return nil
}

// ActiveRatings returns the rating values of all active reviews for a product.
func (r *ReviewRepository) ActiveRatings(ctx context.Context, productID string) ([]int, error) {
	const query = `SELECT rating FROM reviews WHERE product_id = $1 AND status = 'active'`

	rows, err := r.db.DB().QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}

// ExistsByUserAndProduct reports whether the user already holds an active
// review for the product.
func (r *ReviewRepository) ExistsByUserAndProduct(ctx context.Context, userID uuid.UUID, productID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE user_id = $1 AND product_id = $2 AND status = 'active'
		)`

	var exists bool
	if err := r.db.DB().QueryRowContext(ctx, query, userID, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check review exists: %w", err)
	}
	return exists, nil
}

// RatingDistribution returns the per-star counts of active reviews for a product.
func (r *ReviewRepository) RatingDistribution(ctx context.Context, productID string) (models.RatingDistribution, error) {
	const query = `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE product_id = $1 AND status = 'active'
		GROUP BY rating`

	var dist models.RatingDistribution
	rows, err := r.db.DB().QueryContext(ctx, query, productID)
	if err != nil {
		return dist, fmt.Errorf("query rating distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return dist, fmt.Errorf("scan rating distribution: %w", err)
		}
		if rating >= models.MinRating && rating <= models.MaxRating {
			dist[rating-1] = count
		}
	}
	if err := rows.Err(); err != nil {
		return dist, fmt.Errorf("iterate rating distribution: %w", err)
	}
	return dist, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanReview.
type scanner interface {
	Scan(dest ...any) error
}

func scanReview(s scanner) (*models.Review, error) {
	var (
		review models.Review
		rating int
		status string
	)
	if err := s.Scan(
		&review.ID,
		&review.ProductID,
		&review.UserID,
		&rating,
		&review.Description,
		&status,
		&review.CreatedAt,
		&review.UpdatedAt,
	); err != nil {
		return nil, err
	}
	review.Rating = models.Rating(rating)
	review.Status = models.Status(status)
	return &review, nil
}
