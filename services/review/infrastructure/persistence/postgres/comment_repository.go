package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/database"
	"github.com/ghuser/appmarket/services/review/domain/models"
	"github.com/ghuser/appmarket/services/review/domain/repositories"
)

// CommentRepository implements repositories.CommentRepository against PostgreSQL.
type CommentRepository struct {
	db *database.Database
}

// NewCommentRepository returns a CommentRepository backed by the given connection pool.
func NewCommentRepository(database *database.Database) *CommentRepository {
	return &CommentRepository{db: database}
}

// Save persists a new comment.
func (r *CommentRepository) Save(ctx context.Context, comment *models.Comment) error {
	const query = `
		INSERT INTO review_comments (id, review_id, user_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.DB().ExecContext(ctx, query,
		comment.ID,
		comment.ReviewID,
		comment.UserID,
		comment.Description,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// FindByReview retrieves a paginated list of comments on a review, newest
// first, along with the total count.
func (r *CommentRepository) FindByReview(ctx context.Context, reviewID uuid.UUID, opts repositories.QueryOpts) ([]*models.Comment, int, error) {
	const query = `
		SELECT id, review_id, user_id, description, created_at
		FROM review_comments
		WHERE review_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.DB().QueryContext(ctx, query, reviewID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.ReviewID,
			&comment.UserID,
			&comment.Description,
			&comment.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate comments: %w", err)
	}

	const countQuery = `SELECT COUNT(*) FROM review_comments WHERE review_id = $1`
	var total int
	if err := r.db.DB().QueryRowContext(ctx, countQuery, reviewID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	return comments, total, nil
}
