package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain"
)

const maxCommentLength = 2000

// Comment is a user's reply attached to an active review. Comments have no
// lifecycle of their own: they are never edited and survive the parent
// review's soft delete.
type Comment struct {
	ID          uuid.UUID
	ReviewID    uuid.UUID
	UserID      uuid.UUID
	Description string
	CreatedAt   time.Time
}

// NewComment builds a validated comment on the given review.
func NewComment(reviewID, userID uuid.UUID, description string) (*Comment, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidComment)
	}
	if len(description) > maxCommentLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidComment, maxCommentLength)
	}
	if reviewID == uuid.Nil {
		return nil, fmt.Errorf("%w: review id is required", domain.ErrInvalidComment)
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidComment)
	}

	return &Comment{
		ID:          uuid.New(),
		ReviewID:    reviewID,
		UserID:      userID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
