package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain"
)

// Status tracks review lifecycle. Deleted reviews stay in storage but are
// excluded from listings and rating aggregation.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

const maxDescriptionLength = 255

// Review is a user's rating and write-up for a single catalog product.
// A user holds at most one active review per product.
type Review struct {
	ID          uuid.UUID
	ProductID   string
	UserID      uuid.UUID
	Rating      Rating
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReview builds a validated active review for the given product and user.
func NewReview(productID string, userID uuid.UUID, rating int, description string) (*Review, error) {
	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidReview)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidReview, maxDescriptionLength)
	}
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidReview)
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidReview)
	}

	now := time.Now().UTC()
	return &Review{
		ID:          uuid.New(),
		ProductID:   productID,
		UserID:      userID,
		Rating:      r,
		Description: description,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Edit applies a new rating and description, bumping UpdatedAt.
func (r *Review) Edit(rating int, description string) error {
	newRating, err := NewRating(rating)
	if err != nil {
		return err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidReview)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidReview, maxDescriptionLength)
	}

	r.Rating = newRating
	r.Description = description
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// MarkDeleted soft-deletes the review.
func (r *Review) MarkDeleted() {
	r.Status = StatusDeleted
	r.UpdatedAt = time.Now().UTC()
}
