package domain

import "errors"

// Sentinel errors for the review domain. Use errors.Is() to check these.
var (
	// ErrReviewNotFound indicates the requested review does not exist or is deleted.
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview indicates the user already has an active review for the product.
	ErrDuplicateReview = errors.New("user has already reviewed this product")

	// ErrInvalidRating indicates the rating is outside the 1-5 range.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidReview indicates the review violates domain constraints.
	ErrInvalidReview = errors.New("invalid review")

	// ErrInvalidComment indicates the comment violates domain constraints,
	// including commenting on a review that is not active.
	ErrInvalidComment = errors.New("invalid comment")
)
