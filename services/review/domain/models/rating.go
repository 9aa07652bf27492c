package models

import (
	"fmt"

	"github.com/ghuser/appmarket/services/review/domain"
)

const (
	// MinRating is the lowest score a user can give.
	MinRating = 1
	// MaxRating is the highest score a user can give.
	MaxRating = 5
)

// Rating is a user-submitted score on the 1-5 scale.
type Rating int

// NewRating validates n and returns it as a Rating.
func NewRating(n int) (Rating, error) {
	if n < MinRating || n > MaxRating {
		return 0, fmt.Errorf("%w: rating must be between %d and %d, got %d",
			domain.ErrInvalidRating, MinRating, MaxRating, n)
	}
	return Rating(n), nil
}

// Int returns the rating as a plain int.
func (r Rating) Int() int {
	return int(r)
}
