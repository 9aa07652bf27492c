package models

import "github.com/google/uuid"

// ReviewMetrics carries the engagement counters attached to one review.
// A review without a metrics row reads as all zeros; the row is created
// alongside the review and updated in place afterwards.
type ReviewMetrics struct {
	ReviewID      uuid.UUID
	Upvotes       int
	Downvotes     int
	CommentsCount int
}

// RatingDistribution counts active reviews per star value for one product.
// Index i holds the count of (i+1)-star reviews.
type RatingDistribution [5]int

// Total returns the number of reviews across all star values.
func (d RatingDistribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Average returns the mean star value rounded to two decimals, or 0 when
// the distribution is empty.
func (d RatingDistribution) Average() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	sum := 0
	for i, c := range d {
		sum += (i + 1) * c
	}
	mean := float64(sum) / float64(total)
	return float64(int(mean*100+0.5)) / 100
}
