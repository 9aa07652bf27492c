package handlers

import (
	"strconv"
	"time"

	"github.com/ghuser/appmarket/services/review/domain/models"
)

// ReviewResponse is the API representation of a review.
type ReviewResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	UserID      string    `json:"user_id"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
} // @name ReviewResponse

// ReviewListResponse is a paginated review listing.
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
} // @name ReviewListResponse

// ReviewDetailResponse is a single review with its engagement counters.
type ReviewDetailResponse struct {
	ReviewResponse
	Upvotes       int `json:"upvotes"`
	Downvotes     int `json:"downvotes"`
	CommentsCount int `json:"comments_count"`
} // @name ReviewDetailResponse

// CommentResponse is the API representation of a review comment.
type CommentResponse struct {
	ID          string    `json:"id"`
	ReviewID    string    `json:"review_id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
} // @name CommentResponse

// CommentListResponse is a paginated comment listing.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
} // @name CommentListResponse

// ProductMetricsResponse summarises the active reviews of one product.
// RatingDistribution is keyed by star value, "1" through "5".
type ProductMetricsResponse struct {
	ProductID          string         `json:"product_id"`
	TotalReviews       int            `json:"total_reviews"`
	AverageRating      float64        `json:"average_rating"`
	RatingDistribution map[string]int `json:"rating_distribution"`
} // @name ProductMetricsResponse

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
} // @name ReviewErrorResponse

func toCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID.String(),
		ReviewID:    c.ReviewID.String(),
		UserID:      c.UserID.String(),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toDistributionMap(d models.RatingDistribution) map[string]int {
	out := make(map[string]int, len(d))
	for i, count := range d {
		out[strconv.Itoa(i+1)] = count
	}
	return out
}

func toReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID.String(),
		ProductID:   r.ProductID,
		UserID:      r.UserID.String(),
		Rating:      r.Rating.Int(),
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
