package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
)

// GetReviewHandler handles GET /reviews/{reviewID} requests.
type GetReviewHandler struct {
	svc *appsvcs.Services
}

// NewGetReviewHandler returns a GetReviewHandler backed by the given services.
func NewGetReviewHandler(svc *appsvcs.Services) *GetReviewHandler {
	return &GetReviewHandler{svc: svc}
}

// Execute fetches a single review by ID, engagement counters included.
//
//	@Summary		Get review
//	@Description	Returns a single active review with its engagement counters
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		string	true	"Review ID (UUID)"
//	@Success		200			{object}	ReviewDetailResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/reviews/{reviewID} [get]
func (h *GetReviewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		errhttp.WriteError(w, reviewdomain.ErrReviewNotFound)
		return
	}

	review, err := h.svc.Review.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	metrics, err := h.svc.Metrics.ForReview(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ReviewDetailResponse{
		ReviewResponse: toReviewResponse(review),
		Upvotes:        metrics.Upvotes,
		Downvotes:      metrics.Downvotes,
		CommentsCount:  metrics.CommentsCount,
	})
}
