package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/auth"
	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/appmarket/pkg/validator"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
)

// UpdateReviewRequest is the request body for PUT /reviews/{reviewID}.
// Upvotes and downvotes are absolute counter values; omit to leave them
// unchanged.
type UpdateReviewRequest struct {
	Rating      int    `json:"rating"      validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required,max=255"`
	Upvotes     *int   `json:"upvotes"     validate:"omitempty,min=0"`
	Downvotes   *int   `json:"downvotes"   validate:"omitempty,min=0"`
} // @name UpdateReviewRequest

// PutReviewHandler handles PUT /reviews/{reviewID} requests.
type PutReviewHandler struct {
	svc *appsvcs.Services
}

// NewPutReviewHandler returns a PutReviewHandler backed by the given services.
func NewPutReviewHandler(svc *appsvcs.Services) *PutReviewHandler {
	return &PutReviewHandler{svc: svc}
}

// Execute updates a review owned by the authenticated user.
//
//	@Summary		Update review
//	@Description	Updates the authenticated user's review
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		string				true	"Review ID (UUID)"
//	@Param			request		body		UpdateReviewRequest	true	"Fields to update"
//	@Success		200			{object}	ReviewResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/reviews/{reviewID} [put]
func (h *PutReviewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		errhttp.WriteError(w, reviewdomain.ErrReviewNotFound)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateReviewRequest](w, r)
	if !ok {
		return
	}

	review, err := h.svc.Review.Update(r.Context(), id, userID, appsvcs.UpdateParams{
		Rating:      req.Rating,
		Description: req.Description,
		Upvotes:     req.Upvotes,
		Downvotes:   req.Downvotes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toReviewResponse(review))
}
