package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/auth"
	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/appmarket/pkg/validator"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
)

// CreateReviewRequest is the request body for POST /products/{productID}/reviews.
type CreateReviewRequest struct {
	Rating      int    `json:"rating"      validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required,max=255"`
} // @name CreateReviewRequest

// PostReviewHandler handles POST /products/{productID}/reviews requests.
type PostReviewHandler struct {
	svc *appsvcs.Services
}

// NewPostReviewHandler returns a PostReviewHandler backed by the given services.
func NewPostReviewHandler(svc *appsvcs.Services) *PostReviewHandler {
	return &PostReviewHandler{svc: svc}
}

// Execute creates a review for a product on behalf of the authenticated user.
//
//	@Summary		Create review
//	@Description	Creates a review for a catalog product
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		string				true	"Product ID (ObjectID hex)"
//	@Param			request		body		CreateReviewRequest	true	"Review to create"
//	@Success		201			{object}	ReviewResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/products/{productID}/reviews [post]
func (h *PostReviewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateReviewRequest](w, r)
	if !ok {
		return
	}

	review, err := h.svc.Review.Create(r.Context(), appsvcs.CreateParams{
		ProductID:   chi.URLParam(r, "productID"),
		UserID:      userID,
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toReviewResponse(review))
}
