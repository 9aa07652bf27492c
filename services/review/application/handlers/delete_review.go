package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/auth"
	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
)

// DeleteReviewHandler handles DELETE /reviews/{reviewID} requests.
type DeleteReviewHandler struct {
	svc *appsvcs.Services
}

// NewDeleteReviewHandler returns a DeleteReviewHandler backed by the given services.
func NewDeleteReviewHandler(svc *appsvcs.Services) *DeleteReviewHandler {
	return &DeleteReviewHandler{svc: svc}
}

// Execute soft-deletes a review owned by the authenticated user.
//
//	@Summary		Delete review
//	@Description	Deletes the authenticated user's review
//	@Tags			reviews
//	@Param			reviewID	path	string	true	"Review ID (UUID)"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/reviews/{reviewID} [delete]
func (h *DeleteReviewHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Review.Delete(r.Context(), id, userID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
