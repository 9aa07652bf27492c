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

// CreateCommentRequest is the request body for POST /reviews/{reviewID}/comments.
type CreateCommentRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
} // @name CreateCommentRequest

// PostCommentHandler handles POST /reviews/{reviewID}/comments requests.
type PostCommentHandler struct {
	svc *appsvcs.Services
}

// NewPostCommentHandler returns a PostCommentHandler backed by the given services.
func NewPostCommentHandler(svc *appsvcs.Services) *PostCommentHandler {
	return &PostCommentHandler{svc: svc}
}

// Execute attaches a comment to an active review on behalf of the
// authenticated user.
//
//	@Summary		Create comment
//	@Description	Adds a comment to an active review
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		string					true	"Review ID (UUID)"
//	@Param			request		body		CreateCommentRequest	true	"Comment to create"
//	@Success		201			{object}	CommentResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/reviews/{reviewID}/comments [post]
func (h *PostCommentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		errhttp.WriteError(w, reviewdomain.ErrReviewNotFound)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateCommentRequest](w, r)
	if !ok {
		return
	}

	comment, err := h.svc.Comment.Create(r.Context(), reviewID, userID, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toCommentResponse(comment))
}
