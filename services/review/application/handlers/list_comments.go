package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
	"github.com/ghuser/appmarket/services/review/domain/repositories"
)

// ListCommentsHandler handles GET /reviews/{reviewID}/comments requests.
type ListCommentsHandler struct {
	svc *appsvcs.Services
}

// NewListCommentsHandler returns a ListCommentsHandler backed by the given services.
func NewListCommentsHandler(svc *appsvcs.Services) *ListCommentsHandler {
	return &ListCommentsHandler{svc: svc}
}

// Execute lists comments on a review, newest first.
//
//	@Summary		List comments
//	@Description	Returns a paginated list of comments on a review
//	@Tags			comments
//	@Produce		json
//	@Param			reviewID	path		string	true	"Review ID (UUID)"
//	@Param			limit		query		int		false	"Page size (max 100)"
//	@Param			offset		query		int		false	"Records to skip"
//	@Success		200			{object}	CommentListResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/reviews/{reviewID}/comments [get]
func (h *ListCommentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		errhttp.WriteError(w, reviewdomain.ErrReviewNotFound)
		return
	}

	opts := repositories.QueryOpts{
		Limit:  queryInt(r, "limit", defaultPageLimit),
		Offset: queryInt(r, "offset", 0),
	}
	if opts.Limit < 1 || opts.Limit > maxPageLimit {
		opts.Limit = defaultPageLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	comments, total, err := h.svc.Comment.ListByReview(r.Context(), reviewID, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := CommentListResponse{
		Comments: make([]CommentResponse, 0, len(comments)),
		Total:    total,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	}
	for _, comment := range comments {
		resp.Comments = append(resp.Comments, toCommentResponse(comment))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
