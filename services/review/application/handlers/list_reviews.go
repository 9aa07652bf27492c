package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
	"github.com/ghuser/appmarket/services/review/domain/repositories"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListReviewsHandler handles GET /products/{productID}/reviews requests.
type ListReviewsHandler struct {
	svc *appsvcs.Services
}

// NewListReviewsHandler returns a ListReviewsHandler backed by the given services.
func NewListReviewsHandler(svc *appsvcs.Services) *ListReviewsHandler {
	return &ListReviewsHandler{svc: svc}
}

// Execute lists active reviews for a product, newest first.
//
//	@Summary		List reviews
//	@Description	Returns a paginated list of active reviews for a product
//	@Tags			reviews
//	@Produce		json
//	@Param			productID	path		string	true	"Product ID (ObjectID hex)"
//	@Param			limit		query		int		false	"Page size (max 100)"
//	@Param			offset		query		int		false	"Records to skip"
//	@Success		200			{object}	ReviewListResponse
//	@Router			/products/{productID}/reviews [get]
func (h *ListReviewsHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	reviews, total, err := h.svc.Review.ListByProduct(r.Context(), chi.URLParam(r, "productID"), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	}
	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, toReviewResponse(review))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// queryInt parses an integer query parameter, falling back to def on
// absence or malformed input.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
