package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
)

// GetProductMetricsHandler handles GET /products/{productID}/reviews/metrics requests.
type GetProductMetricsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductMetricsHandler returns a GetProductMetricsHandler backed by the given services.
func NewGetProductMetricsHandler(svc *appsvcs.Services) *GetProductMetricsHandler {
	return &GetProductMetricsHandler{svc: svc}
}

// Execute returns the rating summary for a product. Products without active
// reviews report zero totals and an all-zero distribution.
//
//	@Summary		Product review metrics
//	@Description	Returns review count, average rating and the per-star distribution for a product
//	@Tags			reviews
//	@Produce		json
//	@Param			productID	path		string	true	"Product ID (ObjectID hex)"
//	@Success		200			{object}	ProductMetricsResponse
//	@Router			/products/{productID}/reviews/metrics [get]
func (h *GetProductMetricsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	summary, err := h.svc.Metrics.ProductSummary(r.Context(), productID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ProductMetricsResponse{
		ProductID:          productID,
		TotalReviews:       summary.TotalReviews,
		AverageRating:      summary.AverageRating,
		RatingDistribution: toDistributionMap(summary.Distribution),
	})
}
