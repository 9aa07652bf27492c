package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	appsvcs "github.com/ghuser/appmarket/services/catalog/application/services"
)

// GetProductHandler handles GET /products/{productID} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute retrieves a single product.
//
//	@Summary		Get product
//	@Description	Retrieves a catalog product by ID
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		string	true	"Product ID (ObjectID hex)"
//	@Success		200			{object}	ProductResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/products/{productID} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.Product.GetByID(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
