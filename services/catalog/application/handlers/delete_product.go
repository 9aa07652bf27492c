package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/errhttp"
	appsvcs "github.com/ghuser/appmarket/services/catalog/application/services"
)

// DeleteProductHandler handles DELETE /admin/products/{productID} requests.
type DeleteProductHandler struct {
	svc *appsvcs.Services
}

// NewDeleteProductHandler returns a DeleteProductHandler backed by the given services.
func NewDeleteProductHandler(svc *appsvcs.Services) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc}
}

// Execute removes a product from the catalog.
//
//	@Summary		Delete product
//	@Description	Deletes a catalog product (admin only)
//	@Tags			products
//	@Param			productID	path	string	true	"Product ID (ObjectID hex)"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/admin/products/{productID} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Product.Delete(r.Context(), chi.URLParam(r, "productID")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
