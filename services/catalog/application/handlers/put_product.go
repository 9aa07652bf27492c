package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/appmarket/pkg/validator"
	appsvcs "github.com/ghuser/appmarket/services/catalog/application/services"
)

// UpdateProductRequest is the request body for PUT /admin/products/{productID}.
// Omitted fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Developer   *string  `json:"developer"   validate:"omitempty,min=1,max=255"`
	Category    *string  `json:"category"    validate:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Version     *string  `json:"version"     validate:"omitempty,max=50"`
	IconURL     *string  `json:"icon_url"    validate:"omitempty,url"`
	Screenshots []string `json:"screenshots" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags"        validate:"omitempty,dive,min=1,max=50"`
} // @name UpdateProductRequest

// PutProductHandler handles PUT /admin/products/{productID} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
}

// NewPutProductHandler returns a PutProductHandler backed by the given services.
func NewPutProductHandler(svc *appsvcs.Services) *PutProductHandler {
	return &PutProductHandler{svc: svc}
}

// Execute updates an existing product.
//
//	@Summary		Update product
//	@Description	Updates an existing catalog product (admin only)
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		string					true	"Product ID (ObjectID hex)"
//	@Param			request		body		UpdateProductRequest	true	"Fields to update"
//	@Success		200			{object}	ProductResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/admin/products/{productID} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Update(r.Context(), chi.URLParam(r, "productID"), appsvcs.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Developer:   req.Developer,
		Category:    req.Category,
		Price:       req.Price,
		Version:     req.Version,
		IconURL:     req.IconURL,
		Screenshots: req.Screenshots,
		Tags:        req.Tags,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
