package handlers

import (
	"net/http"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/appmarket/pkg/validator"
	appsvcs "github.com/ghuser/appmarket/services/catalog/application/services"
)

// CreateProductRequest is the request body for POST /admin/products.
type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=1,max=255"  example:"Photo Studio"`
	Description string   `json:"description" validate:"max=2000"                example:"Photo editing suite"`
	Developer   string   `json:"developer"   validate:"required,min=1,max=255"  example:"Acme Labs"`
	Category    string   `json:"category"    validate:"required,min=1,max=100"  example:"photography"`
	Price       float64  `json:"price"       validate:"gte=0"                   example:"4.99"`
	Version     string   `json:"version"     validate:"max=50"                  example:"2.1.0"`
	IconURL     string   `json:"icon_url"    validate:"omitempty,url"`
	Screenshots []string `json:"screenshots" validate:"dive,url"`
	Tags        []string `json:"tags"        validate:"dive,min=1,max=50"`
} // @name CreateProductRequest

// PostProductHandler handles POST /admin/products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product.
//
//	@Summary		Create product
//	@Description	Creates a new catalog product (admin only)
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/admin/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Create(r.Context(), appsvcs.CreateParams{
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

	httpx.JSON(w, http.StatusCreated, toProductResponse(product))
}
