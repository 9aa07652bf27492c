package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/appmarket/pkg/errhttp"
	"github.com/ghuser/appmarket/pkg/httpx"
	appsvcs "github.com/ghuser/appmarket/services/catalog/application/services"
	"github.com/ghuser/appmarket/services/catalog/domain/repositories"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListProductsHandler handles GET /products requests.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProductsHandler returns a ListProductsHandler backed by the given services.
func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute lists products with pagination and optional category filter.
//
//	@Summary		List products
//	@Description	Returns a paginated list of catalog products
//	@Tags			products
//	@Produce		json
//	@Param			limit		query		int		false	"Page size (max 100)"
//	@Param			offset		query		int		false	"Records to skip"
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{object}	ProductListResponse
//	@Router			/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := repositories.QueryOpts{
		Limit:    queryInt(r, "limit", defaultPageLimit),
		Offset:   queryInt(r, "offset", 0),
		Category: r.URL.Query().Get("category"),
	}
	if opts.Limit < 1 || opts.Limit > maxPageLimit {
		opts.Limit = defaultPageLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	products, total, err := h.svc.Product.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
		Total:    total,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p))
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
