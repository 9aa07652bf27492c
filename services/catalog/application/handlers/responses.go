package handlers

import (
	"time"

	"github.com/ghuser/appmarket/services/catalog/domain/models"
)

// ProductResponse is the JSON shape of a catalog product.
// Rating is null until the product has at least one active review.
type ProductResponse struct {
	ID            string    `json:"id"             example:"65a1b2c3d4e5f6a7b8c9d0e1"`
	Name          string    `json:"name"           example:"Photo Studio"`
	Description   string    `json:"description"    example:"Photo editing suite"`
	Developer     string    `json:"developer"      example:"Acme Labs"`
	Category      string    `json:"category"       example:"photography"`
	Price         float64   `json:"price"          example:"4.99"`
	Version       string    `json:"version"        example:"2.1.0"`
	Rating        *float64  `json:"rating"         example:"4.5"`
	DownloadCount int64     `json:"download_count" example:"10250"`
	IconURL       string    `json:"icon_url,omitempty"`
	Screenshots   []string  `json:"screenshots"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
} // @name ProductResponse

// ProductListResponse wraps a paginated product list.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"  example:"42"`
	Limit    int               `json:"limit"  example:"20"`
	Offset   int               `json:"offset" example:"0"`
} // @name ProductListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Developer:     p.Developer,
		Category:      p.Category,
		Price:         p.Price,
		Version:       p.Version,
		Rating:        p.Rating,
		DownloadCount: p.DownloadCount,
		IconURL:       p.IconURL,
		Screenshots:   p.Screenshots,
		Tags:          p.Tags,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
