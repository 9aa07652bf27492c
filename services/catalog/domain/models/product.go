package models

import (
	"fmt"
	"time"
)

// Product is the core aggregate for the catalog bounded context.
// ID is the document store's native key in hex form. Rating is derived state:
// it is recomputed from active reviews by the review service and overwritten
// in full on every review lifecycle event — never updated incrementally here.
// A nil Rating means the product has no active reviews.
type Product struct {
	ID            string
	Name          string
	Description   string
	Developer     string
	Category      string
	Price         float64
	Version       string
	Rating        *float64
	DownloadCount int64
	IconURL       string
	Screenshots   []string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	maxNameLength        = 255
	maxDescriptionLength = 2000
)

// NewProduct constructs a valid Product with current timestamps and no rating.
// The document store assigns the ID on insert.
func NewProduct(name, description, developer, category, version string, price float64) (*Product, error) {
	if name == "" || len(name) > maxNameLength {
		return nil, fmt.Errorf("product name must be 1-%d characters", maxNameLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("product description must not exceed %d characters", maxDescriptionLength)
	}
	if developer == "" {
		return nil, fmt.Errorf("product developer is required")
	}
	if category == "" {
		return nil, fmt.Errorf("product category is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("product price must not be negative")
	}

	now := time.Now().UTC()
	return &Product{
		Name:        name,
		Description: description,
		Developer:   developer,
		Category:    category,
		Price:       price,
		Version:     version,
		Screenshots: []string{},
		Tags:        []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
