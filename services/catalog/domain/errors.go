package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProductID indicates the product id is not a valid catalog key
	// (24-character ObjectID hex).
	ErrInvalidProductID = errors.New("invalid product id")

	// ErrInvalidProduct indicates the product violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")
)
