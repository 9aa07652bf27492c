// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/appmarket/pkg/httpx"
	catalogdomain "github.com/ghuser/appmarket/services/catalog/domain"
	reviewdomain "github.com/ghuser/appmarket/services/review/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, reviewdomain.ErrReviewNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, reviewdomain.ErrDuplicateReview):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrInvalidProductID),
		errors.Is(err, catalogdomain.ErrInvalidProduct),
		errors.Is(err, reviewdomain.ErrInvalidRating),
		errors.Is(err, reviewdomain.ErrInvalidReview),
		errors.Is(err, reviewdomain.ErrInvalidComment):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
