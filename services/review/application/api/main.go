package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/app"
	"github.com/ghuser/appmarket/pkg/auth"
	"github.com/ghuser/appmarket/services/review/application/handlers"
	appsvcs "github.com/ghuser/appmarket/services/review/application/services"
)

// ReviewRoutes registers review endpoints on the provided chi router.
// Listing and reads are public; writes require an authenticated session.
func ReviewRoutes(r chi.Router, a *app.Application, products appsvcs.ProductChecker) *appsvcs.Services {
	svcs := appsvcs.New(a, products)
	requireAuth := auth.RequireAuth(a.SessionStore, a.Logger)

	r.Route("/products/{productID}/reviews", func(r chi.Router) {
		r.Get("/", handlers.NewListReviewsHandler(svcs).Execute)
		r.Get("/metrics", handlers.NewGetProductMetricsHandler(svcs).Execute)
		r.With(requireAuth).Post("/", handlers.NewPostReviewHandler(svcs).Execute)
	})

	r.Route("/reviews/{reviewID}", func(r chi.Router) {
		r.Get("/", handlers.NewGetReviewHandler(svcs).Execute)
		r.With(requireAuth).Put("/", handlers.NewPutReviewHandler(svcs).Execute)
		r.With(requireAuth).Delete("/", handlers.NewDeleteReviewHandler(svcs).Execute)

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", handlers.NewListCommentsHandler(svcs).Execute)
			r.With(requireAuth).Post("/", handlers.NewPostCommentHandler(svcs).Execute)
		})
	})

	return svcs
}
