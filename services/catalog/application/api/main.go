package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/appmarket/pkg/app"
	"github.com/ghuser/appmarket/pkg/auth"
	"github.com/ghuser/appmarket/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/appmarket/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
// Product reads are public; mutations live under /admin behind session auth.
func CatalogRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
		r.Get("/{productID}", handlers.NewGetProductHandler(svcs).Execute)
	})

	r.Route("/admin/products", func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
		r.Put("/{productID}", handlers.NewPutProductHandler(svcs).Execute)
		r.Delete("/{productID}", handlers.NewDeleteProductHandler(svcs).Execute)
	})

	return svcs
}
