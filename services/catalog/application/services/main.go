package services

import (
	"github.com/ghuser/appmarket/pkg/app"
	"github.com/ghuser/appmarket/pkg/cache"
	"github.com/ghuser/appmarket/services/catalog/infrastructure/persistence/mongodb"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := mongodb.NewProductRepository(a.Catalog)
	productCache := cache.NewProductCache(a.Redis)
	return &Services{
		Product: NewProductService(repo, productCache),
	}
}
