package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/appmarket/pkg/cache"
	catalogdomain "github.com/ghuser/appmarket/services/catalog/domain"
	"github.com/ghuser/appmarket/services/catalog/domain/models"
	"github.com/ghuser/appmarket/services/catalog/domain/repositories"
)

// ProductService orchestrates catalog product CRUD.
// Reads are served from Redis cache when available; every mutation
// invalidates the cached entry so derived rating updates become visible.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *pkgcache.ProductCache
}

// NewProductService returns a ProductService wired with the given repository and cache.
func NewProductService(repo repositories.ProductRepository, productCache *pkgcache.ProductCache) *ProductService {
	return &ProductService{repo: repo, cache: productCache}
}

// CreateParams carries the editable fields for product creation.
type CreateParams struct {
	Name        string
	Description string
	Developer   string
	Category    string
	Price       float64
	Version     string
	IconURL     string
	Screenshots []string
	Tags        []string
}

// Create validates and persists a new Product.
func (s *ProductService) Create(ctx context.Context, p CreateParams) (*models.Product, error) {
	product, err := models.NewProduct(p.Name, p.Description, p.Developer, p.Category, p.Version, p.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	product.IconURL = p.IconURL
	if len(p.Screenshots) > 0 {
		product.Screenshots = p.Screenshots
	}
	if len(p.Tags) > 0 {
		product.Tags = p.Tags
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return product, nil
}

// GetByID retrieves a Product using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query the document store.
//  3. Asynchronously warm the cache with the store result.
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return productFromCache(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to the document store.
			_ = err
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), cacheFromProduct(product))
		}()
	}

	return product, nil
}

// List returns a paginated slice of products plus the total count.
func (s *ProductService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	products, total, err := s.repo.Find(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// UpdateParams carries the editable fields for product updates.
// Nil pointers mean "leave unchanged".
type UpdateParams struct {
	Name        *string
	Description *string
	Developer   *string
	Category    *string
	Price       *float64
	Version     *string
	IconURL     *string
	Screenshots []string
	Tags        []string
}

// Update applies the given changes to an existing product.
func (s *ProductService) Update(ctx context.Context, id string, p UpdateParams) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Developer != nil {
		product.Developer = *p.Developer
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Version != nil {
		product.Version = *p.Version
	}
	if p.IconURL != nil {
		product.IconURL = *p.IconURL
	}
	if p.Screenshots != nil {
		product.Screenshots = p.Screenshots
	}
	if p.Tags != nil {
		product.Tags = p.Tags
	}
	product.UpdatedAt = time.Now().UTC()

	if product.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", catalogdomain.ErrInvalidProduct)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", catalogdomain.ErrInvalidProduct)
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return product, nil
}

// Delete removes a product by ID. Returns ErrProductNotFound if absent.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

// Exists reports whether a product with the given ID exists.
func (s *ProductService) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// SetRating overwrites the product's derived rating. A nil rating means the
// product has no active reviews. Returns false when no product matched the
// id, letting callers distinguish orphaned writes from store failures.
func (s *ProductService) SetRating(ctx context.Context, id string, rating *float64) (bool, error) {
	matched, err := s.repo.SetRating(ctx, id, rating, time.Now().UTC())
	if err != nil {
		return false, err
	}
	if matched && s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
	return matched, nil
}

func productFromCache(c *pkgcache.CachedProduct) *models.Product {
	return &models.Product{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Developer:     c.Developer,
		Category:      c.Category,
		Price:         c.Price,
		Version:       c.Version,
		Rating:        c.Rating,
		DownloadCount: c.DownloadCount,
		IconURL:       c.IconURL,
		Screenshots:   c.Screenshots,
		Tags:          c.Tags,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func cacheFromProduct(p *models.Product) *pkgcache.CachedProduct {
	return &pkgcache.CachedProduct{
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
