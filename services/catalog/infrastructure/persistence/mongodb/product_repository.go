package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghuser/appmarket/pkg/docstore"
	catalogdomain "github.com/ghuser/appmarket/services/catalog/domain"
	"github.com/ghuser/appmarket/services/catalog/domain/models"
	"github.com/ghuser/appmarket/services/catalog/domain/repositories"
)

// ProductRepository implements repositories.ProductRepository against the
// catalog's MongoDB products collection.
type ProductRepository struct {
	store *docstore.Client
}

// NewProductRepository returns a ProductRepository backed by the given store.
func NewProductRepository(store *docstore.Client) *ProductRepository {
	return &ProductRepository{store: store}
}

// productDoc is the BSON shape of a product document.
type productDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	Developer     string             `bson:"developer"`
	Category      string             `bson:"category"`
	Price         float64            `bson:"price"`
	Version       string             `bson:"version"`
	Rating        *float64           `bson:"rating"`
	DownloadCount int64              `bson:"download_count"`
	IconURL       string             `bson:"icon_url,omitempty"`
	Screenshots   []string           `bson:"screenshots"`
	Tags          []string           `bson:"tags"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// Save inserts a new product document and writes the assigned ID back onto
// the aggregate.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	doc := docFromProduct(product)
	doc.ID = primitive.NewObjectID()

	if _, err := r.store.Products().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = doc.ID.Hex()
	return nil
}

// GetByID retrieves a product by its hex ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", catalogdomain.ErrInvalidProductID, id)
	}

	var doc productDoc
	if err := r.store.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return docToProduct(&doc), nil
}

// Find retrieves a paginated product list, newest first, and the total count.
func (r *ProductRepository) Find(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	total, err := r.store.Products().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cur, err := r.store.Products().Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer cur.Close(ctx) //nolint:errcheck

	var products []*models.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, docToProduct(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}
	return products, int(total), nil
}

// Update persists changes to an existing product's editable fields.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return fmt.Errorf("%w: %q", catalogdomain.ErrInvalidProductID, product.ID)
	}

	res, err := r.store.Products().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"developer":   product.Developer,
		"category":    product.Category,
		"price":       product.Price,
		"version":     product.Version,
		"icon_url":    product.IconURL,
		"screenshots": product.Screenshots,
		"tags":        product.Tags,
		"updated_at":  product.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product document by ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", catalogdomain.ErrInvalidProductID, id)
	}

	res, err := r.store.Products().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

// Exists reports whether a product with the given ID exists.
func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%w: %q", catalogdomain.ErrInvalidProductID, id)
	}

	count, err := r.store.Products().CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return count > 0, nil
}

// SetRating overwrites the product's derived rating. A nil rating is stored
// as BSON null, not zero: "no active reviews" must round-trip as absent.
func (r *ProductRepository) SetRating(ctx context.Context, id string, rating *float64, updatedAt time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%w: %q", catalogdomain.ErrInvalidProductID, id)
	}

	res, err := r.store.Products().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"rating":     rating,
		"updated_at": updatedAt,
	}})
	if err != nil {
		return false, fmt.Errorf("set product rating: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func docFromProduct(p *models.Product) *productDoc {
	return &productDoc{
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

func docToProduct(doc *productDoc) *models.Product {
	return &models.Product{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		Description:   doc.Description,
		Developer:     doc.Developer,
		Category:      doc.Category,
		Price:         doc.Price,
		Version:       doc.Version,
		Rating:        doc.Rating,
		DownloadCount: doc.DownloadCount,
		IconURL:       doc.IconURL,
		Screenshots:   doc.Screenshots,
		Tags:          doc.Tags,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
