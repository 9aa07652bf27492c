// Package subscribers contains event handlers for the review context.
//
// The rating aggregator keeps the catalog's denormalized product rating in
// sync with review activity. Delivery is best-effort: a missed event leaves
// a stale rating until the next review mutation triggers a fresh rescan.
package subscribers

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ghuser/appmarket/pkg/events"
	"github.com/ghuser/appmarket/pkg/logger"
	catalogdomain "github.com/ghuser/appmarket/services/catalog/domain"
)

// ReviewReader provides the rating values needed for aggregation.
type ReviewReader interface {
	ActiveRatings(ctx context.Context, productID string) ([]int, error)
}

// CatalogRatings writes derived ratings into the catalog. Matched reports
// whether a product row was found for the id.
type CatalogRatings interface {
	SetRating(ctx context.Context, productID string, rating *float64) (bool, error)
}

// RatingAggregator recomputes a product's average rating whenever one of its
// reviews changes. Each recomputation rescans all active ratings rather than
// applying deltas, so handlers are idempotent and self-healing: any event,
// replayed or dropped-then-followed, converges on the same stored value.
//
// Catalog writes are funneled through the bridge so they execute serially on
// the bridge owner's goroutine even when many pool workers fire at once.
type RatingAggregator struct {
	reviews ReviewReader
	catalog CatalogRatings
	bridge  *events.Bridge
	log     logger.Logger
}

// NewRatingAggregator returns a RatingAggregator wired to the given stores and bridge.
func NewRatingAggregator(reviews ReviewReader, catalog CatalogRatings, bridge *events.Bridge, log logger.Logger) *RatingAggregator {
	return &RatingAggregator{reviews: reviews, catalog: catalog, bridge: bridge, log: log}
}

// Setup subscribes the aggregator to every review event kind on the bus.
func Setup(bus *events.Bus, agg *RatingAggregator) {
	bus.Subscribe(events.KindReviewCreated, agg.Handle)
	bus.Subscribe(events.KindReviewUpdated, agg.Handle)
	bus.Subscribe(events.KindReviewDeleted, agg.Handle)
}

// Handle recomputes the product rating for any review event. The event kind
// and payload beyond the product id are irrelevant because the recomputation
// is a full rescan.
func (a *RatingAggregator) Handle(ctx context.Context, e events.Event) error {
	return a.recompute(ctx, e.Product())
}

func (a *RatingAggregator) recompute(ctx context.Context, productID string) error {
	ratings, err := a.reviews.ActiveRatings(ctx, productID)
	if err != nil {
		return fmt.Errorf("load active ratings: %w", err)
	}

	rating := average(ratings)

	return a.bridge.Call(ctx, func(ctx context.Context) error {
		matched, err := a.catalog.SetRating(ctx, productID, rating)
		if err != nil {
			// A malformed product id can never match a product; there is
			// nothing to retry or escalate.
			if errors.Is(err, catalogdomain.ErrInvalidProductID) {
				a.log.WarnContext(ctx, "skipping rating write for malformed product id",
					"product_id", productID)
				return nil
			}
			return fmt.Errorf("write product rating: %w", err)
		}
		if !matched {
			// Reviews referencing a product that no longer exists. The write
			// is a no-op; surfacing it helps spot catalog/review drift.
			a.log.WarnContext(ctx, "rating write matched no product",
				"product_id", productID)
		}
		return nil
	})
}

// average returns the mean of ratings rounded to two decimal places,
// or nil when there are no ratings.
func average(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	rounded := math.Round(mean*100) / 100
	return &rounded
}
