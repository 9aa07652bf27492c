package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestKind_String(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindReviewCreated, "review.created"},
		{KindReviewUpdated, "review.updated"},
		{KindReviewDeleted, "review.deleted"},
		{Kind(99), "review.unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestEvent_KindAndProduct(t *testing.T) {
	now := time.Now().UTC()
	productID := "65a1b2c3d4e5f6a7b8c9d0e1"
	reviewID := uuid.New()

	var e Event

	e = ReviewCreated{ProductID: productID, ReviewID: reviewID, UserID: uuid.New(), Rating: 5, OccurredAt: now}
	if e.Kind() != KindReviewCreated || e.Product() != productID {
		t.Errorf("ReviewCreated: kind=%s product=%s", e.Kind(), e.Product())
	}

	e = ReviewUpdated{ProductID: productID, ReviewID: reviewID, Rating: 3, OccurredAt: now}
	if e.Kind() != KindReviewUpdated || e.Product() != productID {
		t.Errorf("ReviewUpdated: kind=%s product=%s", e.Kind(), e.Product())
	}

	e = ReviewDeleted{ProductID: productID, ReviewID: reviewID, OccurredAt: now}
	if e.Kind() != KindReviewDeleted || e.Product() != productID {
		t.Errorf("ReviewDeleted: kind=%s product=%s", e.Kind(), e.Product())
	}
}
