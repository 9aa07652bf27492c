package events

import (
	"time"

	"github.com/google/uuid"
)

// Kind enumerates the review lifecycle events carried by the bus.
// The set is closed: adding an event means adding a variant here and a
// struct below, not registering an arbitrary type at runtime.
type Kind int

const (
	KindReviewCreated Kind = iota
	KindReviewUpdated
	KindReviewDeleted
)

// String returns the canonical topic-style name for the kind.
func (k Kind) String() string {
	switch k {
	case KindReviewCreated:
		return "review.created"
	case KindReviewUpdated:
		return "review.updated"
	case KindReviewDeleted:
		return "review.deleted"
	default:
		return "review.unknown"
	}
}

// Event is the closed sum of review lifecycle events. Only the three variants
// in this package implement it; consumers switch on Kind() or type-switch on
// the concrete variant. Events are immutable value types — construct once,
// never mutate.
type Event interface {
	Kind() Kind
	// Product returns the catalog product the event concerns.
	Product() string

	isEvent()
}

// ReviewCreated is published after a new review is persisted.
type ReviewCreated struct {
	ProductID  string
	ReviewID   uuid.UUID
	UserID     uuid.UUID
	Rating     int // 1..5, validated by the review domain before publish
	OccurredAt time.Time
}

func (e ReviewCreated) Kind() Kind      { return KindReviewCreated }
func (e ReviewCreated) Product() string { return e.ProductID }
func (e ReviewCreated) isEvent()        {}

// ReviewUpdated is published after a review's rating changes.
type ReviewUpdated struct {
	ProductID  string
	ReviewID   uuid.UUID
	Rating     int // the new rating value
	OccurredAt time.Time
}

func (e ReviewUpdated) Kind() Kind      { return KindReviewUpdated }
func (e ReviewUpdated) Product() string { return e.ProductID }
func (e ReviewUpdated) isEvent()        {}

// ReviewDeleted is published after a review is soft-deleted.
type ReviewDeleted struct {
	ProductID  string
	ReviewID   uuid.UUID
	OccurredAt time.Time
}

func (e ReviewDeleted) Kind() Kind      { return KindReviewDeleted }
func (e ReviewDeleted) Product() string { return e.ProductID }
func (e ReviewDeleted) isEvent()        {}
