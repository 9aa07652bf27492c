package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/services/review/domain"
)

func TestNewComment(t *testing.T) {
	reviewID, userID := uuid.New(), uuid.New()

	t.Run("valid comment", func(t *testing.T) {
		comment, err := NewComment(reviewID, userID, "  works as advertised  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comment.Description != "works as advertised" {
			t.Fatalf("description not trimmed: %q", comment.Description)
		}
		if comment.ID == uuid.Nil || comment.CreatedAt.IsZero() {
			t.Fatal("id and created_at must be set")
		}
	})

	invalid := []struct {
		name        string
		reviewID    uuid.UUID
		userID      uuid.UUID
		description string
	}{
		{"blank description", reviewID, userID, "   "},
		{"oversized description", reviewID, userID, strings.Repeat("a", maxCommentLength+1)},
		{"missing review id", uuid.Nil, userID, "fine"},
		{"missing user id", reviewID, uuid.Nil, "fine"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewComment(tc.reviewID, tc.userID, tc.description); !errors.Is(err, domain.ErrInvalidComment) {
				t.Fatalf("expected ErrInvalidComment, got %v", err)
			}
		})
	}
}

func TestRatingDistribution(t *testing.T) {
	tests := []struct {
		name        string
		dist        RatingDistribution
		wantTotal   int
		wantAverage float64
	}{
		{"empty", RatingDistribution{}, 0, 0},
		{"single five star", RatingDistribution{0, 0, 0, 0, 1}, 1, 5},
		{"mixed rounds to two decimals", RatingDistribution{0, 0, 1, 1, 1}, 3, 4},
		{"repeating third rounds up", RatingDistribution{1, 0, 0, 0, 2}, 3, 3.67},
		{"skewed low", RatingDistribution{3, 1, 0, 0, 0}, 4, 1.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dist.Total(); got != tc.wantTotal {
				t.Fatalf("Total() = %d, want %d", got, tc.wantTotal)
			}
			if got := tc.dist.Average(); got != tc.wantAverage {
				t.Fatalf("Average() = %v, want %v", got, tc.wantAverage)
			}
		})
	}
}
