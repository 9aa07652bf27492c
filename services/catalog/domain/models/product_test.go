package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	t.Run("returns product with no rating", func(t *testing.T) {
		p, err := NewProduct("Notes", "a notes app", "Acme", "productivity", "1.0.0", 2.99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Rating != nil {
			t.Fatalf("new product must start without a rating, got %v", *p.Rating)
		}
		if p.ID != "" {
			t.Fatalf("ID must be assigned by the store, got %q", p.ID)
		}
	})

	t.Run("sets timestamps to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		p, err := NewProduct("Notes", "", "Acme", "productivity", "1.0.0", 0)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CreatedAt.Before(before) || p.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", p.CreatedAt, before, after)
		}
		if !p.UpdatedAt.Equal(p.CreatedAt) {
			t.Fatal("UpdatedAt must equal CreatedAt on creation")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewProduct("", "", "Acme", "games", "1.0", 0); err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("rejects name over 255 characters", func(t *testing.T) {
		if _, err := NewProduct(strings.Repeat("x", 256), "", "Acme", "games", "1.0", 0); err == nil {
			t.Fatal("expected error for oversized name")
		}
	})

	t.Run("rejects missing developer", func(t *testing.T) {
		if _, err := NewProduct("Notes", "", "", "games", "1.0", 0); err == nil {
			t.Fatal("expected error for missing developer")
		}
	})

	t.Run("rejects missing category", func(t *testing.T) {
		if _, err := NewProduct("Notes", "", "Acme", "", "1.0", 0); err == nil {
			t.Fatal("expected error for missing category")
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		if _, err := NewProduct("Notes", "", "Acme", "games", "1.0", -0.01); err == nil {
			t.Fatal("expected error for negative price")
		}
	})

	t.Run("free products are allowed", func(t *testing.T) {
		if _, err := NewProduct("Notes", "", "Acme", "games", "1.0", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
