// ABOUTME: Shoe model for tracked footwear with accumulated mileage.
// ABOUTME: Names are trimmed on creation; retirement is a one-way flag.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Shoe represents a tracked pair of footwear.
type Shoe struct {
	ID        uuid.UUID
	Name      string
	Retired   bool
	ImageData *string // base64-encoded, nil when no image attached
	CreatedAt time.Time
}

// NewShoe creates a new Shoe with generated UUID and current timestamp.
// The name is trimmed here; uniqueness is enforced by the store.
func NewShoe(name string) *Shoe {
	return &Shoe{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}
}

// WithImage attaches base64-encoded image data to the shoe.
func (s *Shoe) WithImage(data string) *Shoe {
	s.ImageData = &data
	return s
}
