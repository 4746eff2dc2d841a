// ABOUTME: Shared test helpers for store tests.
// ABOUTME: Builds stores over the in-memory backend with seeded shoes.
package store

import (
	"testing"

	"github.com/google/uuid"

	"github.com/harperreed/shoelog/internal/models"
	"github.com/harperreed/shoelog/internal/storage"
)

// newTestStore returns a store over a fresh in-memory backend.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(storage.NewMemoryBackend())
}

// addShoe adds a shoe and fails the test on error.
func addShoe(t *testing.T, s *Store, name string) *models.Shoe {
	t.Helper()
	shoe, err := s.AddShoe(name, nil)
	if err != nil {
		t.Fatalf("AddShoe(%q) failed: %v", name, err)
	}
	return shoe
}

// mustAddWorkout adds a workout and fails the test on error.
func mustAddWorkout(t *testing.T, s *Store, shoeID uuid.UUID, miles float64, date string) *models.Workout {
	t.Helper()
	w, _, err := s.AddWorkout(shoeID, miles, date)
	if err != nil {
		t.Fatalf("AddWorkout failed: %v", err)
	}
	return w
}
