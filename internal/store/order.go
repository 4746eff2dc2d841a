// ABOUTME: Self-healing merge of the stored display order against current shoes.
// ABOUTME: Pure function: drops stale ids, appends unordered ids, dedupes.
package store

import (
	"github.com/google/uuid"

	"github.com/harperreed/shoelog/internal/models"
)

// mergeOrder reconciles a stored display order against the current shoe set.
// Stale ids (no longer existing) and repeats are dropped; shoes missing from
// the stored order are appended in shoe-collection order. The result contains
// every current shoe id exactly once.
func mergeOrder(stored []uuid.UUID, shoes []models.Shoe) []uuid.UUID {
	current := make(map[uuid.UUID]bool, len(shoes))
	for _, s := range shoes {
		current[s.ID] = true
	}

	merged := make([]uuid.UUID, 0, len(shoes))
	seen := make(map[uuid.UUID]bool, len(shoes))
	for _, id := range stored {
		if current[id] && !seen[id] {
			merged = append(merged, id)
			seen[id] = true
		}
	}
	for _, s := range shoes {
		if !seen[s.ID] {
			merged = append(merged, s.ID)
		}
	}
	return merged
}
