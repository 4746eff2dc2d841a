// ABOUTME: Backend interface for collection-document storage.
// ABOUTME: Each named collection round-trips as one serialized document.
package storage

import (
	"os"
	"path/filepath"
)

// Collection names. Each holds one self-contained JSON document.
const (
	CollectionShoes    = "shoes"
	CollectionWorkouts = "workouts"
	CollectionOrder    = "shoe_order"
)

// Backend stores each named collection as a single document.
// This interface allows swapping implementations (e.g., for testing).
//
// Get returns (nil, nil) when the collection has never been written;
// callers treat absence as an empty collection.
type Backend interface {
	Get(collection string) ([]byte, error)
	Set(collection string, doc []byte) error
	Delete(collection string) error
	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "shoelog")
}
