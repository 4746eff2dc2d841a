// ABOUTME: Conformance tests for Backend implementations.
// ABOUTME: Runs the same contract checks against memory, SQLite, and Badger.
package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "shoelog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	badger, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}

	return map[string]Backend{
		"memory": NewMemoryBackend(),
		"sqlite": sqlite,
		"badger": badger,
	}
}

func TestBackendContract(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if err := b.Close(); err != nil {
					t.Errorf("Close failed: %v", err)
				}
			}()

			// Absent collection reads as nil, not an error
			got, err := b.Get(CollectionShoes)
			if err != nil {
				t.Fatalf("Get on absent collection failed: %v", err)
			}
			if got != nil {
				t.Errorf("Expected nil for absent collection, got %q", got)
			}

			// Round trip
			doc := []byte(`[{"Name":"Pegasus"}]`)
			if err := b.Set(CollectionShoes, doc); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err = b.Get(CollectionShoes)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !bytes.Equal(got, doc) {
				t.Errorf("Round trip mismatch: got %q, want %q", got, doc)
			}

			// Overwrite replaces the document
			doc2 := []byte(`[]`)
			if err := b.Set(CollectionShoes, doc2); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}
			got, _ = b.Get(CollectionShoes)
			if !bytes.Equal(got, doc2) {
				t.Errorf("Overwrite mismatch: got %q, want %q", got, doc2)
			}

			// Collections are independent
			if err := b.Set(CollectionOrder, []byte(`["a"]`)); err != nil {
				t.Fatalf("Set order failed: %v", err)
			}
			got, _ = b.Get(CollectionShoes)
			if !bytes.Equal(got, doc2) {
				t.Errorf("Writing one collection disturbed another: got %q", got)
			}

			// Delete removes; deleting again is not an error
			if err := b.Delete(CollectionShoes); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			got, _ = b.Get(CollectionShoes)
			if got != nil {
				t.Errorf("Expected nil after delete, got %q", got)
			}
			if err := b.Delete(CollectionShoes); err != nil {
				t.Errorf("Delete of absent collection should be a no-op, got: %v", err)
			}
		})
	}
}

func TestMemoryBackendCopiesDocuments(t *testing.T) {
	m := NewMemoryBackend()
	doc := []byte(`["a"]`)
	if err := m.Set(CollectionOrder, doc); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Mutating the caller's slice must not affect stored state
	doc[2] = 'b'
	got, _ := m.Get(CollectionOrder)
	if string(got) != `["a"]` {
		t.Errorf("Stored document aliased caller memory: got %q", got)
	}

	// Mutating a returned slice must not affect stored state either
	got[2] = 'c'
	again, _ := m.Get(CollectionOrder)
	if string(again) != `["a"]` {
		t.Errorf("Returned document aliased stored memory: got %q", again)
	}
}
