// ABOUTME: Integration tests for the full storage-to-store stack.
// ABOUTME: Runs a complete workflow and verifies persistence across reopen.
package test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/harperreed/shoelog/internal/config"
	"github.com/harperreed/shoelog/internal/store"
)

func TestFullWorkflowPersists(t *testing.T) {
	for _, backend := range []string{"sqlite", "badger"} {
		t.Run(backend, func(t *testing.T) {
			dataDir := t.TempDir()
			cfg := &config.Config{Backend: backend, DataDir: dataDir}

			open := func() *store.Store {
				b, err := cfg.OpenStorage()
				if err != nil {
					t.Fatalf("OpenStorage failed: %v", err)
				}
				return store.New(b)
			}

			// Session one: build up some state
			s := open()
			peg, err := s.AddShoe("Nike Pegasus", nil)
			if err != nil {
				t.Fatalf("AddShoe failed: %v", err)
			}
			hoka, err := s.AddShoe("Hoka Clifton", nil)
			if err != nil {
				t.Fatalf("AddShoe failed: %v", err)
			}

			if _, _, err := s.AddWorkout(peg.ID, 6.2, "2024-04-01"); err != nil {
				t.Fatalf("AddWorkout failed: %v", err)
			}
			if _, _, err := s.AddWorkout(peg.ID, 3.1, "2024-04-02"); err != nil {
				t.Fatalf("AddWorkout failed: %v", err)
			}
			if err := s.RetireShoe(hoka.ID); err != nil {
				t.Fatalf("RetireShoe failed: %v", err)
			}
			if err := s.SetOrder([]uuid.UUID{hoka.ID, peg.ID}); err != nil {
				t.Fatalf("SetOrder failed: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			// Session two: everything survived the restart
			s = open()
			defer s.Close()

			shoes, err := s.ListShoesOrdered()
			if err != nil {
				t.Fatalf("ListShoesOrdered failed: %v", err)
			}
			if len(shoes) != 2 {
				t.Fatalf("Expected 2 shoes after reopen, got %d", len(shoes))
			}
			if shoes[0].Name != "Hoka Clifton" || shoes[1].Name != "Nike Pegasus" {
				t.Errorf("Order not preserved: [%s %s]", shoes[0].Name, shoes[1].Name)
			}
			if !shoes[0].Retired {
				t.Error("Retirement not preserved")
			}

			total, err := s.TotalMiles(peg.ID)
			if err != nil {
				t.Fatalf("TotalMiles failed: %v", err)
			}
			if total != 9.3 {
				t.Errorf("Expected total 9.3 after reopen, got %v", total)
			}

			// Delete semantics still hold against persisted state
			if deleted, _ := s.DeleteShoe(peg.ID); deleted {
				t.Error("Delete should be blocked by persisted workouts")
			}
			if deleted, _ := s.DeleteShoe(hoka.ID); !deleted {
				t.Error("Workout-free shoe should delete")
			}

			// Reset leaves nothing behind
			if err := s.ClearAll(); err != nil {
				t.Fatalf("ClearAll failed: %v", err)
			}
			if remaining, _ := s.ListShoes(); len(remaining) != 0 {
				t.Errorf("Expected no shoes after reset, got %d", len(remaining))
			}
		})
	}
}
