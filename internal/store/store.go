// ABOUTME: Domain store for shoes, workouts, and display order.
// ABOUTME: Sole gateway to the persisted collections; enforces all invariants.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/shoelog/internal/models"
	"github.com/harperreed/shoelog/internal/storage"
)

// Store owns all reads and writes to the persisted collections. It holds no
// cached or derived state; callers re-fetch after every mutation.
//
// Every mutation is a full read of the affected collection, an in-memory
// change, and a full write back. Uniqueness and referential checks depend on
// that full-collection visibility.
type Store struct {
	backend storage.Backend
}

// New creates a Store over the given backend.
func New(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// --- collection IO ---

// loadShoes reads the full shoes collection. A missing or corrupt document
// decodes to an empty collection so the tool stays usable after damage.
func (s *Store) loadShoes() ([]models.Shoe, error) {
	doc, err := s.backend.Get(storage.CollectionShoes)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var shoes []models.Shoe
	if err := json.Unmarshal(doc, &shoes); err != nil {
		return nil, nil
	}
	return shoes, nil
}

func (s *Store) saveShoes(shoes []models.Shoe) error {
	doc, err := json.Marshal(shoes)
	if err != nil {
		return fmt.Errorf("marshal shoes: %w", err)
	}
	return s.backend.Set(storage.CollectionShoes, doc)
}

func (s *Store) loadWorkouts() ([]models.Workout, error) {
	doc, err := s.backend.Get(storage.CollectionWorkouts)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var workouts []models.Workout
	if err := json.Unmarshal(doc, &workouts); err != nil {
		return nil, nil
	}
	return workouts, nil
}

func (s *Store) saveWorkouts(workouts []models.Workout) error {
	doc, err := json.Marshal(workouts)
	if err != nil {
		return fmt.Errorf("marshal workouts: %w", err)
	}
	return s.backend.Set(storage.CollectionWorkouts, doc)
}

func (s *Store) loadOrder() ([]uuid.UUID, error) {
	doc, err := s.backend.Get(storage.CollectionOrder)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var order []uuid.UUID
	if err := json.Unmarshal(doc, &order); err != nil {
		return nil, nil
	}
	return order, nil
}

func (s *Store) saveOrder(order []uuid.UUID) error {
	doc, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	return s.backend.Set(storage.CollectionOrder, doc)
}

// --- shoe operations ---

// ListShoes returns all shoes in storage order.
func (s *Store) ListShoes() ([]models.Shoe, error) {
	return s.loadShoes()
}

// ListShoesOrdered returns shoes in display order: the stored order merged
// against the current shoe set. This is the canonical view for display.
func (s *Store) ListShoesOrdered() ([]models.Shoe, error) {
	shoes, err := s.loadShoes()
	if err != nil {
		return nil, err
	}
	stored, err := s.loadOrder()
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Shoe, len(shoes))
	for _, sh := range shoes {
		byID[sh.ID] = sh
	}

	merged := mergeOrder(stored, shoes)
	ordered := make([]models.Shoe, 0, len(merged))
	for _, id := range merged {
		ordered = append(ordered, byID[id])
	}
	return ordered, nil
}

// GetShoe returns the shoe with the given id, or nil if absent.
func (s *Store) GetShoe(id uuid.UUID) (*models.Shoe, error) {
	shoes, err := s.loadShoes()
	if err != nil {
		return nil, err
	}
	for i := range shoes {
		if shoes[i].ID == id {
			sh := shoes[i]
			return &sh, nil
		}
	}
	return nil, nil
}

// AddShoe creates a shoe with a trimmed, case-insensitively unique name and
// appends its id to the display order. Retired shoes count toward uniqueness.
func (s *Store) AddShoe(name string, imageData *string) (*models.Shoe, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("shoe name must not be empty")
	}

	shoes, err := s.loadShoes()
	if err != nil {
		return nil, err
	}
	for _, sh := range shoes {
		if strings.EqualFold(sh.Name, trimmed) {
			return nil, &DuplicateNameError{Name: trimmed}
		}
	}

	shoe := models.NewShoe(trimmed)
	if imageData != nil {
		shoe.ImageData = imageData
	}

	shoes = append(shoes, *shoe)
	if err := s.saveShoes(shoes); err != nil {
		return nil, err
	}

	order, err := s.loadOrder()
	if err != nil {
		return nil, err
	}
	order = append(order, shoe.ID)
	if err := s.saveOrder(order); err != nil {
		return nil, err
	}

	return shoe, nil
}

// RetireShoe marks the shoe retired. Retirement is never reversed; calling
// again, or with an unknown id, is a no-op.
func (s *Store) RetireShoe(id uuid.UUID) error {
	shoes, err := s.loadShoes()
	if err != nil {
		return err
	}

	changed := false
	for i := range shoes {
		if shoes[i].ID == id {
			if !shoes[i].Retired {
				shoes[i].Retired = true
				changed = true
			}
			break
		}
	}
	if !changed {
		return nil
	}
	return s.saveShoes(shoes)
}

// DeleteShoe removes a workout-free shoe and its order entry. It returns
// false and mutates nothing while any workout still references the shoe.
// Deleting an unknown id is a no-op returning true.
func (s *Store) DeleteShoe(id uuid.UUID) (bool, error) {
	workouts, err := s.loadWorkouts()
	if err != nil {
		return false, err
	}
	for _, w := range workouts {
		if w.ShoeID == id {
			return false, nil
		}
	}

	shoes, err := s.loadShoes()
	if err != nil {
		return false, err
	}
	kept := make([]models.Shoe, 0, len(shoes))
	found := false
	for _, sh := range shoes {
		if sh.ID == id {
			found = true
			continue
		}
		kept = append(kept, sh)
	}
	if !found {
		return true, nil
	}
	if err := s.saveShoes(kept); err != nil {
		return false, err
	}

	order, err := s.loadOrder()
	if err != nil {
		return false, err
	}
	keptOrder := make([]uuid.UUID, 0, len(order))
	for _, oid := range order {
		if oid != id {
			keptOrder = append(keptOrder, oid)
		}
	}
	if err := s.saveOrder(keptOrder); err != nil {
		return false, err
	}

	return true, nil
}

// --- workout operations ---

// ListWorkouts returns all workouts in storage order.
func (s *Store) ListWorkouts() ([]models.Workout, error) {
	return s.loadWorkouts()
}

// GetWorkout returns the workout with the given id, or nil if absent.
func (s *Store) GetWorkout(id uuid.UUID) (*models.Workout, error) {
	workouts, err := s.loadWorkouts()
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if workouts[i].ID == id {
			w := workouts[i]
			return &w, nil
		}
	}
	return nil, nil
}

// ListWorkoutsForShoe returns the workouts referencing the given shoe,
// in storage order.
func (s *Store) ListWorkoutsForShoe(shoeID uuid.UUID) ([]models.Workout, error) {
	workouts, err := s.loadWorkouts()
	if err != nil {
		return nil, err
	}
	var filtered []models.Workout
	for _, w := range workouts {
		if w.ShoeID == shoeID {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// AddWorkout logs a workout against an existing shoe. The duplicate flag is
// advisory: it reports whether an identical shoe/date/miles record already
// existed before this insertion. The workout is persisted regardless.
func (s *Store) AddWorkout(shoeID uuid.UUID, miles float64, date string) (*models.Workout, bool, error) {
	if miles < 0 {
		return nil, false, fmt.Errorf("miles must be >= 0, got %v", miles)
	}
	normalized, err := models.ParseDate(date)
	if err != nil {
		return nil, false, err
	}

	shoe, err := s.GetShoe(shoeID)
	if err != nil {
		return nil, false, err
	}
	if shoe == nil {
		return nil, false, fmt.Errorf("%w: %s", ErrShoeNotFound, shoeID)
	}

	workouts, err := s.loadWorkouts()
	if err != nil {
		return nil, false, err
	}

	isDuplicate := false
	for _, w := range workouts {
		if w.ShoeID == shoeID && w.Date == normalized && w.Miles == miles {
			isDuplicate = true
			break
		}
	}

	workout := models.NewWorkout(shoeID, miles, normalized)
	workouts = append(workouts, *workout)
	if err := s.saveWorkouts(workouts); err != nil {
		return nil, false, err
	}

	return workout, isDuplicate, nil
}

// UpdateWorkout overwrites shoe, miles, and date and stamps UpdatedAt.
// An unknown id is a no-op, not an error.
func (s *Store) UpdateWorkout(id, shoeID uuid.UUID, miles float64, date string) error {
	if miles < 0 {
		return fmt.Errorf("miles must be >= 0, got %v", miles)
	}
	normalized, err := models.ParseDate(date)
	if err != nil {
		return err
	}

	workouts, err := s.loadWorkouts()
	if err != nil {
		return err
	}

	for i := range workouts {
		if workouts[i].ID == id {
			now := time.Now()
			workouts[i].ShoeID = shoeID
			workouts[i].Miles = miles
			workouts[i].Date = normalized
			workouts[i].UpdatedAt = &now
			return s.saveWorkouts(workouts)
		}
	}
	return nil
}

// DeleteWorkout removes the workout. An unknown id is a no-op.
func (s *Store) DeleteWorkout(id uuid.UUID) error {
	workouts, err := s.loadWorkouts()
	if err != nil {
		return err
	}

	kept := make([]models.Workout, 0, len(workouts))
	found := false
	for _, w := range workouts {
		if w.ID == id {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		return nil
	}
	return s.saveWorkouts(kept)
}

// --- aggregation ---

// TotalMiles sums miles across every workout logged on the shoe.
func (s *Store) TotalMiles(shoeID uuid.UUID) (float64, error) {
	workouts, err := s.ListWorkoutsForShoe(shoeID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, w := range workouts {
		total += w.Miles
	}
	return total, nil
}

// --- ordering ---

// Order returns the display order: the stored sequence healed against the
// current shoe set, or one lazily derived from the shoes if none is stored.
// Reading never mutates the stored order.
func (s *Store) Order() ([]uuid.UUID, error) {
	shoes, err := s.loadShoes()
	if err != nil {
		return nil, err
	}
	stored, err := s.loadOrder()
	if err != nil {
		return nil, err
	}
	return mergeOrder(stored, shoes), nil
}

// SetOrder replaces the stored order verbatim. Callers are expected to pass
// a permutation of current shoe ids; the healing read in Order protects
// against drift, so nothing is validated here.
func (s *Store) SetOrder(ids []uuid.UUID) error {
	return s.saveOrder(ids)
}

// --- reset ---

// ClearAll erases all three persisted collections.
func (s *Store) ClearAll() error {
	for _, c := range []string{
		storage.CollectionShoes,
		storage.CollectionWorkouts,
		storage.CollectionOrder,
	} {
		if err := s.backend.Delete(c); err != nil {
			return err
		}
	}
	return nil
}
