// ABOUTME: Workout model for a single logged cardio session.
// ABOUTME: Dates are calendar dates (YYYY-MM-DD) with no time component.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for workout dates.
const DateLayout = "2006-01-02"

// Workout represents a single logged cardio session on a shoe.
type Workout struct {
	ID        uuid.UUID
	ShoeID    uuid.UUID
	Miles     float64
	Date      string // YYYY-MM-DD
	CreatedAt time.Time
	UpdatedAt *time.Time // set on edit only
}

// NewWorkout creates a new Workout with generated UUID and current timestamp.
func NewWorkout(shoeID uuid.UUID, miles float64, date string) *Workout {
	return &Workout{
		ID:        uuid.New(),
		ShoeID:    shoeID,
		Miles:     miles,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// ParseDate validates a calendar date and normalizes it to YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t.Format(DateLayout), nil
}

// Today returns the current calendar date in YYYY-MM-DD form.
func Today() string {
	return time.Now().Format(DateLayout)
}
