// ABOUTME: Error types for domain store constraint violations.
// ABOUTME: Name collisions are typed errors; not-found is never an error.
package store

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is the sentinel matched by errors.Is for name collisions.
var ErrDuplicateName = errors.New("duplicate shoe name")

// ErrShoeNotFound is returned when logging a workout against an unknown shoe.
var ErrShoeNotFound = errors.New("shoe not found")

// DuplicateNameError reports a case-insensitive shoe name collision on add.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a shoe named %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }
