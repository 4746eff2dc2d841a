// ABOUTME: Shared CLI helpers for id-prefix resolution and formatting.
// ABOUTME: The store works on full UUIDs; prefixes are a CLI convenience.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/shoelog/internal/models"
)

// resolveShoe finds a shoe by id prefix or case-insensitive name match.
// Returns an error when nothing or more than one shoe matches.
func resolveShoe(idOrName string) (*models.Shoe, error) {
	shoes, err := st.ListShoes()
	if err != nil {
		return nil, err
	}

	var matches []models.Shoe
	for _, s := range shoes {
		if strings.HasPrefix(s.ID.String(), strings.ToLower(idOrName)) ||
			strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(idOrName)) {
			matches = append(matches, s)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no shoe matches %q", idOrName)
	}
	if len(matches) > 1 {
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, fmt.Errorf("ambiguous %q: matches %s", idOrName, strings.Join(names, ", "))
	}
	return &matches[0], nil
}

// resolveWorkout finds a workout by id prefix.
func resolveWorkout(idOrPrefix string) (*models.Workout, error) {
	workouts, err := st.ListWorkouts()
	if err != nil {
		return nil, err
	}

	var matches []models.Workout
	for _, w := range workouts {
		if strings.HasPrefix(w.ID.String(), strings.ToLower(idOrPrefix)) {
			matches = append(matches, w)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no workout matches %q", idOrPrefix)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %q: matches multiple workouts", idOrPrefix)
	}
	return &matches[0], nil
}

// parseMiles parses a non-negative mileage value.
func parseMiles(s string) (float64, error) {
	miles, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid miles: %s", s)
	}
	if miles < 0 {
		return 0, fmt.Errorf("miles must be >= 0, got %s", s)
	}
	return miles, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
