// ABOUTME: Unit tests for the Workout model and date parsing.
// ABOUTME: Covers ParseDate validation and constructor defaults.
package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-01-15",
			want:  "2024-01-15",
		},
		{
			name:    "datetime rejected",
			input:   "2024-01-15 08:30",
			wantErr: true,
		},
		{
			name:    "wrong order",
			input:   "15-01-2024",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "impossible day",
			input:   "2024-02-31",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewWorkoutDefaults(t *testing.T) {
	shoeID := uuid.New()
	w := NewWorkout(shoeID, 5.2, "2024-03-01")

	if w.ID == uuid.Nil {
		t.Error("Expected generated UUID, got nil UUID")
	}
	if w.ShoeID != shoeID {
		t.Errorf("ShoeID mismatch: got %v, want %v", w.ShoeID, shoeID)
	}
	if w.Miles != 5.2 {
		t.Errorf("Miles mismatch: got %v, want 5.2", w.Miles)
	}
	if w.Date != "2024-03-01" {
		t.Errorf("Date mismatch: got %q", w.Date)
	}
	if w.UpdatedAt != nil {
		t.Error("Expected UpdatedAt to be nil on a fresh workout")
	}
	if w.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestToday(t *testing.T) {
	got := Today()
	if _, err := ParseDate(got); err != nil {
		t.Errorf("Today() returned unparseable date %q: %v", got, err)
	}
}
