// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Exercises tool handlers directly against an in-memory store.
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/harperreed/shoelog/internal/storage"
	"github.com/harperreed/shoelog/internal/store"
)

// setupTestServer builds a server over an in-memory store.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	st := store.New(storage.NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })

	server, err := NewServer(st)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
}

func TestHandleAddShoe(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleAddShoe(ctx, nil, addShoeInput{Name: "  Nike Air  "})
	if err != nil {
		t.Fatalf("handleAddShoe failed: %v", err)
	}
	if out.Name != "Nike Air" {
		t.Errorf("Expected trimmed name, got %q", out.Name)
	}
	if _, err := uuid.Parse(out.ID); err != nil {
		t.Errorf("Expected valid UUID in output, got %q", out.ID)
	}

	// Case-insensitive duplicate rejected
	_, _, err = server.handleAddShoe(ctx, nil, addShoeInput{Name: "nike air"})
	if err == nil {
		t.Error("Expected duplicate name error")
	}
}

func TestHandleLogWorkoutAndDuplicateFlag(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, shoe, err := server.handleAddShoe(ctx, nil, addShoeInput{Name: "Shoe X"})
	if err != nil {
		t.Fatalf("handleAddShoe failed: %v", err)
	}

	in := logWorkoutInput{ShoeID: shoe.ID, Miles: 3, Date: "2024-01-01"}
	_, first, err := server.handleLogWorkout(ctx, nil, in)
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}
	if first.IsDuplicate {
		t.Error("First workout flagged duplicate")
	}

	_, second, err := server.handleLogWorkout(ctx, nil, in)
	if err != nil {
		t.Fatalf("Second handleLogWorkout failed: %v", err)
	}
	if !second.IsDuplicate {
		t.Error("Identical workout not flagged duplicate")
	}
	if !strings.Contains(second.Message, "already existed") {
		t.Errorf("Expected duplicate warning in message, got %q", second.Message)
	}
}

func TestHandleLogWorkoutInvalidShoe(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	if _, _, err := server.handleLogWorkout(ctx, nil, logWorkoutInput{
		ShoeID: "not-a-uuid", Miles: 3, Date: "2024-01-01",
	}); err == nil {
		t.Error("Expected error for malformed shoe id")
	}

	if _, _, err := server.handleLogWorkout(ctx, nil, logWorkoutInput{
		ShoeID: uuid.New().String(), Miles: 3, Date: "2024-01-01",
	}); err == nil {
		t.Error("Expected error for unknown shoe id")
	}
}

func TestHandleDeleteShoeBlocked(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, shoe, _ := server.handleAddShoe(ctx, nil, addShoeInput{Name: "Shoe X"})
	_, _, err := server.handleLogWorkout(ctx, nil, logWorkoutInput{
		ShoeID: shoe.ID, Miles: 2, Date: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}

	_, out, err := server.handleDeleteShoe(ctx, nil, shoeIDInput{ShoeID: shoe.ID})
	if err != nil {
		t.Fatalf("handleDeleteShoe failed: %v", err)
	}
	if out.Deleted {
		t.Error("Expected delete to be blocked by logged workouts")
	}
}

func TestHandleListShoesWithTotals(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, a, _ := server.handleAddShoe(ctx, nil, addShoeInput{Name: "A"})
	_, b, _ := server.handleAddShoe(ctx, nil, addShoeInput{Name: "B"})

	for _, in := range []logWorkoutInput{
		{ShoeID: a.ID, Miles: 3, Date: "2024-01-01"},
		{ShoeID: a.ID, Miles: 4, Date: "2024-01-02"},
		{ShoeID: b.ID, Miles: 10, Date: "2024-01-01"},
	} {
		if _, _, err := server.handleLogWorkout(ctx, nil, in); err != nil {
			t.Fatalf("handleLogWorkout failed: %v", err)
		}
	}

	_, out, err := server.handleListShoes(ctx, nil, listShoesInput{})
	if err != nil {
		t.Fatalf("handleListShoes failed: %v", err)
	}
	if len(out.Shoes) != 2 {
		t.Fatalf("Expected 2 shoes, got %d", len(out.Shoes))
	}
	if out.Shoes[0].TotalMiles != 7 {
		t.Errorf("Expected total 7 for shoe A, got %v", out.Shoes[0].TotalMiles)
	}
	if out.Shoes[1].TotalMiles != 10 {
		t.Errorf("Expected total 10 for shoe B, got %v", out.Shoes[1].TotalMiles)
	}
}

func TestHandleSetOrder(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, a, _ := server.handleAddShoe(ctx, nil, addShoeInput{Name: "A"})
	_, b, _ := server.handleAddShoe(ctx, nil, addShoeInput{Name: "B"})

	_, _, err := server.handleSetOrder(ctx, nil, setOrderInput{ShoeIDs: []string{b.ID, a.ID}})
	if err != nil {
		t.Fatalf("handleSetOrder failed: %v", err)
	}

	_, out, _ := server.handleListShoes(ctx, nil, listShoesInput{})
	if out.Shoes[0].Name != "B" || out.Shoes[1].Name != "A" {
		t.Errorf("Expected order [B A], got [%s %s]", out.Shoes[0].Name, out.Shoes[1].Name)
	}
}

func TestShoesResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, shoe, _ := server.handleAddShoe(ctx, nil, addShoeInput{Name: "Pegasus"})
	if _, _, err := server.handleLogWorkout(ctx, nil, logWorkoutInput{
		ShoeID: shoe.ID, Miles: 5, Date: "2024-01-01",
	}); err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}

	result, err := server.handleShoesResource(ctx, nil)
	if err != nil {
		t.Fatalf("handleShoesResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content entry, got %d", len(result.Contents))
	}

	var payload struct {
		Count int `json:"count"`
		Shoes []struct {
			Name         string  `json:"name"`
			TotalMiles   float64 `json:"total_miles"`
			WorkoutCount int     `json:"workout_count"`
		} `json:"shoes"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("Resource payload is not valid JSON: %v", err)
	}
	if payload.Count != 1 || payload.Shoes[0].TotalMiles != 5 || payload.Shoes[0].WorkoutCount != 1 {
		t.Errorf("Unexpected resource payload: %+v", payload)
	}
}
