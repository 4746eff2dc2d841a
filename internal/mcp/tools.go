// ABOUTME: MCP tool implementations for the shoe mileage store.
// ABOUTME: Thin wrappers over store operations with typed inputs/outputs.
package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/shoelog/internal/models"
)

func (s *Server) registerTools() {
	// add_shoe
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_shoe",
		Description: "Add a new shoe to track mileage against",
	}, s.handleAddShoe)

	// list_shoes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_shoes",
		Description: "List all shoes in display order with total miles",
	}, s.handleListShoes)

	// retire_shoe
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "retire_shoe",
		Description: "Retire a shoe (one-way; history is kept)",
	}, s.handleRetireShoe)

	// delete_shoe
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_shoe",
		Description: "Delete a shoe; blocked while workouts reference it",
	}, s.handleDeleteShoe)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log miles on a shoe for a calendar date",
	}, s.handleLogWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts, optionally filtered by shoe",
	}, s.handleListWorkouts)

	// update_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Edit a workout's shoe, miles, and date",
	}, s.handleUpdateWorkout)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID",
	}, s.handleDeleteWorkout)

	// total_miles
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "total_miles",
		Description: "Total miles logged on a shoe",
	}, s.handleTotalMiles)

	// set_order
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_order",
		Description: "Replace the shoe display order",
	}, s.handleSetOrder)
}

// Tool input/output types

type addShoeInput struct {
	Name      string `json:"name" jsonschema:"Shoe name (unique ignoring case)"`
	ImageData string `json:"image_data,omitempty" jsonschema:"Optional base64-encoded image"`
}

type shoeOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listShoesInput struct{}

type shoeSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Retired    bool    `json:"retired"`
	TotalMiles float64 `json:"total_miles"`
}

type listShoesOutput struct {
	Shoes []shoeSummary `json:"shoes"`
}

type shoeIDInput struct {
	ShoeID string `json:"shoe_id" jsonschema:"Shoe UUID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type deleteShoeOutput struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

type logWorkoutInput struct {
	ShoeID string  `json:"shoe_id" jsonschema:"Shoe UUID"`
	Miles  float64 `json:"miles" jsonschema:"Miles run (>= 0)"`
	Date   string  `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type workoutOutput struct {
	ID          string `json:"id"`
	IsDuplicate bool   `json:"is_duplicate"`
	Message     string `json:"message"`
}

type listWorkoutsInput struct {
	ShoeID string `json:"shoe_id,omitempty" jsonschema:"Filter by shoe UUID"`
}

type workoutSummary struct {
	ID     string  `json:"id"`
	ShoeID string  `json:"shoe_id"`
	Miles  float64 `json:"miles"`
	Date   string  `json:"date"`
}

type listWorkoutsOutput struct {
	Workouts []workoutSummary `json:"workouts"`
}

type updateWorkoutInput struct {
	ID     string  `json:"id" jsonschema:"Workout UUID"`
	ShoeID string  `json:"shoe_id" jsonschema:"Shoe UUID"`
	Miles  float64 `json:"miles" jsonschema:"Miles run (>= 0)"`
	Date   string  `json:"date" jsonschema:"Calendar date (YYYY-MM-DD)"`
}

type workoutIDInput struct {
	ID string `json:"id" jsonschema:"Workout UUID"`
}

type totalMilesOutput struct {
	ShoeID     string  `json:"shoe_id"`
	TotalMiles float64 `json:"total_miles"`
}

type setOrderInput struct {
	ShoeIDs []string `json:"shoe_ids" jsonschema:"Shoe UUIDs in desired display order"`
}

// Tool handlers

func (s *Server) handleAddShoe(ctx context.Context, req *mcp.CallToolRequest, input addShoeInput) (*mcp.CallToolResult, shoeOutput, error) {
	var img *string
	if input.ImageData != "" {
		img = &input.ImageData
	}

	shoe, err := s.store.AddShoe(input.Name, img)
	if err != nil {
		return nil, shoeOutput{}, err
	}

	return nil, shoeOutput{
		ID:      shoe.ID.String(),
		Name:    shoe.Name,
		Message: fmt.Sprintf("Added shoe %q", shoe.Name),
	}, nil
}

func (s *Server) handleListShoes(ctx context.Context, req *mcp.CallToolRequest, input listShoesInput) (*mcp.CallToolResult, listShoesOutput, error) {
	shoes, err := s.store.ListShoesOrdered()
	if err != nil {
		return nil, listShoesOutput{}, err
	}

	out := listShoesOutput{Shoes: []shoeSummary{}}
	for _, shoe := range shoes {
		total, err := s.store.TotalMiles(shoe.ID)
		if err != nil {
			return nil, listShoesOutput{}, err
		}
		out.Shoes = append(out.Shoes, shoeSummary{
			ID:         shoe.ID.String(),
			Name:       shoe.Name,
			Retired:    shoe.Retired,
			TotalMiles: total,
		})
	}
	return nil, out, nil
}

func (s *Server) handleRetireShoe(ctx context.Context, req *mcp.CallToolRequest, input shoeIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := uuid.Parse(input.ShoeID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid shoe id: %s", input.ShoeID)
	}

	if err := s.store.RetireShoe(id); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Shoe retired"}, nil
}

func (s *Server) handleDeleteShoe(ctx context.Context, req *mcp.CallToolRequest, input shoeIDInput) (*mcp.CallToolResult, deleteShoeOutput, error) {
	id, err := uuid.Parse(input.ShoeID)
	if err != nil {
		return nil, deleteShoeOutput{}, fmt.Errorf("invalid shoe id: %s", input.ShoeID)
	}

	deleted, err := s.store.DeleteShoe(id)
	if err != nil {
		return nil, deleteShoeOutput{}, err
	}
	if !deleted {
		return nil, deleteShoeOutput{
			Deleted: false,
			Message: "Shoe has logged workouts; retire it instead",
		}, nil
	}
	return nil, deleteShoeOutput{Deleted: true, Message: "Shoe deleted"}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	id, err := uuid.Parse(input.ShoeID)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("invalid shoe id: %s", input.ShoeID)
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	}

	w, isDup, err := s.store.AddWorkout(id, input.Miles, date)
	if err != nil {
		return nil, workoutOutput{}, err
	}

	msg := fmt.Sprintf("Logged %.2f miles on %s", w.Miles, w.Date)
	if isDup {
		msg += " (identical workout already existed)"
	}
	return nil, workoutOutput{
		ID:          w.ID.String(),
		IsDuplicate: isDup,
		Message:     msg,
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	var workouts []models.Workout
	var err error

	if input.ShoeID != "" {
		id, perr := uuid.Parse(input.ShoeID)
		if perr != nil {
			return nil, listWorkoutsOutput{}, fmt.Errorf("invalid shoe id: %s", input.ShoeID)
		}
		workouts, err = s.store.ListWorkoutsForShoe(id)
	} else {
		workouts, err = s.store.ListWorkouts()
	}
	if err != nil {
		return nil, listWorkoutsOutput{}, err
	}

	out := listWorkoutsOutput{Workouts: []workoutSummary{}}
	for _, w := range workouts {
		out.Workouts = append(out.Workouts, workoutSummary{
			ID:     w.ID.String(),
			ShoeID: w.ShoeID.String(),
			Miles:  w.Miles,
			Date:   w.Date,
		})
	}
	return nil, out, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid workout id: %s", input.ID)
	}
	shoeID, err := uuid.Parse(input.ShoeID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid shoe id: %s", input.ShoeID)
	}

	if err := s.store.UpdateWorkout(id, shoeID, input.Miles, input.Date); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Workout updated"}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid workout id: %s", input.ID)
	}

	if err := s.store.DeleteWorkout(id); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Workout deleted"}, nil
}

func (s *Server) handleTotalMiles(ctx context.Context, req *mcp.CallToolRequest, input shoeIDInput) (*mcp.CallToolResult, totalMilesOutput, error) {
	id, err := uuid.Parse(input.ShoeID)
	if err != nil {
		return nil, totalMilesOutput{}, fmt.Errorf("invalid shoe id: %s", input.ShoeID)
	}

	total, err := s.store.TotalMiles(id)
	if err != nil {
		return nil, totalMilesOutput{}, err
	}
	return nil, totalMilesOutput{ShoeID: id.String(), TotalMiles: total}, nil
}

func (s *Server) handleSetOrder(ctx context.Context, req *mcp.CallToolRequest, input setOrderInput) (*mcp.CallToolResult, simpleOutput, error) {
	ids := make([]uuid.UUID, 0, len(input.ShoeIDs))
	for _, raw := range input.ShoeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid shoe id: %s", raw)
		}
		ids = append(ids, id)
	}

	if err := s.store.SetOrder(ids); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Display order updated"}, nil
}
