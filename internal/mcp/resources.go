// ABOUTME: MCP resource implementations for the shoe mileage store.
// ABOUTME: Provides the shoelog://shoes dashboard resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// shoelog://shoes - ordered shoe list with totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "shoelog://shoes",
		Name:        "Shoe Mileage Dashboard",
		Description: "All shoes in display order with total miles and workout counts",
		MIMEType:    "application/json",
	}, s.handleShoesResource)
}

func (s *Server) handleShoesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	shoes, err := s.store.ListShoesOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to list shoes: %w", err)
	}

	entries := make([]map[string]interface{}, 0, len(shoes))
	for _, shoe := range shoes {
		workouts, err := s.store.ListWorkoutsForShoe(shoe.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list workouts: %w", err)
		}
		total, err := s.store.TotalMiles(shoe.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to total miles: %w", err)
		}
		entries = append(entries, map[string]interface{}{
			"id":            shoe.ID.String(),
			"name":          shoe.Name,
			"retired":       shoe.Retired,
			"total_miles":   total,
			"workout_count": len(workouts),
		})
	}

	result := map[string]interface{}{
		"shoes": entries,
		"count": len(entries),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "shoelog://shoes",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
