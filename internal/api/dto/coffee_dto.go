package dto

import "github.com/event-ops/coffee-orders/internal/domain"

// ToggleOptionRequest payload.
type ToggleOptionRequest struct {
	ID      string `json:"id"`
	Enabled *bool  `json:"enabled"`
}

// CoffeeOptionResponse mirrors a catalog entry.
type CoffeeOptionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	UsesMilk    bool   `json:"uses_milk"`
	Enabled     bool   `json:"enabled"`
	SortOrder   int    `json:"sort_order"`
}

// FromCoffeeOption maps a domain option to its response shape.
func FromCoffeeOption(option *domain.CoffeeOption) CoffeeOptionResponse {
	return CoffeeOptionResponse{
		ID:          option.ID,
		Name:        option.Name,
		DisplayName: option.DisplayName,
		UsesMilk:    option.UsesMilk,
		Enabled:     option.Enabled,
		SortOrder:   option.SortOrder,
	}
}
