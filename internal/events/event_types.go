package events

import (
	"time"

	"github.com/event-ops/coffee-orders/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventOrderDeleted       EventType = "order_deleted"
	EventOptionToggled      EventType = "coffee_option_toggled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   string      `json:"order_id,omitempty"`
	Role      domain.Role `json:"role,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	Drink      string `json:"drink"`
	MilkType   string `json:"milk_type"`
	PickupCode string `json:"pickup_code"`
	Phone      string `json:"phone"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus  domain.OrderStatus `json:"old_status"`
	NewStatus  domain.OrderStatus `json:"new_status"`
	PickupCode string             `json:"pickup_code"`
	Phone      string             `json:"phone"`
}

// OrderDeletedPayload payload.
type OrderDeletedPayload struct {
	DeletedAt time.Time `json:"deleted_at"`
}

// OptionToggledPayload payload.
type OptionToggledPayload struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
