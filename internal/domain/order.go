package domain

import "time"

// OrderStatus enumerates the order lifecycle.
type OrderStatus string

const (
	OrderStatusQueued     OrderStatus = "queued"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Valid reports whether the status is one of the four lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusQueued, OrderStatusInProgress, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

// MilkTypeNone is the sentinel stored when a drink takes no milk,
// or when a milk drink was submitted without one.
const MilkTypeNone = "Sin leche"

// Order is the aggregate for a registered coffee order.
type Order struct {
	ID          string
	CreatedAt   time.Time
	FirstName   string
	LastName    string
	Company     string
	Role        string
	CompanySize string
	Email       string
	Phone       string
	Drink       string
	MilkType    string
	Status      OrderStatus
	PickupCode  string
	ReadyAt     *time.Time
	DeliveredAt *time.Time
	DeletedAt   *time.Time
}

// Deleted reports whether the order has been soft-deleted.
func (o *Order) Deleted() bool {
	return o.DeletedAt != nil
}
