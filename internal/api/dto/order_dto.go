package dto

import (
	"time"

	"github.com/event-ops/coffee-orders/internal/domain"
)

// CreateOrderRequest payload.
type CreateOrderRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	CompanySize string `json:"company_size"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Drink       string `json:"drink"`
	MilkType    string `json:"milk_type"`
}

// UpdateOrderStatusRequest payload.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderResponse mirrors the persisted order.
type OrderResponse struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Company     string             `json:"company"`
	Role        string             `json:"role"`
	CompanySize string             `json:"company_size"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Drink       string             `json:"drink"`
	MilkType    string             `json:"milk_type"`
	Status      domain.OrderStatus `json:"status"`
	PickupCode  string             `json:"pickup_code"`
	ReadyAt     *time.Time         `json:"ready_at"`
	DeliveredAt *time.Time         `json:"delivered_at"`
	DeletedAt   *time.Time         `json:"deleted_at"`
}

// FromOrder maps the domain order to its response shape.
func FromOrder(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		CreatedAt:   order.CreatedAt,
		FirstName:   order.FirstName,
		LastName:    order.LastName,
		Company:     order.Company,
		Role:        order.Role,
		CompanySize: order.CompanySize,
		Email:       order.Email,
		Phone:       order.Phone,
		Drink:       order.Drink,
		MilkType:    order.MilkType,
		Status:      order.Status,
		PickupCode:  order.PickupCode,
		ReadyAt:     order.ReadyAt,
		DeliveredAt: order.DeliveredAt,
		DeletedAt:   order.DeletedAt,
	}
}
