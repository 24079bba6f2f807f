package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/event-ops/coffee-orders/internal/api/dto"
	"github.com/event-ops/coffee-orders/internal/domain"
	"github.com/event-ops/coffee-orders/internal/service"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// OrdersHandler manages order endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// Create POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.service.Create(c.Context(), service.OrderCreateInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Company:     req.Company,
		Role:        req.Role,
		CompanySize: req.CompanySize,
		Email:       req.Email,
		Phone:       req.Phone,
		Drink:       req.Drink,
		MilkType:    req.MilkType,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"order":       dto.FromOrder(order),
		"pickup_code": order.PickupCode,
	})
}

// List GET /api/orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		candidate := domain.OrderStatus(raw)
		if candidate.Valid() {
			status = &candidate
		}
	}

	orders, err := h.service.List(c.Context(), status)
	if err != nil {
		return err
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.FromOrder(&orders[i]))
	}
	return c.JSON(fiber.Map{"orders": items})
}

// UpdateStatus PATCH /api/orders/:id.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.service.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "order": dto.FromOrder(order)})
}

// Delete DELETE /api/orders?id=.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return apperrors.NewValidationError("order id is required", nil)
	}
	if err := h.service.SoftDelete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ExportCSV GET /api/export.csv.
func (h *OrdersHandler) ExportCSV(c *fiber.Ctx) error {
	orders, err := h.service.Export(c.Context())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.SendString(service.RenderOrdersCSV(orders))
}
