package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/event-ops/coffee-orders/internal/api/dto"
	"github.com/event-ops/coffee-orders/internal/auth"
	"github.com/event-ops/coffee-orders/internal/domain"
	"github.com/event-ops/coffee-orders/internal/service"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// CoffeeOptionsHandler manages the drink catalog endpoints.
type CoffeeOptionsHandler struct {
	service *service.MenuService
}

// NewCoffeeOptionsHandler constructs handler.
func NewCoffeeOptionsHandler(menuService *service.MenuService) *CoffeeOptionsHandler {
	return &CoffeeOptionsHandler{service: menuService}
}

// List GET /api/coffee-options. The enabled-only view is public so the
// registration form can load the menu; the full view is staff-only.
func (h *CoffeeOptionsHandler) List(c *fiber.Ctx) error {
	enabledOnly := c.Query("enabled_only") == "true"

	var (
		options []domain.CoffeeOption
		err     error
	)
	if enabledOnly {
		options, err = h.service.ListEnabled(c.Context())
	} else {
		if err := requireStaff(c); err != nil {
			return err
		}
		options, err = h.service.ListAll(c.Context())
	}
	if err != nil {
		return err
	}

	items := make([]dto.CoffeeOptionResponse, 0, len(options))
	for i := range options {
		items = append(items, dto.FromCoffeeOption(&options[i]))
	}
	return c.JSON(fiber.Map{"coffee_options": items})
}

// Toggle PATCH /api/coffee-options.
func (h *CoffeeOptionsHandler) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID == "" || req.Enabled == nil {
		return apperrors.NewValidationError("id and enabled are required", nil)
	}

	option, err := h.service.Toggle(c.Context(), req.ID, *req.Enabled)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "coffee_option": dto.FromCoffeeOption(option)})
}

func requireStaff(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok || !session.Authenticated {
		return apperrors.NewUnauthorized("session required")
	}
	if session.Role != domain.RoleBar && session.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("bar or admin role required")
	}
	return nil
}
