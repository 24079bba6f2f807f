package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/event-ops/coffee-orders/internal/domain"
	"github.com/event-ops/coffee-orders/internal/events"
	"github.com/event-ops/coffee-orders/internal/phone"
	"github.com/event-ops/coffee-orders/internal/repository"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// OrderService coordinates the order lifecycle.
type OrderService struct {
	orders             repository.OrderRepository
	options            repository.CoffeeOptionRepository
	dispatcher         events.Dispatcher
	defaultCountryCode string
}

// OrderDependencies bundles requirements for the order service.
type OrderDependencies struct {
	OrderRepo          repository.OrderRepository
	CoffeeOptionRepo   repository.CoffeeOptionRepository
	Dispatcher         events.Dispatcher
	DefaultCountryCode string
}

// OrderCreateInput describes the registration payload.
type OrderCreateInput struct {
	FirstName   string
	LastName    string
	Company     string
	Role        string
	CompanySize string
	Email       string
	Phone       string
	Drink       string
	MilkType    string
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:             deps.OrderRepo,
		options:            deps.CoffeeOptionRepo,
		dispatcher:         deps.Dispatcher,
		defaultCountryCode: deps.DefaultCountryCode,
	}
}

// Create validates and persists a new order with status queued.
func (s *OrderService) Create(ctx context.Context, input OrderCreateInput) (*domain.Order, error) {
	if err := validateRequired(input); err != nil {
		return nil, err
	}

	enabled, err := s.options.ListEnabled(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailable(err)
	}

	var selected *domain.CoffeeOption
	names := make([]string, 0, len(enabled))
	for i := range enabled {
		names = append(names, enabled[i].Name)
		if enabled[i].Name == input.Drink {
			selected = &enabled[i]
		}
	}
	if selected == nil {
		return nil, apperrors.NewDrinkUnavailable(input.Drink, names)
	}

	milkType := strings.TrimSpace(input.MilkType)
	if !selected.UsesMilk || milkType == "" {
		milkType = domain.MilkTypeNone
	}

	normalizedPhone, err := phone.Normalize(input.Phone, s.defaultCountryCode)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Company:     strings.TrimSpace(input.Company),
		Role:        strings.TrimSpace(input.Role),
		CompanySize: strings.TrimSpace(input.CompanySize),
		Email:       strings.TrimSpace(input.Email),
		Phone:       normalizedPhone,
		Drink:       input.Drink,
		MilkType:    milkType,
		Status:      domain.OrderStatusQueued,
		PickupCode:  generatePickupCode(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.NewUpstreamUnavailable(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventOrderCreated,
		OrderID: order.ID,
		Payload: events.OrderCreatedPayload{
			Drink:      order.Drink,
			MilkType:   order.MilkType,
			PickupCode: order.PickupCode,
			Phone:      order.Phone,
		},
	})
	return order, nil
}

// UpdateStatus moves a non-deleted order to the requested status, stamping
// ready_at and delivered_at the first time each state is reached.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError(
			"invalid status; must be one of: queued, in_progress, ready, delivered", nil)
	}

	order, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	oldStatus := order.Status
	order.Status = status
	switch status {
	case domain.OrderStatusReady:
		if order.ReadyAt == nil {
			order.ReadyAt = &now
		}
	case domain.OrderStatusDelivered:
		if order.DeliveredAt == nil {
			order.DeliveredAt = &now
		}
	}

	if err := s.orders.Update(ctx, order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, apperrors.NewUpstreamUnavailable(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventOrderStatusChanged,
		OrderID: order.ID,
		Payload: events.OrderStatusChangedPayload{
			OldStatus:  oldStatus,
			NewStatus:  status,
			PickupCode: order.PickupCode,
			Phone:      order.Phone,
		},
	})
	return order, nil
}

// SoftDelete marks the order deleted. Deleting an already-deleted order
// fails with ALREADY_DELETED.
func (s *OrderService) SoftDelete(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("order", nil)
		}
		return apperrors.NewUpstreamUnavailable(err)
	}
	if order.Deleted() {
		return apperrors.NewAlreadyDeleted("order")
	}

	now := time.Now()
	order.DeletedAt = &now
	if err := s.orders.Update(ctx, order); err != nil {
		return apperrors.NewUpstreamUnavailable(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventOrderDeleted,
		OrderID: order.ID,
		Payload: events.OrderDeletedPayload{DeletedAt: now},
	})
	return nil
}

// List returns non-deleted orders ascending by creation time, optionally
// filtered to one status.
func (s *OrderService) List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	if status != nil && !status.Valid() {
		status = nil
	}
	orders, err := s.orders.List(ctx, repository.OrderFilter{Status: status})
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailable(err)
	}
	return orders, nil
}

// Export returns every order, soft-deleted included, ascending by
// creation time.
func (s *OrderService) Export(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx, repository.OrderFilter{IncludeDeleted: true})
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailable(err)
	}
	return orders, nil
}

func (s *OrderService) getActive(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, apperrors.NewUpstreamUnavailable(err)
	}
	if order.Deleted() {
		return nil, apperrors.NewNotFound("order", nil)
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func validateRequired(input OrderCreateInput) error {
	missing := []string{}
	for name, value := range map[string]string{
		"first_name":   input.FirstName,
		"last_name":    input.LastName,
		"company":      input.Company,
		"role":         input.Role,
		"company_size": input.CompanySize,
		"email":        input.Email,
		"phone":        input.Phone,
		"drink":        input.Drink,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}
	return nil
}

// generatePickupCode draws a uniform random 4-digit code. Collisions are
// not detected; the code is a convenience handle, not an identifier.
func generatePickupCode() string {
	return fmt.Sprintf("%04d", 1000+rand.Intn(9000))
}
