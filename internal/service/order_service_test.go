package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/event-ops/coffee-orders/internal/domain"
	"github.com/event-ops/coffee-orders/internal/events"
	"github.com/event-ops/coffee-orders/internal/repository"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

var pickupCodePattern = regexp.MustCompile(`^\d{4}$`)

func newTestOrderService() (*OrderService, *repository.MemoryOrderRepository, *repository.MemoryCoffeeOptionRepository) {
	orders := repository.NewMemoryOrderRepository()
	options := repository.NewMemoryCoffeeOptionRepository(domain.DefaultCatalog())
	svc := NewOrderService(OrderDependencies{
		OrderRepo:          orders,
		CoffeeOptionRepo:   options,
		Dispatcher:         events.NewInMemoryDispatcher(),
		DefaultCountryCode: "52",
	})
	return svc, orders, options
}

func validInput() OrderCreateInput {
	return OrderCreateInput{
		FirstName:   "Ana",
		LastName:    "García",
		Company:     "Acme",
		Role:        "Engineer",
		CompanySize: "51-200",
		Email:       "ana@acme.example",
		Phone:       "5512345678",
		Drink:       "Latte",
		MilkType:    "Whole",
	}
}

func TestCreateOrderHappyPath(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusQueued, order.Status)
	assert.Equal(t, "Whole", order.MilkType)
	assert.Equal(t, "+525512345678", order.Phone)
	assert.Regexp(t, pickupCodePattern, order.PickupCode)
	assert.NotEmpty(t, order.ID)
	assert.Nil(t, order.ReadyAt)
	assert.Nil(t, order.DeliveredAt)
	assert.Nil(t, order.DeletedAt)
}

func TestCreateOrderForcesNoMilkSentinel(t *testing.T) {
	svc, _, _ := newTestOrderService()

	// Espresso takes no milk: whatever was submitted is overridden.
	input := validInput()
	input.Drink = "Espresso"
	input.MilkType = "Oat"

	order, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, domain.MilkTypeNone, order.MilkType)
}

func TestCreateOrderDefaultsMissingMilkToSentinel(t *testing.T) {
	svc, _, _ := newTestOrderService()

	input := validInput()
	input.Drink = "Latte"
	input.MilkType = ""

	order, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, domain.MilkTypeNone, order.MilkType)
}

func TestCreateOrderDisabledDrink(t *testing.T) {
	svc, orders, options := newTestOrderService()

	_, err := options.SetEnabled(context.Background(), "4", false) // Latte
	require.NoError(t, err)

	input := validInput()
	input.Drink = "Latte"

	_, err = svc.Create(context.Background(), input)
	requireDomainCode(t, err, "DRINK_UNAVAILABLE")

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	available, ok := domainErr.Details["available_options"].([]string)
	require.True(t, ok)
	assert.NotContains(t, available, "Latte")
	assert.Contains(t, available, "Espresso")

	// Nothing reached persistence.
	stored, err := orders.List(context.Background(), repository.OrderFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateOrderUnknownDrink(t *testing.T) {
	svc, _, _ := newTestOrderService()

	input := validInput()
	input.Drink = "Cortado"

	_, err := svc.Create(context.Background(), input)
	requireDomainCode(t, err, "DRINK_UNAVAILABLE")
}

func TestCreateOrderMissingFields(t *testing.T) {
	svc, _, _ := newTestOrderService()

	input := validInput()
	input.Email = ""
	input.Company = "  "

	_, err := svc.Create(context.Background(), input)
	requireDomainCode(t, err, "VALIDATION_FAILED")

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	fields, ok := domainErr.Details["fields"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"email", "company"}, fields)
}

func TestCreateOrderInvalidPhone(t *testing.T) {
	svc, _, _ := newTestOrderService()

	input := validInput()
	input.Phone = "123"

	_, err := svc.Create(context.Background(), input)
	requireDomainCode(t, err, "INVALID_PHONE")
}

func TestUpdateStatusStampsReadyAndDelivered(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	ready, err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusReady, ready.Status)
	require.NotNil(t, ready.ReadyAt)
	assert.False(t, ready.ReadyAt.Before(ready.CreatedAt))
	assert.Nil(t, ready.DeliveredAt)

	delivered, err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)
	assert.False(t, delivered.DeliveredAt.Before(*delivered.ReadyAt))
}

func TestUpdateStatusPreservesFirstTimestamp(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	first, err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusReady)
	require.NoError(t, err)

	// Leaving and re-entering ready keeps the original stamp.
	_, err = svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusInProgress)
	require.NoError(t, err)
	again, err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, *first.ReadyAt, *again.ReadyAt)
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatus("cancelled"))
	requireDomainCode(t, err, "VALIDATION_FAILED")
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, _, _ := newTestOrderService()

	_, err := svc.UpdateStatus(context.Background(), "missing-id", domain.OrderStatusReady)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestSoftDeleteHidesFromListKeepsInExport(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), order.ID))

	listed, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, listed)

	exported, err := svc.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, exported, 1)
	assert.NotNil(t, exported[0].DeletedAt)
}

func TestSoftDeleteTwiceFails(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), order.ID))
	err = svc.SoftDelete(context.Background(), order.ID)
	requireDomainCode(t, err, "ALREADY_DELETED")
}

func TestSoftDeleteUnknownOrder(t *testing.T) {
	svc, _, _ := newTestOrderService()

	err := svc.SoftDelete(context.Background(), "missing-id")
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestUpdateStatusOnDeletedOrder(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(context.Background(), order.ID))

	_, err = svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusReady)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestListFiltersByStatusAndOrdersAscending(t *testing.T) {
	svc, _, _ := newTestOrderService()

	first, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), second.ID, domain.OrderStatusInProgress)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	status := domain.OrderStatusInProgress
	filtered, err := svc.List(context.Background(), &status)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)
}

func TestReadyNotificationFires(t *testing.T) {
	orders := repository.NewMemoryOrderRepository()
	options := repository.NewMemoryCoffeeOptionRepository(domain.DefaultCatalog())
	dispatcher := events.NewInMemoryDispatcher()

	var fired []events.OrderStatusChangedPayload
	dispatcher.Subscribe(events.EventOrderStatusChanged, func(_ context.Context, event events.Event) error {
		if payload, ok := event.Payload.(events.OrderStatusChangedPayload); ok {
			fired = append(fired, payload)
		}
		return nil
	})

	svc := NewOrderService(OrderDependencies{
		OrderRepo:          orders,
		CoffeeOptionRepo:   options,
		Dispatcher:         dispatcher,
		DefaultCountryCode: "52",
	})

	order, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusReady)
	require.NoError(t, err)

	require.Len(t, fired, 1)
	assert.Equal(t, domain.OrderStatusQueued, fired[0].OldStatus)
	assert.Equal(t, domain.OrderStatusReady, fired[0].NewStatus)
	assert.Equal(t, order.PickupCode, fired[0].PickupCode)
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %T", err)
	assert.Equal(t, code, domainErr.Code)
}
