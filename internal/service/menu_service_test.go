package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/event-ops/coffee-orders/internal/domain"
	"github.com/event-ops/coffee-orders/internal/events"
	"github.com/event-ops/coffee-orders/internal/repository"
)

func newTestMenuService() *MenuService {
	options := repository.NewMemoryCoffeeOptionRepository(domain.DefaultCatalog())
	return NewMenuService(options, events.NewInMemoryDispatcher())
}

func TestMenuListAll(t *testing.T) {
	svc := newTestMenuService()

	options, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 9)

	// Catalog comes back in sort order.
	assert.Equal(t, "Espresso", options[0].Name)
	assert.Equal(t, "Iced Horchata Coffee", options[8].Name)
}

func TestMenuToggleDisablesOption(t *testing.T) {
	svc := newTestMenuService()

	option, err := svc.Toggle(context.Background(), "4", false)
	require.NoError(t, err)
	assert.Equal(t, "Latte", option.Name)
	assert.False(t, option.Enabled)

	enabled, err := svc.ListEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, enabled, 8)
	for _, opt := range enabled {
		assert.NotEqual(t, "Latte", opt.Name)
	}

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 9)
}

func TestMenuToggleReEnable(t *testing.T) {
	svc := newTestMenuService()

	_, err := svc.Toggle(context.Background(), "1", false)
	require.NoError(t, err)
	option, err := svc.Toggle(context.Background(), "1", true)
	require.NoError(t, err)
	assert.True(t, option.Enabled)
}

func TestMenuToggleUnknownID(t *testing.T) {
	svc := newTestMenuService()

	_, err := svc.Toggle(context.Background(), "999", true)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestMenuToggleEmitsEvent(t *testing.T) {
	options := repository.NewMemoryCoffeeOptionRepository(domain.DefaultCatalog())
	dispatcher := events.NewInMemoryDispatcher()

	var fired []events.OptionToggledPayload
	dispatcher.Subscribe(events.EventOptionToggled, func(_ context.Context, event events.Event) error {
		if payload, ok := event.Payload.(events.OptionToggledPayload); ok {
			fired = append(fired, payload)
		}
		return nil
	})

	svc := NewMenuService(options, dispatcher)
	_, err := svc.Toggle(context.Background(), "2", false)
	require.NoError(t, err)

	require.Len(t, fired, 1)
	assert.Equal(t, "Americano", fired[0].Name)
	assert.False(t, fired[0].Enabled)
}
