package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/event-ops/coffee-orders/internal/domain"
	"github.com/event-ops/coffee-orders/internal/events"
	"github.com/event-ops/coffee-orders/internal/repository"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// MenuService manages the drink catalog.
type MenuService struct {
	options    repository.CoffeeOptionRepository
	dispatcher events.Dispatcher
}

// NewMenuService constructs the service.
func NewMenuService(options repository.CoffeeOptionRepository, dispatcher events.Dispatcher) *MenuService {
	return &MenuService{options: options, dispatcher: dispatcher}
}

// ListAll returns the full catalog in sort order.
func (s *MenuService) ListAll(ctx context.Context) ([]domain.CoffeeOption, error) {
	options, err := s.options.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailable(err)
	}
	return options, nil
}

// ListEnabled returns the options currently offered to attendees.
func (s *MenuService) ListEnabled(ctx context.Context) ([]domain.CoffeeOption, error) {
	options, err := s.options.ListEnabled(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailable(err)
	}
	return options, nil
}

// Toggle enables or disables one option.
func (s *MenuService) Toggle(ctx context.Context, id string, enabled bool) (*domain.CoffeeOption, error) {
	option, err := s.options.SetEnabled(ctx, id, enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("coffee option", nil)
		}
		return nil, apperrors.NewUpstreamUnavailable(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOptionToggled,
			Timestamp: time.Now(),
			Payload:   events.OptionToggledPayload{Name: option.Name, Enabled: option.Enabled},
		})
	}
	return option, nil
}
