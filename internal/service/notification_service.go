package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/event-ops/coffee-orders/internal/config"
	"github.com/event-ops/coffee-orders/internal/domain"
	"github.com/event-ops/coffee-orders/internal/events"
)

// NotificationService tells customers their order is ready. Delivery is a
// webhook stub; the bar view polling covers the in-venue screens.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
	n.dispatcher.Subscribe(events.EventOrderStatusChanged, n.handleOrderStatusChanged)
}

func (n *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderCreated", zap.String("order_id", event.OrderID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleOrderStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderStatusChanged", zap.String("order_id", event.OrderID), zap.Any("payload", event.Payload))

	payload, ok := event.Payload.(events.OrderStatusChangedPayload)
	if !ok || payload.NewStatus != domain.OrderStatusReady {
		return nil
	}
	n.sendPickupNotificationStub(ctx, event.OrderID, payload)
	return nil
}

func (n *NotificationService) sendPickupNotificationStub(_ context.Context, orderID string, payload events.OrderStatusChangedPayload) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendPickupNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("order_id", orderID),
		zap.String("pickup_code", payload.PickupCode),
		zap.String("phone", payload.Phone))
}
