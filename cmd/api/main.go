package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/event-ops/coffee-orders/internal/api/http"
	"github.com/event-ops/coffee-orders/internal/api/http/handlers"
	"github.com/event-ops/coffee-orders/internal/auth"
	"github.com/event-ops/coffee-orders/internal/config"
	"github.com/event-ops/coffee-orders/internal/events"
	"github.com/event-ops/coffee-orders/internal/observability"
	"github.com/event-ops/coffee-orders/internal/persistence"
	"github.com/event-ops/coffee-orders/internal/repository"
	"github.com/event-ops/coffee-orders/internal/service"
	"github.com/event-ops/coffee-orders/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	orderRepo := repository.NewOrderRepository(pool)
	optionRepo := repository.NewCoffeeOptionRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg)
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:          orderRepo,
		CoffeeOptionRepo:   optionRepo,
		Dispatcher:         dispatcher,
		DefaultCountryCode: cfg.Phone.DefaultCountryCode,
	})
	menuService := service.NewMenuService(optionRepo, dispatcher)

	tokens := authService.TokenManager()
	sessionMiddleware := auth.NewSessionMiddleware(tokens)
	gate := auth.NewGate(tokens)
	limiter := auth.NewLoginLimiter(redis.Client, logger, cfg.Login)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	secureCookie := cfg.App.Env == "production"
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Pages:             handlers.NewPagesHandler(),
		Auth:              handlers.NewAuthHandler(authService, limiter, secureCookie),
		Orders:            handlers.NewOrdersHandler(orderService),
		CoffeeOptions:     handlers.NewCoffeeOptionsHandler(menuService),
		SessionMiddleware: sessionMiddleware,
		Gate:              gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
