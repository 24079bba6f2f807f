package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/event-ops/coffee-orders/internal/api/http/handlers"
	"github.com/event-ops/coffee-orders/internal/auth"
	"github.com/event-ops/coffee-orders/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Pages             *handlers.PagesHandler
	Auth              *handlers.AuthHandler
	Orders            *handlers.OrdersHandler
	CoffeeOptions     *handlers.CoffeeOptionsHandler
	SessionMiddleware *auth.SessionMiddleware
	Gate              *auth.Gate
}

// RegisterRoutes wires HTTP routes. Pages go through the path-prefix gate;
// API handlers carry their own role checks on top of the session
// middleware, so the API stays protected independent of page routing.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(cfg.SessionMiddleware.Handle)

	// Pages.
	pages := app.Group("", auth.PageGate(cfg.Gate))
	pages.Get("/", cfg.Pages.Home)
	pages.Get("/login", cfg.Pages.Login)
	pages.Get("/unauthorized", cfg.Pages.Unauthorized)
	pages.Get("/register", cfg.Pages.Register)
	pages.Get("/bar", cfg.Pages.Bar)
	pages.Get("/bar/coffee-management", cfg.Pages.Bar)
	pages.Get("/admin", cfg.Pages.Admin)

	// API.
	api := app.Group("/api")
	api.Post("/auth/login", cfg.Auth.Login)
	api.Post("/auth/logout", cfg.Auth.Logout)

	api.Post("/orders", auth.RequireRole(domain.RoleRegister), cfg.Orders.Create)
	api.Get("/orders", auth.RequireRole(domain.RoleBar, domain.RoleAdmin), cfg.Orders.List)
	api.Patch("/orders/:id", auth.RequireRole(domain.RoleBar), cfg.Orders.UpdateStatus)
	api.Delete("/orders", auth.RequireRole(domain.RoleAdmin), cfg.Orders.Delete)
	api.Get("/export.csv", auth.RequireRole(domain.RoleAdmin), cfg.Orders.ExportCSV)

	// Enabled-only listing is public for the registration form; the
	// handler enforces staff access for the full catalog view.
	api.Get("/coffee-options", cfg.CoffeeOptions.List)
	api.Patch("/coffee-options", auth.RequireRole(domain.RoleBar, domain.RoleAdmin), cfg.CoffeeOptions.Toggle)
}
