package handlers

import "github.com/gofiber/fiber/v2"

// PagesHandler serves the station pages. The markup itself is a thin
// placeholder; everything interesting happens through the API, and the
// page routes exist so the session gate has navigation to protect.
type PagesHandler struct{}

// NewPagesHandler constructs handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return sendPage(c, "home")
}

// Login GET /login.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return sendPage(c, "login")
}

// Unauthorized GET /unauthorized.
func (h *PagesHandler) Unauthorized(c *fiber.Ctx) error {
	return sendPage(c, "unauthorized")
}

// Register GET /register.
func (h *PagesHandler) Register(c *fiber.Ctx) error {
	return sendPage(c, "register")
}

// Bar GET /bar and /bar/coffee-management.
func (h *PagesHandler) Bar(c *fiber.Ctx) error {
	return sendPage(c, "bar")
}

// Admin GET /admin.
func (h *PagesHandler) Admin(c *fiber.Ctx) error {
	return sendPage(c, "admin")
}

func sendPage(c *fiber.Ctx, name string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<!doctype html><title>coffee-orders</title><div id=\"app\" data-page=\"" + name + "\"></div>")
}
