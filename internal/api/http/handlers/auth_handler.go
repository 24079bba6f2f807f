package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/event-ops/coffee-orders/internal/api/dto"
	"github.com/event-ops/coffee-orders/internal/auth"
	"github.com/event-ops/coffee-orders/internal/service"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// AuthHandler exposes passcode login and logout.
type AuthHandler struct {
	auth         *service.AuthService
	limiter      *auth.LoginLimiter
	secureCookie bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, limiter *auth.LoginLimiter, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authService, limiter: limiter, secureCookie: secureCookie}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Passcode == "" {
		return apperrors.NewValidationError("passcode is required", nil)
	}

	if h.limiter != nil && !h.limiter.Allow(c.Context(), c.IP()) {
		return apperrors.NewTooManyRequests("too many login attempts")
	}

	role, token, expiresAt, err := h.auth.Login(req.Passcode)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.JSON(dto.LoginResponse{Success: true, Role: role})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}
