package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/event-ops/coffee-orders/internal/domain"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// RequireRole ensures the session role is one of the allowed roles. This
// duplicates the page gate on purpose: the API stays protected even if
// page routing changes.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok || !session.Authenticated {
			return apperrors.NewUnauthorized("session required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[session.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
