package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/event-ops/coffee-orders/internal/domain"
)

const sessionKey = "auth_session"

// CookieName is the HTTP-only cookie carrying the session token.
const CookieName = "auth-token"

// SessionMiddleware verifies the session cookie when present and stores
// the session in request locals. It never rejects: absent or invalid
// tokens simply leave no session, and role checks happen downstream.
type SessionMiddleware struct {
	tokens *TokenManager
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Handle attaches the verified session, if any, to the request.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(CookieName)
	if token != "" {
		if session, err := m.tokens.Verify(token); err == nil {
			c.Locals(sessionKey, session)
		}
	}
	return c.Next()
}

// PageGate applies the route authorizer to page navigation.
func PageGate(gate *Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := gate.Decide(c.Path(), c.Cookies(CookieName))
		switch decision.Kind {
		case DecisionRedirectLogin, DecisionRedirectUnauthorized:
			return c.Redirect(decision.Location, fiber.StatusFound)
		default:
			return c.Next()
		}
	}
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}
