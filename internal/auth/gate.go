package auth

import (
	"net/url"
	"strings"

	"github.com/event-ops/coffee-orders/internal/domain"
)

// DecisionKind is the outcome of a route authorization check.
type DecisionKind int

const (
	DecisionAllow DecisionKind = iota
	DecisionRedirectLogin
	DecisionRedirectUnauthorized
)

// Decision tells the transport layer what to do with a page request.
type Decision struct {
	Kind     DecisionKind
	Location string
}

var publicPrefixes = []string{
	"/login",
	"/unauthorized",
	"/api/",
	"/assets/",
	"/health",
}

var rolePrefixes = []struct {
	prefix string
	role   domain.Role
}{
	{"/register", domain.RoleRegister},
	{"/bar", domain.RoleBar},
	{"/admin", domain.RoleAdmin},
}

// Gate maps page paths to required roles. It is a pure decision function:
// no I/O beyond verifying the presented token.
type Gate struct {
	tokens *TokenManager
}

// NewGate constructs the route authorizer.
func NewGate(tokens *TokenManager) *Gate {
	return &Gate{tokens: tokens}
}

// Decide produces the authorization outcome for a page path and the raw
// session token (empty when absent). Public paths always pass. A missing
// or invalid token redirects to login with the original path preserved;
// a valid token with the wrong role redirects to the unauthorized page.
func (g *Gate) Decide(path, token string) Decision {
	if isPublicPath(path) {
		return Decision{Kind: DecisionAllow}
	}

	session, err := g.tokens.Verify(token)
	if err != nil {
		return Decision{
			Kind:     DecisionRedirectLogin,
			Location: "/login?redirect=" + url.QueryEscape(path),
		}
	}

	if required, gated := requiredRole(path); gated && session.Role != required {
		return Decision{Kind: DecisionRedirectUnauthorized, Location: "/unauthorized"}
	}
	return Decision{Kind: DecisionAllow}
}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func requiredRole(path string) (domain.Role, bool) {
	for _, rp := range rolePrefixes {
		if path == rp.prefix || strings.HasPrefix(path, rp.prefix+"/") {
			return rp.role, true
		}
	}
	return "", false
}
