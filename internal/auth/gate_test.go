package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/event-ops/coffee-orders/internal/domain"
)

func newTestGate(t *testing.T) (*Gate, map[domain.Role]string) {
	t.Helper()
	tm := NewTokenManager("gate-secret", time.Hour)
	gate := NewGate(tm)

	tokens := make(map[domain.Role]string)
	for _, role := range []domain.Role{domain.RoleRegister, domain.RoleBar, domain.RoleAdmin} {
		token, _, err := tm.Issue(role)
		require.NoError(t, err)
		tokens[role] = token
	}
	return gate, tokens
}

func TestGateAllowsPublicPathsWithoutToken(t *testing.T) {
	gate, _ := newTestGate(t)

	for _, path := range []string{"/", "/login", "/unauthorized", "/api/orders", "/assets/app.js", "/health/live"} {
		decision := gate.Decide(path, "")
		assert.Equal(t, DecisionAllow, decision.Kind, "path %s", path)
	}
}

func TestGateRoleMatch(t *testing.T) {
	gate, tokens := newTestGate(t)

	cases := []struct {
		path string
		role domain.Role
	}{
		{"/register", domain.RoleRegister},
		{"/bar", domain.RoleBar},
		{"/bar/coffee-management", domain.RoleBar},
		{"/admin", domain.RoleAdmin},
	}

	for _, tc := range cases {
		for role, token := range tokens {
			decision := gate.Decide(tc.path, token)
			if role == tc.role {
				assert.Equal(t, DecisionAllow, decision.Kind, "path %s role %s", tc.path, role)
			} else {
				assert.Equal(t, DecisionRedirectUnauthorized, decision.Kind, "path %s role %s", tc.path, role)
				assert.Equal(t, "/unauthorized", decision.Location)
			}
		}
	}
}

func TestGateMissingTokenRedirectsToLogin(t *testing.T) {
	gate, _ := newTestGate(t)

	decision := gate.Decide("/bar", "")
	assert.Equal(t, DecisionRedirectLogin, decision.Kind)
	assert.Equal(t, "/login?redirect=%2Fbar", decision.Location)
}

func TestGateInvalidTokenRedirectsToLogin(t *testing.T) {
	gate, _ := newTestGate(t)

	decision := gate.Decide("/admin", "garbage-token")
	assert.Equal(t, DecisionRedirectLogin, decision.Kind)
	assert.Equal(t, "/login?redirect=%2Fadmin", decision.Location)
}

func TestGateExpiredTokenRedirectsToLogin(t *testing.T) {
	expired := NewTokenManager("gate-secret", time.Millisecond)
	gate := NewGate(NewTokenManager("gate-secret", time.Hour))

	token, _, err := expired.Issue(domain.RoleBar)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	decision := gate.Decide("/bar", token)
	assert.Equal(t, DecisionRedirectLogin, decision.Kind)
}

func TestGateUnmappedPathStillRequiresSession(t *testing.T) {
	gate, tokens := newTestGate(t)

	// Non-public paths outside the role prefixes need a session but no
	// particular role.
	decision := gate.Decide("/registering", "")
	assert.Equal(t, DecisionRedirectLogin, decision.Kind)

	decision = gate.Decide("/registering", tokens[domain.RoleBar])
	assert.Equal(t, DecisionAllow, decision.Kind)
}
