package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/event-ops/coffee-orders/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	for _, role := range []domain.Role{domain.RoleRegister, domain.RoleBar, domain.RoleAdmin} {
		token, expiresAt, err := tm.Issue(role)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

		session, err := tm.Verify(token)
		require.NoError(t, err)
		assert.True(t, session.Authenticated)
		assert.Equal(t, role, session.Role)
	}
}

func TestVerifyRejectsMissingToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Verify("")
	assert.Error(t, err)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(domain.RoleBar)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Millisecond)

	token, _, err := tm.Issue(domain.RoleAdmin)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestTTLDefaultsTo24Hours(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	assert.Equal(t, 24*time.Hour, tm.TTL())
}
