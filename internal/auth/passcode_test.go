package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/event-ops/coffee-orders/internal/config"
	"github.com/event-ops/coffee-orders/internal/domain"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

func testPasscodes() config.PasscodeConfig {
	return config.PasscodeConfig{
		Register: "reg-pass",
		Bar:      "bar-pass",
		Admin:    "admin-pass",
	}
}

func TestResolveRolePerPasscode(t *testing.T) {
	v := NewPasscodeVerifier(testPasscodes())

	cases := []struct {
		passcode string
		want     domain.Role
	}{
		{"reg-pass", domain.RoleRegister},
		{"bar-pass", domain.RoleBar},
		{"admin-pass", domain.RoleAdmin},
	}
	for _, tc := range cases {
		role, err := v.ResolveRole(tc.passcode)
		require.NoError(t, err)
		assert.Equal(t, tc.want, role)
	}
}

func TestResolveRoleInvalidPasscode(t *testing.T) {
	v := NewPasscodeVerifier(testPasscodes())

	_, err := v.ResolveRole("wrong")
	assertDomainCode(t, err, "INVALID_CREDENTIAL")

	_, err = v.ResolveRole("")
	assertDomainCode(t, err, "INVALID_CREDENTIAL")
}

func TestResolveRolePriorityOrder(t *testing.T) {
	// Same secret for every role: register wins because it is checked first.
	v := NewPasscodeVerifier(config.PasscodeConfig{
		Register: "shared",
		Bar:      "shared",
		Admin:    "shared",
	})

	role, err := v.ResolveRole("shared")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRegister, role)
}

func TestResolveRoleSkipsEmptySecrets(t *testing.T) {
	v := NewPasscodeVerifier(config.PasscodeConfig{Admin: "only-admin"})

	role, err := v.ResolveRole("only-admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	_, err = v.ResolveRole("")
	assert.Error(t, err)
}

func TestResolveRoleBcryptSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewPasscodeVerifier(config.PasscodeConfig{Bar: string(hash)})

	role, err := v.ResolveRole("hashed-pass")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleBar, role)

	_, err = v.ResolveRole("wrong-pass")
	assertDomainCode(t, err, "INVALID_CREDENTIAL")
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, code, domainErr.Code)
}
