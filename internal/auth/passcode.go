package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/event-ops/coffee-orders/internal/config"
	"github.com/event-ops/coffee-orders/internal/domain"
	apperrors "github.com/event-ops/coffee-orders/pkg/util"
)

// PasscodeVerifier resolves a shared passcode to a role. Roles are checked
// in a fixed priority order: register, then bar, then admin; the first
// match wins.
type PasscodeVerifier struct {
	secrets []roleSecret
}

type roleSecret struct {
	role   domain.Role
	secret string
}

// NewPasscodeVerifier builds a verifier from configured per-role secrets.
// Roles with an empty secret can never be resolved.
func NewPasscodeVerifier(cfg config.PasscodeConfig) *PasscodeVerifier {
	return &PasscodeVerifier{
		secrets: []roleSecret{
			{role: domain.RoleRegister, secret: cfg.Register},
			{role: domain.RoleBar, secret: cfg.Bar},
			{role: domain.RoleAdmin, secret: cfg.Admin},
		},
	}
}

// ResolveRole returns the role whose secret matches the passcode, or an
// INVALID_CREDENTIAL error when nothing matches.
func (v *PasscodeVerifier) ResolveRole(passcode string) (domain.Role, error) {
	if passcode == "" {
		return "", apperrors.NewInvalidCredential("passcode required")
	}
	for _, rs := range v.secrets {
		if rs.secret == "" {
			continue
		}
		if matchSecret(rs.secret, passcode) {
			return rs.role, nil
		}
	}
	return "", apperrors.NewInvalidCredential("invalid passcode")
}

// matchSecret compares the candidate against the configured secret.
// Secrets may be stored as bcrypt hashes; anything else compares as a
// plaintext shared passcode in constant time.
func matchSecret(secret, candidate string) bool {
	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) == 1
}
