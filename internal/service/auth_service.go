package service

import (
	"time"

	"github.com/event-ops/coffee-orders/internal/auth"
	"github.com/event-ops/coffee-orders/internal/config"
	"github.com/event-ops/coffee-orders/internal/domain"
)

// AuthService resolves passcodes and issues session tokens.
type AuthService struct {
	verifier *auth.PasscodeVerifier
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		verifier: auth.NewPasscodeVerifier(cfg.Passcodes),
		tokenMgr: auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL()),
	}
}

// TokenManager exposes the underlying manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login resolves the passcode to a role and issues a session token. No
// server-side session record is created; the token is the whole session.
func (s *AuthService) Login(passcode string) (domain.Role, string, time.Time, error) {
	role, err := s.verifier.ResolveRole(passcode)
	if err != nil {
		return "", "", time.Time{}, err
	}
	token, expiresAt, err := s.tokenMgr.Issue(role)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return role, token, expiresAt, nil
}
