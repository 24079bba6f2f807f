package dto

import "github.com/event-ops/coffee-orders/internal/domain"

// LoginRequest payload for passcode login.
type LoginRequest struct {
	Passcode string `json:"passcode"`
}

// LoginResponse returns the resolved role; the token travels in the
// session cookie, not the body.
type LoginResponse struct {
	Success bool        `json:"success"`
	Role    domain.Role `json:"role"`
}
