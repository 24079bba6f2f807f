package domain

import "time"

// Role identifies which station a session is bound to.
type Role string

const (
	RoleRegister Role = "register"
	RoleBar      Role = "bar"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the three known stations.
func (r Role) Valid() bool {
	switch r {
	case RoleRegister, RoleBar, RoleAdmin:
		return true
	}
	return false
}

// Session is the authenticated state carried by a verified token.
// The server keeps no session table; validity is signature + expiry only.
type Session struct {
	Role          Role
	Authenticated bool
	IssuedAt      time.Time
	ExpiresAt     time.Time
}
