package domain

import "time"

// UserID is the backend's user identifier. The backend issues it as an opaque
// string claim, so it is compared as a string.
type UserID string

// Role is the numeric role carried in the token's "role" claim.
type Role int

const (
	RoleReader Role = iota
	RoleJournalist
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleReader:
		return "reader"
	case RoleJournalist:
		return "journalist"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// CanAuthor reports whether the role may use the journalist dashboard and editor.
func (r Role) CanAuthor() bool { return r == RoleJournalist || r == RoleAdmin }

// IsAdmin reports whether the role may register journalists.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Claims is what the front-end reads out of a backend token.
type Claims struct {
	UserID    UserID
	Username  string
	Role      Role
	ExpiresAt time.Time
}
