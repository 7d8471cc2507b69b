package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionID identifies a server-side session. It is the value of the session cookie.
type SessionID uuid.UUID

func (id SessionID) String() string { return uuid.UUID(id).String() }

// ParseSessionID parses a cookie value into a SessionID.
func ParseSessionID(s string) (SessionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SessionID{}, err
	}

	return SessionID(id), nil
}

// Session binds a browser to a backend token. The token is never exposed to the browser.
type Session struct {
	ID        SessionID
	Token     string
	UserID    UserID
	Username  string
	Role      Role
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }
