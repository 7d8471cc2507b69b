package postgres

import (
	"newsroom/pkg/domain"
	"time"

	"github.com/google/uuid"
)

const sessionsTable = "sessions"

type PgSession struct {
	ID        uuid.UUID `db:"id"`
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	Username  string    `db:"username"`
	Role      int       `db:"role"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSession) ToDomain() *domain.Session {
	return &domain.Session{
		ID:        domain.SessionID(p.ID),
		Token:     p.Token,
		UserID:    domain.UserID(p.UserID),
		Username:  p.Username,
		Role:      domain.Role(p.Role),
		ExpiresAt: p.ExpiresAt,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgSession) FromDomain(s domain.Session) {
	*p = PgSession{
		ID:        uuid.UUID(s.ID),
		Token:     s.Token,
		UserID:    string(s.UserID),
		Username:  s.Username,
		Role:      int(s.Role),
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}
